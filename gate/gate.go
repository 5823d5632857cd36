// Package gate provides counting permit gates used to bound the number of
// concurrently active units of work.
package gate

import "sync/atomic"

// Gate is a counting permit pool. Acquire blocks until a permit is
// available; Release returns one. Implementations are safe for concurrent
// use.
type Gate interface {
	// Acquire takes a permit, blocking until one is available.
	Acquire()

	// Release returns a permit taken by a prior Acquire.
	Release()
}

type bounded struct {
	ch       chan struct{}
	acquired atomic.Int64
}

// NewBounded creates a gate with n permits. Panics if n < 1.
func NewBounded(n int) Gate {
	if n < 1 {
		panic("gate: NewBounded requires n >= 1")
	}
	return &bounded{ch: make(chan struct{}, n)}
}

func (g *bounded) Acquire() {
	g.ch <- struct{}{}
	g.acquired.Add(1)
}

// Release returns a permit. Panics if more permits are released than were
// acquired.
func (g *bounded) Release() {
	if g.acquired.Add(-1) < 0 {
		g.acquired.Add(1) // undo
		panic("gate: Release called without matching Acquire")
	}
	<-g.ch
}

type unbounded struct{}

// NewUnbounded creates a gate that never blocks. It is used when no
// concurrency limit is configured, keeping the dispatch path uniform.
func NewUnbounded() Gate { return unbounded{} }

func (unbounded) Acquire() {}
func (unbounded) Release() {}
