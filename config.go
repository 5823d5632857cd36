package parcoll

import (
	"fmt"
	"runtime"

	"github.com/mgordeev/parcoll/metrics"
)

// config holds per-call settings. A fresh config is assembled for every
// operation; nothing is shared between calls.
type config struct {
	// limit caps simultaneously active transform invocations.
	// Zero (default) means unbounded fan-out.
	limit int

	// parallelism is the target parallelism used by Reduce to size chunks.
	// Default: runtime.GOMAXPROCS(0).
	parallelism int

	// provider records dispatch metrics when non-nil.
	// Default: nil (no recording).
	provider metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		limit:       0, // unbounded
		parallelism: runtime.GOMAXPROCS(0),
		provider:    nil,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Option configures a single operation.
type Option func(*config)

// WithLimit caps the number of simultaneously active transform invocations.
// The synchronous family enforces the cap with a counting permit gate; the
// Try* family applies it as the scope's task limit.
// Panics if n < 1: a non-positive limit is a programmer error, and silently
// degrading it to unbounded concurrency would hide the bug.
func WithLimit(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s: WithLimit requires n >= 1, got %d", Namespace, n))
	}
	return func(c *config) { c.limit = n }
}

// WithParallelism overrides the target parallelism Reduce uses to size its
// chunks. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s: WithParallelism requires n >= 1, got %d", Namespace, n))
	}
	return func(c *config) { c.parallelism = n }
}

// WithMetrics records per-call dispatch metrics through p.
func WithMetrics(p metrics.Provider) Option {
	return func(c *config) { c.provider = p }
}
