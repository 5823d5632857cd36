package parcoll

import (
	"sync"
	"time"

	"github.com/mgordeev/parcoll/gate"
	"github.com/mgordeev/parcoll/metrics"
)

// dispatch fans out n independent units of work and blocks until all of
// them have completed. Unit i owns exclusive write access to index i of any
// result slice it targets; this disjoint-index ownership is what permits
// lock-free concurrent writes downstream.
//
// When cfg.limit > 0, each unit acquires a permit before invoking its body
// and releases it afterwards, so at most cfg.limit bodies are ever active
// at once. Units may be scheduled in any order.
func dispatch(n int, cfg *config, unit func(i int)) {
	if n == 0 {
		return
	}

	g := gate.NewUnbounded()
	if cfg.limit > 0 {
		g = gate.NewBounded(cfg.limit)
	}

	rec := newRecorder(cfg)
	rec.dispatched(n)
	start := time.Now()

	var inflight sync.WaitGroup
	inflight.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer inflight.Done()
			g.Acquire()
			defer g.Release()
			unit(i)
			rec.completed()
		}(i)
	}
	inflight.Wait()

	rec.duration(time.Since(start))
}

// recorder funnels dispatch measurements to the configured metrics provider.
// A nil provider makes every method a no-op so call sites stay unconditional.
type recorder struct {
	units     metrics.Counter
	finished  metrics.Counter
	durations metrics.Histogram
}

func newRecorder(cfg *config) *recorder {
	if cfg.provider == nil {
		return nil
	}
	return &recorder{
		units:     cfg.provider.Counter("parcoll_units_dispatched"),
		finished:  cfg.provider.Counter("parcoll_units_completed"),
		durations: cfg.provider.Histogram("parcoll_call_duration_seconds"),
	}
}

func (r *recorder) dispatched(n int) {
	if r != nil {
		r.units.Add(int64(n))
	}
}

func (r *recorder) completed() {
	if r != nil {
		r.finished.Add(1)
	}
}

func (r *recorder) duration(d time.Duration) {
	if r != nil {
		r.durations.Record(d.Seconds())
	}
}
