// Package metrics defines the minimal instrumentation surface recorded by
// the dispatch engine. Implementations must be safe for concurrent use.
package metrics

// Provider constructs instruments by name. Repeated requests for the same
// name must return the same instrument.
type Provider interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// Counter records monotonic counts (e.g., units dispatched).
type Counter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements (e.g., call
// durations in seconds).
type Histogram interface {
	Record(v float64)
}
