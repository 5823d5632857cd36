package metrics

// NoopProvider discards all measurements. Useful as a default or in tests
// that don't assert on metrics.
type NoopProvider struct{}

// NewNoopProvider constructs a NoopProvider.
func NewNoopProvider() *NoopProvider { return &NoopProvider{} }

func (*NoopProvider) Counter(string) Counter     { return noopCounter{} }
func (*NoopProvider) Histogram(string) Histogram { return noopHistogram{} }

type noopCounter struct{}

func (noopCounter) Add(int64) {}

type noopHistogram struct{}

func (noopHistogram) Record(float64) {}
