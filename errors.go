package parcoll

import "errors"

const Namespace = "parcoll"

var (
	// ErrInvalidBatchSize is returned by Batches and BatchMap when the
	// requested batch size is not positive.
	ErrInvalidBatchSize = errors.New(Namespace + ": batch size must be positive")

	// ErrUnitPanicked wraps a panic recovered from a Try* task.
	ErrUnitPanicked = errors.New(Namespace + ": unit of work panicked")
)
