package parcoll

import (
	"strconv"

	"github.com/ygrebnov/errorc"
)

// Batches walks items once sequentially, accumulating elements into a
// buffer of size batches and invoking fn for each full batch; a non-empty
// remainder is flushed with one final invocation. fn receives a detached
// copy, so retaining or mutating the batch is safe.
//
// There is no concurrency here: fn invocations happen one after another on
// the calling goroutine, in input order.
//
// A non-positive size is rejected with ErrInvalidBatchSize before any
// element is visited.
func Batches[T any](items []T, size int, fn func(batch []T)) error {
	if size <= 0 {
		return errorc.With(ErrInvalidBatchSize, errorc.String("size", strconv.Itoa(size)))
	}

	buf := make([]T, 0, size)
	for _, v := range items {
		buf = append(buf, v)
		if len(buf) == size {
			fn(detach(buf))
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		fn(detach(buf))
	}
	return nil
}

// BatchMap batches items like Batches and concatenates fn's per-batch
// outputs in batch order, preserving each batch's internal output order.
func BatchMap[T, R any](items []T, size int, fn func(batch []T) []R) ([]R, error) {
	if size <= 0 {
		return nil, errorc.With(ErrInvalidBatchSize, errorc.String("size", strconv.Itoa(size)))
	}

	out := make([]R, 0, len(items))
	err := Batches(items, size, func(batch []T) {
		out = append(out, fn(batch)...)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// detach copies a batch so the caller can reuse the accumulation buffer.
func detach[T any](batch []T) []T {
	cp := make([]T, len(batch))
	copy(cp, batch)
	return cp
}
