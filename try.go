package parcoll

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ygrebnov/errorc"
	"golang.org/x/sync/errgroup"
)

// TryMap is the structured, context-aware counterpart of Map. It spawns one
// task per element inside a scope that owns every task's lifetime and
// returns the results in input order.
//
// On the first failure observed (in completion order, not index order) the
// scope context is cancelled and that failure, tagged with its input index,
// becomes the call's only error. Cancellation is cooperative: fn must watch
// ctx to stop early, and tasks already running may still complete; any
// outcome they produce is discarded. The call either fully succeeds with a
// result of length len(items) or fails with exactly one error; no partial
// results are ever returned.
//
// A panicking fn is reported as an ErrUnitPanicked failure rather than
// crashing the scope. For an empty input no tasks are spawned.
func TryMap[T, R any](
	ctx context.Context,
	items []T,
	fn func(context.Context, T) (R, error),
	opts ...Option,
) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}
	cfg := newConfig(opts)

	rec := newRecorder(&cfg)
	rec.dispatched(len(items))
	start := time.Now()

	eg, scopeCtx := errgroup.WithContext(ctx)
	if cfg.limit > 0 {
		eg.SetLimit(cfg.limit)
	}

	out := make([]R, len(items))
	for i := range items {
		eg.Go(func() error {
			v, err := runUnit(scopeCtx, items[i], fn)
			if err != nil {
				return errorc.With(err, errorc.String("index", strconv.Itoa(i)))
			}
			out[i] = v
			rec.completed()
			return nil
		})
	}

	// Wait returns after every task has finished, cancelled ones included,
	// so no task outlives the call boundary.
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rec.duration(time.Since(start))
	return out, nil
}

// TryFilter evaluates pred concurrently under the same scope semantics as
// TryMap, then reconstructs the ordered filtered output sequentially.
func TryFilter[T any](
	ctx context.Context,
	items []T,
	pred func(context.Context, T) (bool, error),
	opts ...Option,
) ([]T, error) {
	keep, err := TryMap(ctx, items, pred, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i := range items {
		if keep[i] {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// TryForEach applies fn to every element under the same scope semantics as
// TryMap, for side effects only. Side-effect ordering across tasks is
// unspecified.
func TryForEach[T any](
	ctx context.Context,
	items []T,
	fn func(context.Context, T) error,
	opts ...Option,
) error {
	_, err := TryMap(ctx, items, func(c context.Context, v T) (struct{}, error) {
		return struct{}{}, fn(c, v)
	}, opts...)
	return err
}

// runUnit executes fn with panic recovery, converting a panic into an
// ErrUnitPanicked failure so the scope can report it like any other error.
func runUnit[T, R any](ctx context.Context, v T, fn func(context.Context, T) (R, error)) (res R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnitPanicked, r)
		}
	}()
	return fn(ctx, v)
}
