package parcoll

// Map applies fn to every element of items concurrently and returns the
// results in input order. fn is invoked exactly once per element and must be
// total: there is no error channel in the synchronous family.
//
// Without WithLimit, one goroutine is launched per element. With
// WithLimit(n), at most n invocations of fn are ever simultaneously active.
func Map[T, R any](items []T, fn func(T) R, opts ...Option) []R {
	if len(items) == 0 {
		return nil
	}
	cfg := newConfig(opts)

	out := make([]R, len(items))
	dispatch(len(items), &cfg, func(i int) {
		out[i] = fn(items[i])
	})
	return out
}

// CompactMap applies fn to every element concurrently and keeps only the
// results for which fn reported ok. Surviving results appear in input order
// but are re-indexed: the output length shrinks by the number of dropped
// elements. This mirrors the historical optional-returning-transform
// behavior; prefer Map plus an explicit Filter in new code.
func CompactMap[T, R any](items []T, fn func(T) (R, bool), opts ...Option) []R {
	if len(items) == 0 {
		return nil
	}
	cfg := newConfig(opts)

	vals := make([]R, len(items))
	kept := make([]bool, len(items))
	dispatch(len(items), &cfg, func(i int) {
		vals[i], kept[i] = fn(items[i])
	})

	// Sequential compaction pass; drops unset slots.
	out := make([]R, 0, len(items))
	for i := range vals {
		if kept[i] {
			out = append(out, vals[i])
		}
	}
	return out
}
