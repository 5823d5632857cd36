package parcoll

// Filter evaluates pred for every element concurrently and returns the
// elements for which it reported true, in input order. The predicate phase
// uses the same gated fan-out as Map; a second, strictly sequential pass
// walks indices 0..N-1 and appends kept elements, so the output order never
// depends on completion order.
func Filter[T any](items []T, pred func(T) bool, opts ...Option) []T {
	if len(items) == 0 {
		return nil
	}
	cfg := newConfig(opts)

	keep := make([]bool, len(items))
	dispatch(len(items), &cfg, func(i int) {
		keep[i] = pred(items[i])
	})

	out := make([]T, 0, len(items))
	for i := range items {
		if keep[i] {
			out = append(out, items[i])
		}
	}
	return out
}
