package parcoll

// ForEach invokes fn once per element concurrently, for side effects only.
// The relative ordering of side effects across units is unspecified.
// WithLimit bounds simultaneously active invocations.
func ForEach[T any](items []T, fn func(T), opts ...Option) {
	cfg := newConfig(opts)
	dispatch(len(items), &cfg, func(i int) {
		fn(items[i])
	})
}

// ForEachIndexed is ForEach with the element's input index passed to fn.
func ForEachIndexed[T any](items []T, fn func(i int, v T), opts ...Option) {
	cfg := newConfig(opts)
	dispatch(len(items), &cfg, func(i int) {
		fn(i, items[i])
	})
}
