package parcoll

// chunk is a contiguous sub-range [lo, hi) of the input. Chunks partition
// [0, N) without gaps or overlaps.
type chunk struct {
	lo, hi int
}

// partition splits [0, n) into contiguous chunks of size max(1, n/p), where
// p is the target parallelism. The last chunk absorbs the remainder.
func partition(n, p int) []chunk {
	if n == 0 {
		return nil
	}
	size := n / p
	if size < 1 {
		size = 1
	}
	count := n / size

	chunks := make([]chunk, 0, count)
	for i := 0; i < count; i++ {
		c := chunk{lo: i * size, hi: (i + 1) * size}
		if i == count-1 {
			c.hi = n
		}
		chunks = append(chunks, c)
	}
	return chunks
}

// Reduce folds items into a single value using combine, dispatching one
// sequential chunk fold per chunk through the parallel mapper and then
// combining the per-chunk results sequentially.
//
// Every chunk fold starts from seed, and the final combine over chunk
// results starts from seed again, so seed participates chunkCount+1 times.
// The result therefore equals a sequential left-fold only when seed is an
// identity element for combine (0 for addition, 1 for multiplication, and
// so on). With a non-identity seed the result deviates by the extra seed
// applications; callers needing exact sequential-fold semantics with an
// arbitrary seed should fold with an identity seed and combine once at the
// end.
//
// combine must be associative. Chunk sizing follows the target parallelism
// (WithParallelism, defaulting to GOMAXPROCS); WithLimit additionally caps
// how many chunk folds run at once.
func Reduce[T any](items []T, seed T, combine func(T, T) T, opts ...Option) T {
	if len(items) == 0 {
		return seed
	}
	cfg := newConfig(opts)

	chunks := partition(len(items), cfg.parallelism)
	partials := Map(chunks, func(c chunk) T {
		acc := seed
		for _, v := range items[c.lo:c.hi] {
			acc = combine(acc, v)
		}
		return acc
	}, opts...)

	acc := seed
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc
}
