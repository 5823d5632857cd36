package parcoll

import (
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sequentialMap[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, v := range items {
		out[i] = fn(v)
	}
	return out
}

func TestMap_MatchesSequential(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	double := func(x int) int { return x * 2 }
	want := sequentialMap(items, double)

	for name, opts := range map[string][]Option{
		"unbounded": nil,
		"limit=1":   {WithLimit(1)},
		"limit=N":   {WithLimit(len(items))},
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, want, Map(items, double, opts...))
		})
	}
}

func TestMap_OrderIndependentOfCompletionOrder(t *testing.T) {
	// The first element finishes last; output must still follow input order.
	items := []int{5, 4, 3, 2, 1}
	got := Map(items, func(x int) string {
		if x == 5 {
			time.Sleep(20 * time.Millisecond)
		}
		return strconv.Itoa(x)
	})
	require.Equal(t, []string{"5", "4", "3", "2", "1"}, got)
}

func TestMap_InvokedExactlyOncePerElement(t *testing.T) {
	items := make([]int, 50)
	var calls atomic.Int64

	Map(items, func(x int) int {
		calls.Add(1)
		return x
	}, WithLimit(4))
	require.Equal(t, int64(len(items)), calls.Load())
}

func TestMap_LimitBoundsActiveInvocations(t *testing.T) {
	const limit = 3
	items := make([]int, 64)

	var active, peak atomic.Int32
	Map(items, func(x int) int {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		active.Add(-1)
		return x
	}, WithLimit(limit))

	require.LessOrEqual(t, peak.Load(), int32(limit))
	require.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestMap_EmptyInput(t *testing.T) {
	var calls atomic.Int64
	got := Map(nil, func(x int) int {
		calls.Add(1)
		return x
	})
	require.Empty(t, got)
	require.Zero(t, calls.Load())
}

func TestCompactMap_DropsAndReindexes(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	got := CompactMap(items, func(x int) (int, bool) {
		return x * 10, x%2 == 0
	})
	// Output shrinks: survivors keep input order but are re-indexed.
	require.Equal(t, []int{20, 40, 60}, got)
}

func TestCompactMap_AllKept(t *testing.T) {
	items := []int{3, 1, 2}
	got := CompactMap(items, func(x int) (int, bool) { return x, true }, WithLimit(2))
	require.Equal(t, items, got)
}

func TestCompactMap_Empty(t *testing.T) {
	require.Empty(t, CompactMap(nil, func(x int) (int, bool) { return x, true }))
}
