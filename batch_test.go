package parcoll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatches_SevenElementsSizeThree(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	var batches [][]int

	err := Batches(items, 3, func(batch []int) {
		batches = append(batches, batch)
	})
	require.NoError(t, err)
	require.Len(t, batches, 3)
	require.Equal(t, []int{1, 2, 3}, batches[0])
	require.Equal(t, []int{4, 5, 6}, batches[1])
	require.Equal(t, []int{7}, batches[2])
}

func TestBatches_ExactMultipleHasNoRemainderFlush(t *testing.T) {
	var sizes []int
	err := Batches([]int{1, 2, 3, 4}, 2, func(batch []int) {
		sizes = append(sizes, len(batch))
	})
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, sizes)
}

func TestBatches_EmptyInputInvokesNothing(t *testing.T) {
	calls := 0
	err := Batches(nil, 3, func([]int) { calls++ })
	require.NoError(t, err)
	require.Zero(t, calls)
}

func TestBatches_HandlerReceivesDetachedCopy(t *testing.T) {
	var first []int
	err := Batches([]int{1, 2, 3, 4}, 2, func(batch []int) {
		if first == nil {
			first = batch
		}
	})
	require.NoError(t, err)
	// The accumulation buffer is reused internally; a retained batch must
	// not be overwritten by later batches.
	require.Equal(t, []int{1, 2}, first)
}

func TestBatches_RejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		calls := 0
		err := Batches([]int{1, 2}, size, func([]int) { calls++ })
		require.ErrorIs(t, err, ErrInvalidBatchSize)
		require.Zero(t, calls)
	}
}

func TestBatchMap_PassThroughConcatenatesToInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	got, err := BatchMap(items, 3, func(batch []int) []int { return batch })
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestBatchMap_PreservesBatchOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got, err := BatchMap(items, 2, func(batch []int) []int {
		out := make([]int, len(batch))
		for i, v := range batch {
			out[i] = v * 10
		}
		return out
	})
	require.NoError(t, err)
	require.Equal(t, []int{10, 20, 30, 40, 50}, got)
}

func TestBatchMap_RejectsNonPositiveSize(t *testing.T) {
	got, err := BatchMap([]int{1}, 0, func(batch []int) []int { return batch })
	require.ErrorIs(t, err, ErrInvalidBatchSize)
	require.Nil(t, got)
}
