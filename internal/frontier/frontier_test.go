package frontier_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/internal/frontier"
)

// TestQueue_OrdersByPriority verifies that lower priorities pop first.
func TestQueue_OrdersByPriority(t *testing.T) {
	q := frontier.New(cmp.Compare[int])
	for i, p := range []float64{5, 1, 3, 2, 4} {
		q.Push(frontier.Item[int]{Point: i, Priority: p})
	}
	require.Equal(t, 5, q.Len())

	var got []float64
	for {
		it, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, it.Priority)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

// TestQueue_TieBreakByCoordinate verifies that equal priorities pop in coordinate order.
func TestQueue_TieBreakByCoordinate(t *testing.T) {
	q := frontier.New(cmp.Compare[int])
	for _, p := range []int{9, 3, 7, 1, 5} {
		q.Push(frontier.Item[int]{Point: p, Priority: 2, Cost: float64(p)})
	}

	var got []int
	for q.Len() > 0 {
		it, _ := q.Pop()
		got = append(got, it.Point)
		assert.Equal(t, float64(it.Point), it.Cost, "cost travels with its item")
	}
	assert.Equal(t, []int{1, 3, 5, 7, 9}, got)
}

// TestQueue_PopEmpty verifies the empty result.
func TestQueue_PopEmpty(t *testing.T) {
	q := frontier.New(cmp.Compare[string])
	_, ok := q.Pop()
	assert.False(t, ok)
}
