package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/bfs"
	"github.com/katalvlaran/gridmap/dense"
	"github.com/katalvlaran/gridmap/hexgrid"
	"github.com/katalvlaran/gridmap/taxicab"
)

const wall = 0

func rect(t *testing.T, w, h int, opts ...dense.Option) *dense.Map[taxicab.Point, int] {
	t.Helper()
	m, err := taxicab.Rectangle(w, h, 1, opts...)
	require.NoError(t, err)

	return m
}

func open(_ taxicab.Point, v int) bool { return v != wall }

// TestWalk_Order checks layering and the fixed neighbor order on a 3×3 block.
func TestWalk_Order(t *testing.T) {
	m := rect(t, 3, 3)
	res, err := bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0))
	require.NoError(t, err)

	assert.Equal(t, []taxicab.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2},
		{X: 2, Y: 1}, {X: 1, Y: 2},
		{X: 2, Y: 2},
	}, res.Order)
	for _, p := range res.Order {
		assert.Equal(t, taxicab.Distance(taxicab.New(0, 0), p), res.Depth[p], "%v", p)
	}
	layers := res.Layers()
	require.Len(t, layers, 5)
	assert.Len(t, layers[2], 3)
}

func TestWalk_Errors(t *testing.T) {
	m := rect(t, 2, 2)

	_, err := bfs.Walk[taxicab.Point, int](nil, taxicab.New(0, 0))
	assert.ErrorIs(t, err, bfs.ErrNilMap)

	var nilMap *dense.Map[taxicab.Point, int]
	_, err = bfs.Walk[taxicab.Point, int](nilMap, taxicab.New(0, 0))
	assert.ErrorIs(t, err, bfs.ErrNilMap)

	_, err = bfs.Walk[taxicab.Point, int](m, taxicab.New(5, 5))
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	// A hook typed for another coordinate system is rejected up front.
	_, err = bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0),
		bfs.WithOnVisit(func(hexgrid.Axial, int) error { return nil }))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0),
		bfs.WithPassable(func(taxicab.Point, string) bool { return true }))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestWalk_MaxDepth(t *testing.T) {
	m := rect(t, 5, 5)
	tests := []struct {
		depth int
		want  int
	}{
		{1, 3},
		{2, 6},
		{0, 25},
		{100, 25},
	}
	for _, tc := range tests {
		res, err := bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0), bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Len(t, res.Order, tc.want, "depth %d", tc.depth)
	}
}

// TestWalk_PassableAndPath routes around a wall and reconstructs the route.
func TestWalk_PassableAndPath(t *testing.T) {
	m := rect(t, 3, 3)
	m.Set(taxicab.New(1, 0), wall)
	m.Set(taxicab.New(1, 1), wall)

	res, err := bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0), bfs.WithPassable(open))
	require.NoError(t, err)
	assert.Len(t, res.Order, 7)
	assert.NotContains(t, res.Depth, taxicab.New(1, 1))

	path, err := res.PathTo(taxicab.New(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []taxicab.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0},
	}, path)

	_, err = res.PathTo(taxicab.New(1, 1))
	assert.ErrorIs(t, err, bfs.ErrNotReached)

	self, err := res.PathTo(taxicab.New(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []taxicab.Point{{X: 0, Y: 0}}, self)
}

func TestWalk_FilterNeighbor(t *testing.T) {
	m := rect(t, 3, 1)
	res, err := bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0),
		bfs.WithFilterNeighbor(func(curr, nbr taxicab.Point) bool {
			return !(curr == taxicab.New(1, 0) && nbr == taxicab.New(2, 0))
		}))
	require.NoError(t, err)
	assert.Equal(t, []taxicab.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, res.Order)
}

// TestWalk_WrapSeam crosses the x seam of a ring map: both ends of a 6-wide
// row are three steps from the start, never more.
func TestWalk_WrapSeam(t *testing.T) {
	m := rect(t, 6, 1, dense.WithWrap(true, false))
	res, err := bfs.Walk[taxicab.Point, int](m, taxicab.New(6, 0))
	require.NoError(t, err)
	assert.Equal(t, taxicab.New(0, 0), res.Order[0], "start is canonicalized")
	assert.Len(t, res.Order, 6)
	assert.Equal(t, 1, res.Depth[taxicab.New(5, 0)])
	assert.Equal(t, 3, res.Depth[taxicab.New(3, 0)])
}

func TestWalk_HexDisk(t *testing.T) {
	m, err := hexgrid.Circle(3, true)
	require.NoError(t, err)
	res, err := bfs.Walk[hexgrid.Axial, bool](m, hexgrid.Axial{}, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, hexgrid.DiskSize(2))
	for _, a := range res.Order {
		assert.Equal(t, hexgrid.Distance(hexgrid.Axial{}, a), res.Depth[a])
	}
}

func TestWalk_Hooks(t *testing.T) {
	m := rect(t, 3, 1)
	var enq, deq, vis []int
	_, err := bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0),
		bfs.WithOnEnqueue(func(p taxicab.Point, d int) { enq = append(enq, d) }),
		bfs.WithOnDequeue(func(p taxicab.Point, d int) { deq = append(deq, d) }),
		bfs.WithOnVisit(func(p taxicab.Point, d int) error { vis = append(vis, d); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, enq)
	assert.Equal(t, enq, deq)
	assert.Equal(t, enq, vis)
}

func TestWalk_AbortAndCancel(t *testing.T) {
	m := rect(t, 4, 4)
	stop := errors.New("stop")
	res, err := bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0),
		bfs.WithOnVisit(func(_ taxicab.Point, d int) error {
			if d == 2 {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)
	assert.Len(t, res.Order, 4, "aborts on the first depth-2 cell")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
