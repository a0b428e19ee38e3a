package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/hexgrid"
	"github.com/katalvlaran/gridmap/sparse"
	"github.com/katalvlaran/gridmap/taxicab"
)

var _ grid.Store[taxicab.Point, int] = (*sparse.Map[taxicab.Point, int])(nil)

func TestMap_SetGetRemove(t *testing.T) {
	m := sparse.New[taxicab.Point, string](taxicab.Topology{})
	p := taxicab.New(2, -7)

	_, ok := m.Get(p)
	assert.False(t, ok)

	prev, had := m.Set(p, "a")
	assert.False(t, had)
	assert.Empty(t, prev)
	prev, had = m.Set(p, "b")
	assert.True(t, had)
	assert.Equal(t, "a", prev)
	assert.Equal(t, 1, m.Count())

	v, ok := m.Get(p)
	require.True(t, ok)
	assert.Equal(t, "b", v)
	c, ok := m.Canonical(p)
	assert.True(t, ok)
	assert.Equal(t, p, c)

	// Other keys are untouched.
	m.Set(taxicab.New(0, 0), "z")
	prev, had = m.Remove(p)
	assert.True(t, had)
	assert.Equal(t, "b", prev)
	assert.False(t, m.Contains(p))
	assert.True(t, m.Contains(taxicab.New(0, 0)))
	_, had = m.Remove(p)
	assert.False(t, had)
	assert.Equal(t, 1, m.Count())
}

func TestMap_AllIsOrdered(t *testing.T) {
	m := sparse.New[taxicab.Point, int](taxicab.Topology{})
	pts := []taxicab.Point{{X: 3, Y: 0}, {X: -1, Y: 5}, {X: 0, Y: 0}, {X: -1, Y: -5}, {X: 3, Y: -1}}
	for i, p := range pts {
		m.Set(p, i)
	}

	var got []taxicab.Point
	for p := range m.Points() {
		got = append(got, p)
	}
	assert.Equal(t, []taxicab.Point{{X: -1, Y: -5}, {X: -1, Y: 5}, {X: 0, Y: 0}, {X: 3, Y: -1}, {X: 3, Y: 0}}, got)

	// Restartable, and stops early on request.
	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	n = 0
	for range m.All() {
		n++
	}
	assert.Equal(t, 5, n)
}

func TestMap_NeighborsRingDisk(t *testing.T) {
	m, err := hexgrid.Circle(2, true)
	require.NoError(t, err)

	assert.Len(t, m.Neighbors(hexgrid.Axial{}), 6)
	assert.Len(t, m.Neighbors(hexgrid.New(2, 0)), 3)
	assert.Nil(t, m.Neighbors(hexgrid.New(5, 5)))

	ring := 0
	for range m.Ring(hexgrid.New(2, 0), 1) {
		ring++
	}
	assert.Equal(t, 3, ring)

	disk := 0
	for a := range m.Disk(hexgrid.New(2, 0), 2) {
		assert.True(t, m.Contains(a))
		disk++
	}
	// Members within 2 of a corner of a radius-2 disk.
	want := 0
	for a := range m.Points() {
		if hexgrid.Distance(a, hexgrid.New(2, 0)) <= 2 {
			want++
		}
	}
	assert.Equal(t, want, disk)
}

func TestMap_Clone(t *testing.T) {
	m := sparse.New[taxicab.Point, int](taxicab.Topology{})
	m.Set(taxicab.New(1, 1), 1)
	c := m.Clone()
	c.Set(taxicab.New(1, 1), 2)
	c.Set(taxicab.New(2, 2), 3)

	v, _ := m.Get(taxicab.New(1, 1))
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, 2, c.Count())
}
