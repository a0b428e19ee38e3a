package hexgrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/dense"
	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/hexgrid"
)

var _ grid.Planar[hexgrid.Axial] = hexgrid.Topology{}

// samples is a spread of coordinates around the origin.
func samples() []hexgrid.Axial {
	var out []hexgrid.Axial
	for q := -4; q <= 4; q++ {
		for r := -4; r <= 4; r++ {
			out = append(out, hexgrid.New(q, r))
		}
	}

	return out
}

func TestStep_Inverse(t *testing.T) {
	for _, p := range samples() {
		for _, d := range hexgrid.AllDirections() {
			assert.Equal(t, p, hexgrid.Step(hexgrid.Step(p, d), d.Neg()), "%v %v", p, d)
		}
	}
}

func TestNeighbors_DistinctAndAdjacent(t *testing.T) {
	p := hexgrid.New(2, -1)
	seen := map[hexgrid.Axial]bool{}
	for _, n := range p.Neighbors() {
		assert.Equal(t, 1, hexgrid.Distance(p, n))
		seen[n] = true
	}
	assert.Len(t, seen, 6)
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b hexgrid.Axial
		want int
	}{
		{hexgrid.New(0, 0), hexgrid.New(0, 0), 0},
		{hexgrid.New(0, 0), hexgrid.New(3, -1), 3},
		{hexgrid.New(0, 0), hexgrid.New(2, 2), 4},
		{hexgrid.New(-2, 1), hexgrid.New(1, -3), 4},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, hexgrid.Distance(tc.a, tc.b), "%v %v", tc.a, tc.b)
		assert.Equal(t, tc.want, hexgrid.Distance(tc.b, tc.a), "symmetry")
	}
}

func TestDirection_Algebra(t *testing.T) {
	for _, d := range hexgrid.AllDirections() {
		assert.Equal(t, d, d.Neg().Neg())
		assert.Equal(t, d.Neg(), d.Rotate(3))
		assert.Equal(t, d, d.Rotate(6))
		assert.Equal(t, d.Rotate(-1), d.Rotate(5))
		got, ok := hexgrid.DirectionOf(d.Offset())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := hexgrid.DirectionOf(hexgrid.New(1, 1))
	assert.False(t, ok)
	assert.False(t, hexgrid.Direction(6).Valid())
}

func TestCompare(t *testing.T) {
	assert.Negative(t, hexgrid.Compare(hexgrid.New(0, 5), hexgrid.New(1, -5)))
	assert.Negative(t, hexgrid.Compare(hexgrid.New(1, -5), hexgrid.New(1, 0)))
	assert.Zero(t, hexgrid.Compare(hexgrid.New(1, 0), hexgrid.New(1, 0)))
	assert.Positive(t, hexgrid.Compare(hexgrid.New(2, 0), hexgrid.New(1, 9)))
}

func TestRing_SizeAndDistance(t *testing.T) {
	center := hexgrid.New(1, -2)
	for r := 0; r <= 6; r++ {
		var got []hexgrid.Axial
		seen := map[hexgrid.Axial]bool{}
		for a := range hexgrid.Ring(center, r) {
			assert.Equal(t, r, hexgrid.Distance(center, a))
			seen[a] = true
			got = append(got, a)
		}
		want := 6 * r
		if r == 0 {
			want = 1
		}
		assert.Len(t, got, want, "radius %d", r)
		assert.Len(t, seen, want, "radius %d has duplicates", r)
		if r > 0 {
			assert.Equal(t, center.Add(hexgrid.SouthWest.Offset().Scale(r)), got[0])
		}
	}
	assert.Empty(t, collect(hexgrid.Ring(center, -1)))
}

func TestRing_Order(t *testing.T) {
	assert.Equal(t, []hexgrid.Axial{
		{Q: -1, R: 1}, {Q: 0, R: 1}, {Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1}, {Q: -1, R: 0},
	}, collect(hexgrid.Ring(hexgrid.Axial{}, 1)))
}

func TestDisk_Size(t *testing.T) {
	for r := 0; r <= 5; r++ {
		assert.Len(t, collect(hexgrid.Disk(hexgrid.Axial{}, r)), hexgrid.DiskSize(r))
	}
	assert.Equal(t, 19, hexgrid.DiskSize(2))
	assert.Zero(t, hexgrid.DiskSize(-1))
}

func TestRing_EarlyStop(t *testing.T) {
	n := 0
	for range hexgrid.Ring(hexgrid.Axial{}, 3) {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)
}

func TestCube(t *testing.T) {
	for _, a := range samples() {
		c := hexgrid.ToCube(a)
		assert.Zero(t, c.Q+c.R+c.S)
		back, err := hexgrid.FromCube(c)
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
	_, err := hexgrid.FromCube(hexgrid.Cube{Q: 1, R: 1, S: 1})
	assert.ErrorIs(t, err, hexgrid.ErrInvalidCube)
}

func TestOffset_RoundTrip(t *testing.T) {
	for _, layout := range []hexgrid.OffsetLayout{hexgrid.OddR, hexgrid.EvenR, hexgrid.OddQ, hexgrid.EvenQ} {
		for _, a := range samples() {
			col, row := hexgrid.ToOffset(a, layout)
			assert.Equal(t, a, hexgrid.FromOffset(col, row, layout), "layout %d %v", layout, a)
		}
	}
	// Odd-r: the first cell of row 1 sits half a hexagon right of row 0, at q 0.
	assert.Equal(t, hexgrid.New(0, 1), hexgrid.FromOffset(0, 1, hexgrid.OddR))
	assert.Equal(t, hexgrid.New(-1, 1), hexgrid.FromOffset(0, 1, hexgrid.EvenR))
}

func TestDoubled(t *testing.T) {
	for _, layout := range []hexgrid.DoubledLayout{hexgrid.DoubledWidth, hexgrid.DoubledHeight} {
		for _, a := range samples() {
			col, row := hexgrid.ToDoubled(a, layout)
			back, err := hexgrid.FromDoubled(col, row, layout)
			require.NoError(t, err)
			assert.Equal(t, a, back)
		}
	}
	_, err := hexgrid.FromDoubled(1, 0, hexgrid.DoubledWidth)
	assert.ErrorIs(t, err, hexgrid.ErrInvalidDoubled)
}

func TestPixel(t *testing.T) {
	const size = 10.0
	for _, a := range samples() {
		x, y := hexgrid.Center(a, size)
		assert.Equal(t, a, hexgrid.FromPixel(x, y, size))
		// Points well inside the hexagon round back to it.
		assert.Equal(t, a, hexgrid.FromPixel(x+size/3, y-size/4, size))
		for _, c := range hexgrid.Corners(a, size) {
			assert.InDelta(t, size, math.Hypot(c[0]-x, c[1]-y), 1e-9)
		}
	}
}

func TestFormatAndParse(t *testing.T) {
	a := hexgrid.New(-3, 7)
	assert.Equal(t, "(-3, 7)", a.String())
	for _, s := range []string{"(-3, 7)", "-3,7", "  ( -3 ,7 ) "} {
		got, err := hexgrid.ParseAxial(s)
		require.NoError(t, err, s)
		assert.Equal(t, a, got)
	}
	for _, s := range []string{"", "(1)", "1,2,3", "a,b"} {
		_, err := hexgrid.ParseAxial(s)
		assert.ErrorIs(t, err, hexgrid.ErrParse, s)
	}

	for _, d := range hexgrid.AllDirections() {
		got, err := hexgrid.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	d, err := hexgrid.ParseDirection("South-West")
	require.NoError(t, err)
	assert.Equal(t, hexgrid.SouthWest, d)
	_, err = hexgrid.ParseDirection("north")
	assert.ErrorIs(t, err, hexgrid.ErrParse)
	assert.Equal(t, "Direction(9)", hexgrid.Direction(9).String())
}

func TestJoint(t *testing.T) {
	a, b := hexgrid.New(0, 0), hexgrid.New(0, 1)
	j, err := hexgrid.JointBetween(a, b)
	require.NoError(t, err)
	assert.Equal(t, hexgrid.SouthEast, j.Dir)
	assert.Equal(t, a, j.Source())
	assert.Equal(t, b, j.Target())
	assert.Equal(t, hexgrid.NewJoint(b, hexgrid.NorthWest), j.Reverse())
	assert.Equal(t, "(0, 0)->SE", j.String())

	_, err = hexgrid.JointBetween(a, hexgrid.New(2, 0))
	assert.ErrorIs(t, err, hexgrid.ErrInvalidAdjacency)

	joints, err := hexgrid.JointsOf([]hexgrid.Axial{a})
	require.NoError(t, err)
	assert.Empty(t, joints)
}

func TestJointsAlong_WrapSeam(t *testing.T) {
	m, err := hexgrid.Rhombus(4, 3, 0, dense.WithWrap(true, false))
	require.NoError(t, err)

	// (3, 1) -> (0, 1) crosses the seam eastwards.
	joints, err := hexgrid.JointsAlong[int](m, []hexgrid.Axial{{Q: 2, R: 1}, {Q: 3, R: 1}, {Q: 0, R: 1}})
	require.NoError(t, err)
	assert.Equal(t, []hexgrid.Joint{
		{From: hexgrid.New(2, 1), Dir: hexgrid.East},
		{From: hexgrid.New(3, 1), Dir: hexgrid.East},
	}, joints)

	_, err = hexgrid.JointsAlong[int](m, []hexgrid.Axial{{Q: 0, R: 0}, {Q: 2, R: 2}})
	assert.ErrorIs(t, err, hexgrid.ErrInvalidAdjacency)
}

func TestJointsNearby(t *testing.T) {
	m, err := hexgrid.Circle(1, 0)
	require.NoError(t, err)

	center := hexgrid.JointsNearby[int](m, hexgrid.Axial{})
	require.Len(t, center, 6)
	for i, d := range hexgrid.AllDirections() {
		assert.Equal(t, hexgrid.NewJoint(hexgrid.Axial{}, d), center[i])
	}

	edge := hexgrid.New(1, 0)
	assert.Equal(t, []hexgrid.Joint{
		{From: edge, Dir: hexgrid.NorthWest},
		{From: edge, Dir: hexgrid.West},
		{From: edge, Dir: hexgrid.SouthWest},
	}, hexgrid.JointsNearby[int](m, edge))
	assert.Nil(t, hexgrid.JointsNearby[int](m, hexgrid.New(3, 3)))
}

func TestMaps(t *testing.T) {
	c, err := hexgrid.Circle(3, "x")
	require.NoError(t, err)
	assert.Equal(t, hexgrid.DiskSize(3), c.Count())
	_, err = hexgrid.Circle(-1, "x")
	assert.ErrorIs(t, err, hexgrid.ErrBadDimensions)

	r, err := hexgrid.Rhombus(5, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Count())
	_, err = hexgrid.Rhombus(0, 2, 1)
	assert.ErrorIs(t, err, dense.ErrEmptyExtent)

	hf, err := hexgrid.HeightFirst(3, 4, false, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, hf.Count())
	for col := 0; col < 4; col++ {
		for row := 0; row < 3; row++ {
			assert.True(t, hf.Contains(hexgrid.FromOffset(col, row, hexgrid.EvenQ)))
		}
	}
	_, err = hexgrid.WidthFirst(0, 4, true, 1)
	assert.ErrorIs(t, err, hexgrid.ErrBadDimensions)
}

func TestWidthFirst_Neighbors(t *testing.T) {
	m, err := hexgrid.WidthFirst(3, 4, true, 1)
	require.NoError(t, err)
	require.Equal(t, 12, m.Count())

	degree := 0
	for p := range m.All() {
		n := m.Neighbors(p)
		assert.LessOrEqual(t, len(n), 6)
		assert.NotContains(t, n, p)
		degree += len(n)
	}
	assert.Equal(t, 0, degree%2, "adjacency is symmetric")

	tests := []struct {
		p    hexgrid.Axial
		want int
	}{
		{hexgrid.New(0, 0), 2},  // top-left corner
		{hexgrid.New(3, 0), 3},  // top-right corner
		{hexgrid.New(0, 1), 5},  // left edge of a shoved row
		{hexgrid.New(1, 1), 6},  // interior
		{hexgrid.New(-1, 2), 2}, // bottom-left corner
	}
	for _, tc := range tests {
		assert.Len(t, m.Neighbors(tc.p), tc.want, "%v", tc.p)
	}
}

func collect(seq func(func(hexgrid.Axial) bool)) []hexgrid.Axial {
	var out []hexgrid.Axial
	for a := range seq {
		out = append(out, a)
	}

	return out
}
