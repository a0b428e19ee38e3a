package taxicab

import (
	"iter"

	"github.com/katalvlaran/gridmap/dense"
)

// New returns the point (x, y).
func New(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Step returns the point adjacent to p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Offset()) }

// Neighbors returns the four adjacent points in AllDirections order.
func (p Point) Neighbors() [directionCount]Point {
	var out [directionCount]Point
	for i, off := range offsets {
		out[i] = p.Add(off)
	}

	return out
}

// Step returns the point adjacent to p in direction d.
func Step(p Point, d Direction) Point { return p.Step(d) }

// Distance returns the manhattan distance |dx| + |dy|.
func Distance(a, b Point) int { return abs(a.X-b.X) + abs(a.Y-b.Y) }

// Compare orders points by X, then Y.
func Compare(a, b Point) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}

	return 0
}

// AllDirections returns East, West, North, South.
func AllDirections() [directionCount]Direction {
	return [directionCount]Direction{East, West, North, South}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool { return d < directionCount }

// Neg returns the opposite direction.
func (d Direction) Neg() Direction { return d ^ 1 }

// Offset returns the unit step vector of d.
func (d Direction) Offset() Point { return offsets[d%directionCount] }

// Side returns the dense map side d points at, for use with dense.Map.Extend.
func (d Direction) Side() dense.Side {
	switch d {
	case West:
		return dense.NegX
	case North:
		return dense.PosY
	case South:
		return dense.NegY
	default:
		return dense.PosX
	}
}

// DirectionOf returns the direction whose step vector equals off.
func DirectionOf(off Point) (Direction, bool) {
	for i, o := range offsets {
		if o == off {
			return Direction(i), true
		}
	}

	return 0, false
}

// Ring yields the 4·n points at distance exactly n from center, starting at
// (x+n, y) and turning counter-clockwise. n == 0 yields center; n < 0 yields nothing.
func Ring(center Point, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n < 0 {
			return
		}
		if n == 0 {
			yield(center)
			return
		}
		x, y := center.X, center.Y
		for k := 0; k < n; k++ {
			if !yield(Point{X: x + n - k, Y: y + k}) {
				return
			}
		}
		for k := 0; k < n; k++ {
			if !yield(Point{X: x - k, Y: y + n - k}) {
				return
			}
		}
		for k := 0; k < n; k++ {
			if !yield(Point{X: x - n + k, Y: y - k}) {
				return
			}
		}
		for k := 0; k < n; k++ {
			if !yield(Point{X: x + k, Y: y - n + k}) {
				return
			}
		}
	}
}

// Disk yields every point within distance n of center, ring by ring.
// It yields 1 + 2·n·(n+1) points.
func Disk(center Point, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := 0; r <= n; r++ {
			for p := range Ring(center, r) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// DiskSize returns the number of points within distance n.
func DiskSize(n int) int {
	if n < 0 {
		return 0
	}

	return 1 + 2*n*(n+1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
