package taxicab

import (
	"iter"

	"github.com/katalvlaran/gridmap/grid"
)

// Topology is the rectilinear grid.Planar implementation. Its zero value is ready to use.
type Topology struct{}

var _ grid.Planar[Point] = Topology{}

// Steps returns the four neighbors of p in AllDirections order.
func (Topology) Steps(p Point) []Point {
	n := p.Neighbors()

	return n[:]
}

// Distance returns the manhattan distance.
func (Topology) Distance(a, b Point) int { return Distance(a, b) }

// Compare orders by X, then Y.
func (Topology) Compare(a, b Point) int { return Compare(a, b) }

// Ring yields the 4·radius diamond around center.
func (Topology) Ring(center Point, radius int) iter.Seq[Point] { return Ring(center, radius) }

// Axes returns (X, Y).
func (Topology) Axes(p Point) (int, int) { return p.X, p.Y }

// FromAxes returns Point{X: x, Y: y}.
func (Topology) FromAxes(x, y int) Point { return Point{X: x, Y: y} }
