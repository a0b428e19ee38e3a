package hexgrid

import (
	"iter"

	"github.com/katalvlaran/gridmap/grid"
)

// Topology is the hexagonal grid.Planar implementation. Its zero value is ready to use.
// Dense storage treats Q as the x axis and R as the y axis, so a dense hex map
// covers a rhombus.
type Topology struct{}

var _ grid.Planar[Axial] = Topology{}

// Steps returns the six neighbors of p in AllDirections order.
func (Topology) Steps(p Axial) []Axial {
	n := p.Neighbors()

	return n[:]
}

// Distance returns the hex distance between a and b.
func (Topology) Distance(a, b Axial) int { return Distance(a, b) }

// Compare orders by Q, then R.
func (Topology) Compare(a, b Axial) int { return Compare(a, b) }

// Ring yields the 6·radius hexagons around center.
func (Topology) Ring(center Axial, radius int) iter.Seq[Axial] { return Ring(center, radius) }

// Axes returns (Q, R).
func (Topology) Axes(p Axial) (int, int) { return p.Q, p.R }

// FromAxes returns Axial{Q: x, R: y}.
func (Topology) FromAxes(x, y int) Axial { return Axial{Q: x, R: y} }
