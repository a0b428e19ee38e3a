package hexgrid

import (
	"fmt"

	"github.com/katalvlaran/gridmap/grid"
)

// NewJoint returns the joint leaving from in direction d.
func NewJoint(from Axial, d Direction) Joint { return Joint{From: from, Dir: d} }

// JointBetween returns the joint from a to b.
// Returns ErrInvalidAdjacency if b is not one step away from a.
func JointBetween(a, b Axial) (Joint, error) {
	d, ok := DirectionOf(b.Sub(a))
	if !ok {
		return Joint{}, fmt.Errorf("%w: %v -> %v", ErrInvalidAdjacency, a, b)
	}

	return Joint{From: a, Dir: d}, nil
}

// Source returns the hexagon the joint leaves from.
func (j Joint) Source() Axial { return j.From }

// Target returns the hexagon the joint arrives at.
func (j Joint) Target() Axial { return j.From.Step(j.Dir) }

// Reverse returns the joint travelling the same edge the other way.
func (j Joint) Reverse() Joint { return Joint{From: j.Target(), Dir: j.Dir.Neg()} }

// JointsOf converts a path of raw adjacent coordinates into its joints.
// A path of n points yields n-1 joints; fewer than two points yield none.
func JointsOf(path []Axial) ([]Joint, error) {
	return grid.Link(path, JointBetween)
}

// JointsAlong converts a path produced on m into joints.
// Unlike JointsOf it accepts steps across a wraparound seam: a step is valid
// when some direction from the previous point canonicalizes to the next point.
func JointsAlong[T any](m grid.Reader[Axial, T], path []Axial) ([]Joint, error) {
	dirs := AllDirections()

	return grid.Link(path, func(from, to Axial) (Joint, error) {
		d, ok := grid.StepOnto(m, dirs[:], Axial.Step, from, to)
		if !ok {
			return Joint{}, fmt.Errorf("%w: %v -> %v", ErrInvalidAdjacency, from, to)
		}

		return Joint{From: from, Dir: d}, nil
	})
}

// JointsNearby returns the joints leaving p toward its member neighbors on m,
// in direction order. An absent p has none.
func JointsNearby[T any](m grid.Reader[Axial, T], p Axial) []Joint {
	dirs := AllDirections()
	var out []Joint
	for _, d := range grid.Adjacent(m, dirs[:], Axial.Step, p) {
		out = append(out, Joint{From: p, Dir: d})
	}

	return out
}
