package grid

import "iter"

// Topology describes the step rules of one grid family over coordinate type P.
type Topology[P comparable] interface {
	// Steps returns the coordinates one step away from p, one per direction,
	// in the topology's fixed direction order. Membership is not consulted.
	Steps(p P) []P

	// Distance returns the graph distance between a and b on an unbounded grid.
	Distance(a, b P) int

	// Compare orders coordinates lexicographically: <0, 0 or >0.
	Compare(a, b P) int

	// Ring yields every coordinate exactly radius steps from center.
	// Radius 0 yields center alone; negative radii yield nothing.
	Ring(center P, radius int) iter.Seq[P]
}

// Planar is a Topology whose coordinates map onto two integer axes.
// Dense storage addresses cells through Axes and rebuilds coordinates with FromAxes.
type Planar[P comparable] interface {
	Topology[P]

	// Axes returns the two storage axes of p.
	Axes(p P) (x, y int)

	// FromAxes is the inverse of Axes.
	FromAxes(x, y int) P
}

// Reader is the read-only map view borrowed by solvers.
type Reader[P comparable, T any] interface {
	// Get returns the value stored at p, or the zero value and false.
	Get(p P) (T, bool)

	// Contains reports whether p is a member of the map.
	Contains(p P) bool

	// Canonical returns the representative coordinate of p inside the map.
	// Maps without wraparound return p itself; the bool reports membership.
	Canonical(p P) (P, bool)

	// Neighbors returns the canonical member coordinates adjacent to p,
	// without duplicates and without p itself.
	Neighbors(p P) []P

	// Topology returns the step rules of the map.
	Topology() Topology[P]
}

// Store is the full map contract: a Reader plus mutation and enumeration.
type Store[P comparable, T any] interface {
	Reader[P, T]

	// Set stores v at p and returns the previous value, if there was one.
	Set(p P, v T) (prev T, had bool)

	// Remove deletes p and returns the previous value, if there was one.
	Remove(p P) (prev T, had bool)

	// Count returns the number of member coordinates.
	Count() int

	// All yields every member and its value. The sequence is finite and restartable.
	All() iter.Seq2[P, T]

	// Ring yields the member coordinates exactly radius steps from center.
	Ring(center P, radius int) iter.Seq[P]

	// Disk yields the member coordinates at most radius steps from center.
	Disk(center P, radius int) iter.Seq[P]
}

// Rules is the capability solvers consult before entering a cell.
type Rules[P comparable, T any] interface {
	// Passable reports whether the cell at p holding v may be entered.
	Passable(p P, v T) bool

	// Cost returns the non-negative cost of entering the cell at p holding v.
	Cost(p P, v T) float64
}
