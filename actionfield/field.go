package actionfield

import (
	"cmp"
	"iter"
	"slices"
)

// Field is the result of a Solve: every reachable cell with its minimal cost.
// It owns its data and stays valid after the map changes.
type Field[P comparable] struct {
	start   P
	reached []Reach[P]
	cost    map[P]float64
	parent  map[P]P
	compare func(a, b P) int
}

func newField[P comparable](compare func(a, b P) int) *Field[P] {
	return &Field[P]{
		cost:    make(map[P]float64),
		parent:  make(map[P]P),
		compare: compare,
	}
}

func (f *Field[P]) settle(p P, c float64) {
	f.cost[p] = c
	f.reached = append(f.reached, Reach[P]{Point: p, Cost: c})
}

// sort orders reached cells by cost, then coordinate. Zero-cost steps can
// settle a smaller coordinate after a larger one at the same cost.
func (f *Field[P]) sort() {
	slices.SortFunc(f.reached, func(a, b Reach[P]) int {
		if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
			return c
		}

		return f.compare(a.Point, b.Point)
	})
}

// Start returns the canonical start coordinate. It is meaningless when Len is 0.
func (f *Field[P]) Start() P { return f.start }

// Len returns the number of reachable cells, the start included.
func (f *Field[P]) Len() int { return len(f.reached) }

// Contains reports whether p was reached within budget.
// p must be canonical (as yielded by the map).
func (f *Field[P]) Contains(p P) bool {
	_, ok := f.cost[p]

	return ok
}

// Cost returns the minimal cost of reaching p, or 0 and false when p was not reached.
func (f *Field[P]) Cost(p P) (float64, bool) {
	c, ok := f.cost[p]

	return c, ok
}

// All yields every reached cell by ascending cost, ties by coordinate.
func (f *Field[P]) All() iter.Seq[Reach[P]] {
	return func(yield func(Reach[P]) bool) {
		for _, r := range f.reached {
			if !yield(r) {
				return
			}
		}
	}
}

// Points yields the reached coordinates in the order of All.
func (f *Field[P]) Points() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, r := range f.reached {
			if !yield(r.Point) {
				return
			}
		}
	}
}

// PathTo returns the cheapest route from the start to p, both included,
// or nil when p was not reached.
func (f *Field[P]) PathTo(p P) []P {
	if !f.Contains(p) {
		return nil
	}
	path := []P{p}
	for at := p; at != f.start; {
		at = f.parent[at]
		path = append(path, at)
	}
	slices.Reverse(path)

	return path
}
