package sparse

import (
	"iter"

	"github.com/zyedidia/generic/avl"

	"github.com/katalvlaran/gridmap/grid"
)

// Map is an ordered sparse grid map.
type Map[P comparable, T any] struct {
	topo  grid.Topology[P]
	cells *avl.Tree[P, T]
	n     int
}

var _ grid.Store[struct{ X, Y int }, int] = (*Map[struct{ X, Y int }, int])(nil)

// New returns an empty map over the given topology.
func New[P comparable, T any](topo grid.Topology[P]) *Map[P, T] {
	return &Map[P, T]{
		topo:  topo,
		cells: newTree[P, T](topo),
	}
}

func newTree[P comparable, T any](topo grid.Topology[P]) *avl.Tree[P, T] {
	return avl.New[P, T](func(a, b P) bool { return topo.Compare(a, b) < 0 })
}

// Topology returns the map's step rules.
func (m *Map[P, T]) Topology() grid.Topology[P] { return m.topo }

// Get returns the value at p, or the zero value and false when p is absent.
func (m *Map[P, T]) Get(p P) (T, bool) { return m.cells.Get(p) }

// Contains reports whether p is a key of the map.
func (m *Map[P, T]) Contains(p P) bool {
	_, ok := m.cells.Get(p)

	return ok
}

// Canonical returns p itself; sparse maps never wrap.
func (m *Map[P, T]) Canonical(p P) (P, bool) { return p, m.Contains(p) }

// Set stores v at p. It returns the replaced value and true, or the zero value
// and false when p was newly inserted.
func (m *Map[P, T]) Set(p P, v T) (T, bool) {
	prev, had := m.cells.Get(p)
	m.cells.Put(p, v)
	if !had {
		m.n++
	}

	return prev, had
}

// Remove deletes p and returns its value, or the zero value and false when p was absent.
func (m *Map[P, T]) Remove(p P) (T, bool) {
	prev, had := m.cells.Get(p)
	if had {
		m.cells.Remove(p)
		m.n--
	}

	return prev, had
}

// Count returns the number of keys.
func (m *Map[P, T]) Count() int { return m.n }

// All yields every (coordinate, value) pair in coordinate order.
//
// The tree only offers a full in-order walk, so breaking out of the loop stops
// the yields but the walk still visits the remaining keys: an early exit
// costs O(n), not O(k).
func (m *Map[P, T]) All() iter.Seq2[P, T] {
	return func(yield func(P, T) bool) {
		stopped := false
		m.cells.Each(func(p P, v T) {
			if stopped {
				return
			}
			if !yield(p, v) {
				stopped = true
			}
		})
	}
}

// Points yields every key in coordinate order, with the same early-exit cost as All.
func (m *Map[P, T]) Points() iter.Seq[P] {
	return func(yield func(P) bool) {
		for p := range m.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// Neighbors returns the member coordinates one step from p, in direction order.
// An absent p has no neighbors.
func (m *Map[P, T]) Neighbors(p P) []P {
	if !m.Contains(p) {
		return nil
	}
	steps := m.topo.Steps(p)
	out := steps[:0]
	for _, q := range steps {
		if q != p && m.Contains(q) {
			out = append(out, q)
		}
	}

	return out
}

// Ring yields the member coordinates exactly radius steps from center.
func (m *Map[P, T]) Ring(center P, radius int) iter.Seq[P] {
	return func(yield func(P) bool) {
		for p := range m.topo.Ring(center, radius) {
			if m.Contains(p) && !yield(p) {
				return
			}
		}
	}
}

// Disk yields the member coordinates at most radius steps from center, nearest rings first.
func (m *Map[P, T]) Disk(center P, radius int) iter.Seq[P] {
	return func(yield func(P) bool) {
		for r := 0; r <= radius; r++ {
			for p := range m.Ring(center, r) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Clone returns an independent copy of the map. Values are copied shallowly.
func (m *Map[P, T]) Clone() *Map[P, T] {
	c := &Map[P, T]{topo: m.topo, cells: newTree[P, T](m.topo), n: m.n}
	m.cells.Each(func(p P, v T) { c.cells.Put(p, v) })

	return c
}
