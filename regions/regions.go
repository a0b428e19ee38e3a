package regions

import (
	"container/list"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridmap/grid"
)

// Partition is the region labeling of a grid map under a passability predicate.
// It is a snapshot: later writes to the map are not reflected.
type Partition[P comparable, T any] struct {
	m        grid.Store[P, T]
	passable func(P, T) bool
	comps    [][]P
	label    map[P]int
}

// New labels the connected regions of m. A nil passable treats every member as passable.
func New[P comparable, T any](m grid.Store[P, T], passable func(P, T) bool) (*Partition[P, T], error) {
	if grid.IsNil[P, T](m) {
		return nil, ErrNilMap
	}
	if passable == nil {
		passable = func(P, T) bool { return true }
	}
	r := &Partition[P, T]{
		m:        m,
		passable: passable,
		label:    make(map[P]int, m.Count()),
	}
	r.build()

	return r, nil
}

// build runs one BFS per unlabeled passable cell, in map order.
func (r *Partition[P, T]) build() {
	for p, v := range r.m.All() {
		if !r.passable(p, v) {
			continue
		}
		if _, seen := r.label[p]; seen {
			continue
		}
		id := len(r.comps)
		r.label[p] = id
		queue := []P{p}
		for qi := 0; qi < len(queue); qi++ {
			for _, q := range r.m.Neighbors(queue[qi]) {
				if _, seen := r.label[q]; seen || !r.open(q) {
					continue
				}
				r.label[q] = id
				queue = append(queue, q)
			}
		}
		r.comps = append(r.comps, queue)
	}
}

func (r *Partition[P, T]) open(p P) bool {
	v, ok := r.m.Get(p)

	return ok && r.passable(p, v)
}

// Len returns the number of regions.
func (r *Partition[P, T]) Len() int { return len(r.comps) }

// Regions returns every region's cells. The slices are shared; do not modify them.
func (r *Partition[P, T]) Regions() [][]P { return r.comps }

// Region returns the cells of region i.
func (r *Partition[P, T]) Region(i int) ([]P, error) {
	if i < 0 || i >= len(r.comps) {
		return nil, fmt.Errorf("%w: %d of %d", ErrRegionIndex, i, len(r.comps))
	}

	return r.comps[i], nil
}

// Label returns the region index of p. Impassable and absent cells report false.
func (r *Partition[P, T]) Label(p P) (int, bool) {
	c, ok := r.m.Canonical(p)
	if !ok {
		return 0, false
	}
	id, ok := r.label[c]

	return id, ok
}

// Connected reports whether a and b lie in the same region.
func (r *Partition[P, T]) Connected(a, b P) bool {
	la, okA := r.Label(a)
	lb, okB := r.Label(b)

	return okA && okB && la == lb
}

// Largest returns the index of the region with the most cells, or -1 when
// there are none. Ties go to the lower index.
func (r *Partition[P, T]) Largest() int {
	best := -1
	for i, c := range r.comps {
		if best < 0 || len(c) > len(r.comps[best]) {
			best = i
		}
	}

	return best
}

// Bridge computes the minimal number of impassable cells that must be cleared
// to connect region src to region dst, and one such route. The route starts in
// src and ends at the first dst cell reached; cost counts only cleared cells.
// Equal regions yield a single-cell route of cost 0.
func (r *Partition[P, T]) Bridge(src, dst int) (path []P, cost int, err error) {
	from, err := r.Region(src)
	if err != nil {
		return nil, 0, err
	}
	to, err := r.Region(dst)
	if err != nil {
		return nil, 0, err
	}
	targets := mapset.New[P]()
	for _, p := range to {
		targets.Put(p)
	}

	dist := make(map[P]int, r.m.Count())
	prev := make(map[P]P, r.m.Count())
	distOf := func(p P) int {
		if d, ok := dist[p]; ok {
			return d
		}
		return math.MaxInt
	}

	dq := list.New()
	for _, p := range from {
		dist[p] = 0
		dq.PushBack(p)
	}

	var target P
	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(P)
		if targets.Has(u) {
			target, found = u, true
			break
		}
		for _, v := range r.m.Neighbors(u) {
			step := 1
			if r.open(v) {
				step = 0
			}
			nd := dist[u] + step
			if nd < distOf(v) {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, dst)
	}
	for at := target; ; {
		path = append(path, at)
		p, ok := prev[at]
		if !ok {
			break
		}
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
