package astar

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/internal/frontier"
)

// PathFinder is a one-shot A* session over a borrowed map.
// It must not outlive the map, and the map must not change while Solve runs.
type PathFinder[P comparable, T any] struct {
	m          grid.Reader[P, T]
	start, end P
	base       grid.Rules[P, T]
	passable   func(p P, v T) bool
	cost       func(p P, v T) float64
	weight     float64
	onExpand   func(p P, cost float64)
	err        error
	consumed   bool
}

// New returns a path finder from start to end on m with uniform rules
// (every cell passable, unit cost) and heuristic weight 1.
func New[P comparable, T any](m grid.Reader[P, T], start, end P) *PathFinder[P, T] {
	pf := &PathFinder[P, T]{
		m:      m,
		start:  start,
		end:    end,
		base:   grid.Uniform[P, T]{},
		weight: 1,
	}
	if grid.IsNil(m) {
		pf.err = ErrNilMap
	}

	return pf
}

// WithRules replaces the base passability and cost rules.
// A nil r restores the uniform rules.
func (pf *PathFinder[P, T]) WithRules(r grid.Rules[P, T]) *PathFinder[P, T] {
	if r == nil {
		r = grid.Uniform[P, T]{}
	}
	pf.base = r

	return pf
}

// WithPassable overrides the passability predicate of the rules.
func (pf *PathFinder[P, T]) WithPassable(fn func(p P, v T) bool) *PathFinder[P, T] {
	pf.passable = fn

	return pf
}

// WithCost overrides the entry cost predicate of the rules.
func (pf *PathFinder[P, T]) WithCost(fn func(p P, v T) float64) *PathFinder[P, T] {
	pf.cost = fn

	return pf
}

// WithHeuristicWeight scales the distance heuristic. 0 turns the search into
// Dijkstra; values above 1 trade optimality for speed.
// A negative or NaN weight makes Solve fail with ErrBadWeight.
func (pf *PathFinder[P, T]) WithHeuristicWeight(w float64) *PathFinder[P, T] {
	if w < 0 || math.IsNaN(w) {
		pf.err = fmt.Errorf("%w: %v", ErrBadWeight, w)
		return pf
	}
	pf.weight = w

	return pf
}

// OnExpand registers a hook called each time a cell is closed, with its final cost.
func (pf *PathFinder[P, T]) OnExpand(fn func(p P, cost float64)) *PathFinder[P, T] {
	pf.onExpand = fn

	return pf
}

// Solve runs the search. It may be called once; later calls return ErrConsumed.
func (pf *PathFinder[P, T]) Solve() (Path[P], error) {
	if pf.consumed {
		return Path[P]{}, ErrConsumed
	}
	pf.consumed = true
	if pf.err != nil {
		return Path[P]{}, pf.err
	}

	rules := grid.Override[P, T]{Base: pf.base, PassableFunc: pf.passable, CostFunc: pf.cost}

	// Fast reject: both ends must be members and the end must be enterable.
	start, ok := pf.m.Canonical(pf.start)
	if !ok {
		return Path[P]{}, nil
	}
	end, ok := pf.m.Canonical(pf.end)
	if !ok {
		return Path[P]{}, nil
	}
	if v, _ := pf.m.Get(end); !rules.Passable(end, v) {
		return Path[P]{}, nil
	}

	topo := pf.m.Topology()
	dist := topo.Distance
	if d, ok := pf.m.(distancer[P]); ok {
		dist = d.Distance
	}

	r := &runner[P, T]{
		m:        pf.m,
		rules:    rules,
		end:      end,
		weight:   pf.weight,
		dist:     dist,
		onExpand: pf.onExpand,
		open:     frontier.New(topo.Compare),
		g:        map[P]float64{start: 0},
		parent:   make(map[P]P),
		closed:   mapset.New[P](),
	}

	return r.run(start)
}

// runner holds the mutable state of one search.
type runner[P comparable, T any] struct {
	m        grid.Reader[P, T]
	rules    grid.Rules[P, T]
	end      P
	weight   float64
	dist     func(a, b P) int
	onExpand func(p P, cost float64)

	open   *frontier.Queue[P] // frontier ordered by f, coordinate tie-break
	g      map[P]float64      // best known accumulated cost
	parent map[P]P            // predecessor on the best known path
	closed mapset.Set[P]      // finalized cells
}

func (r *runner[P, T]) heuristic(p P) float64 {
	if r.weight == 0 {
		return 0
	}

	return r.weight * float64(r.dist(p, r.end))
}

func (r *runner[P, T]) run(start P) (Path[P], error) {
	r.open.Push(frontier.Item[P]{Point: start, Priority: r.heuristic(start)})
	expanded := 0
	for {
		it, ok := r.open.Pop()
		if !ok {
			break
		}
		u := it.Point
		// Skip stale duplicates left by lazy decrease-key.
		if r.closed.Has(u) || it.Cost > r.g[u] {
			continue
		}
		r.closed.Put(u)
		expanded++
		if r.onExpand != nil {
			r.onExpand(u, it.Cost)
		}
		if u == r.end {
			return Path[P]{
				Found:    true,
				Points:   r.reconstruct(start, u),
				Cost:     it.Cost,
				Expanded: expanded,
			}, nil
		}
		if err := r.relax(u, it.Cost); err != nil {
			return Path[P]{}, err
		}
	}

	return Path[P]{Expanded: expanded}, nil
}

// relax pushes every passable, open neighbor of u whose cost through u improves.
func (r *runner[P, T]) relax(u P, gu float64) error {
	for _, v := range r.m.Neighbors(u) {
		if r.closed.Has(v) {
			continue
		}
		val, _ := r.m.Get(v)
		if !r.rules.Passable(v, val) {
			continue
		}
		c := r.rules.Cost(v, val)
		if c < 0 || math.IsNaN(c) {
			return fmt.Errorf("%w: %v costs %v", ErrNegativeCost, v, c)
		}
		ng := gu + c
		if old, seen := r.g[v]; seen && ng >= old {
			continue
		}
		r.g[v] = ng
		r.parent[v] = u
		r.open.Push(frontier.Item[P]{Point: v, Priority: ng + r.heuristic(v), Cost: ng})
	}

	return nil
}

// reconstruct walks parent links from end back to start and reverses them.
func (r *runner[P, T]) reconstruct(start, end P) []P {
	path := []P{end}
	for at := end; at != start; {
		at = r.parent[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
