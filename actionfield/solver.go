package actionfield

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/internal/frontier"
)

// Solver is a one-shot reachability session over a borrowed map.
type Solver[P comparable, T any] struct {
	m        grid.Reader[P, T]
	start    P
	budget   float64
	base     grid.Rules[P, T]
	passable func(p P, v T) bool
	cost     func(p P, v T) float64
	onSettle func(p P, cost float64)
	consumed bool
}

// New returns a solver exploring m from start up to budget with uniform rules.
func New[P comparable, T any](m grid.Reader[P, T], start P, budget float64) *Solver[P, T] {
	return &Solver[P, T]{
		m:      m,
		start:  start,
		budget: budget,
		base:   grid.Uniform[P, T]{},
	}
}

// WithRules replaces the base passability and cost rules. Nil restores the uniform rules.
func (s *Solver[P, T]) WithRules(r grid.Rules[P, T]) *Solver[P, T] {
	if r == nil {
		r = grid.Uniform[P, T]{}
	}
	s.base = r

	return s
}

// WithPassable overrides the passability predicate.
func (s *Solver[P, T]) WithPassable(fn func(p P, v T) bool) *Solver[P, T] {
	s.passable = fn

	return s
}

// WithCost overrides the entry cost predicate.
func (s *Solver[P, T]) WithCost(fn func(p P, v T) float64) *Solver[P, T] {
	s.cost = fn

	return s
}

// OnSettle registers a hook called as each cell is settled, in settling order.
func (s *Solver[P, T]) OnSettle(fn func(p P, cost float64)) *Solver[P, T] {
	s.onSettle = fn

	return s
}

// Solve explores the map. It may be called once; later calls return ErrConsumed.
func (s *Solver[P, T]) Solve() (*Field[P], error) {
	if s.consumed {
		return nil, ErrConsumed
	}
	s.consumed = true
	if grid.IsNil(s.m) {
		return nil, ErrNilMap
	}
	if s.budget < 0 || math.IsNaN(s.budget) {
		return nil, fmt.Errorf("%w: %v", ErrBadBudget, s.budget)
	}

	topo := s.m.Topology()
	f := newField[P](topo.Compare)
	start, ok := s.m.Canonical(s.start)
	if !ok {
		return f, nil
	}
	f.start = start

	rules := grid.Override[P, T]{Base: s.base, PassableFunc: s.passable, CostFunc: s.cost}
	open := frontier.New(topo.Compare)
	best := map[P]float64{start: 0}
	open.Push(frontier.Item[P]{Point: start})

	for {
		it, ok := open.Pop()
		if !ok {
			break
		}
		u := it.Point
		if f.Contains(u) || it.Cost > best[u] {
			continue
		}
		f.settle(u, it.Cost)
		if s.onSettle != nil {
			s.onSettle(u, it.Cost)
		}
		for _, v := range s.m.Neighbors(u) {
			if f.Contains(v) {
				continue
			}
			val, _ := s.m.Get(v)
			if !rules.Passable(v, val) {
				continue
			}
			c := rules.Cost(v, val)
			if c < 0 || math.IsNaN(c) {
				return nil, fmt.Errorf("%w: %v costs %v", ErrNegativeCost, v, c)
			}
			nc := it.Cost + c
			if nc > s.budget {
				continue
			}
			if old, seen := best[v]; seen && nc >= old {
				continue
			}
			best[v] = nc
			f.parent[v] = u
			open.Push(frontier.Item[P]{Point: v, Priority: nc, Cost: nc})
		}
	}
	f.sort()

	return f, nil
}
