package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridmap/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem[P comparable] struct {
	p     P
	depth int
}

// hooks are the typed views of the untyped callbacks in Options.
type hooks[P comparable, T any] struct {
	onEnqueue func(P, int)
	onDequeue func(P, int)
	onVisit   func(P, int) error
	filter    func(curr, neighbor P) bool
	passable  func(P, T) bool
}

// walker encapsulates mutable BFS state.
type walker[P comparable, T any] struct {
	m     grid.Reader[P, T]
	opts  Options
	h     hooks[P, T]
	ctx   context.Context
	queue []queueItem[P]
	res   *Result[P]
}

// Walk runs breadth-first search over m starting from start, applying any
// number of functional Options. Neighbors come from m.Neighbors, so wrapped
// axes and membership are honored by the map itself.
// Returns ErrNilMap or ErrStartNotFound for invalid input, ErrOptionViolation
// for bad options, the context error on cancellation, or any hook error.
func Walk[P comparable, T any](m grid.Reader[P, T], start P, opts ...Option) (*Result[P], error) {
	if grid.IsNil(m) {
		return nil, ErrNilMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	h, err := bind[P, T](o)
	if err != nil {
		return nil, err
	}

	root, ok := m.Canonical(start)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	w := &walker[P, T]{
		m:    m,
		opts: o,
		h:    h,
		ctx:  o.Ctx,
		res: &Result[P]{
			Depth:  make(map[P]int),
			Parent: make(map[P]P),
		},
	}
	w.enqueue(root, 0)

	return w.res, w.loop()
}

// bind type-checks the stored callbacks against P and T.
func bind[P comparable, T any](o Options) (hooks[P, T], error) {
	var h hooks[P, T]
	var ok bool
	if o.onEnqueue != nil {
		if h.onEnqueue, ok = o.onEnqueue.(func(P, int)); !ok {
			return h, fmt.Errorf("%w: OnEnqueue has type %T", ErrOptionViolation, o.onEnqueue)
		}
	}
	if o.onDequeue != nil {
		if h.onDequeue, ok = o.onDequeue.(func(P, int)); !ok {
			return h, fmt.Errorf("%w: OnDequeue has type %T", ErrOptionViolation, o.onDequeue)
		}
	}
	if o.onVisit != nil {
		if h.onVisit, ok = o.onVisit.(func(P, int) error); !ok {
			return h, fmt.Errorf("%w: OnVisit has type %T", ErrOptionViolation, o.onVisit)
		}
	}
	if o.filter != nil {
		if h.filter, ok = o.filter.(func(P, P) bool); !ok {
			return h, fmt.Errorf("%w: FilterNeighbor has type %T", ErrOptionViolation, o.filter)
		}
	}
	if o.passable != nil {
		if h.passable, ok = o.passable.(func(P, T) bool); !ok {
			return h, fmt.Errorf("%w: Passable has type %T", ErrOptionViolation, o.passable)
		}
	}

	return h, nil
}

// enqueue records p at depth d and adds it to the queue.
func (w *walker[P, T]) enqueue(p P, d int) {
	w.res.Depth[p] = d
	if w.h.onEnqueue != nil {
		w.h.onEnqueue(p, d)
	}
	w.queue = append(w.queue, queueItem[P]{p: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[P, T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if w.h.onDequeue != nil {
			w.h.onDequeue(item.p, item.depth)
		}
		w.res.Order = append(w.res.Order, item.p)
		if w.h.onVisit != nil {
			if err := w.h.onVisit(item.p, item.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
			}
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues each unseen admissible neighbor of item.
func (w *walker[P, T]) expand(item queueItem[P]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.m.Neighbors(item.p) {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if w.h.filter != nil && !w.h.filter(item.p, nbr) {
			continue
		}
		if w.h.passable != nil {
			v, _ := w.m.Get(nbr)
			if !w.h.passable(nbr, v) {
				continue
			}
		}
		w.res.Parent[nbr] = item.p
		w.enqueue(nbr, next)
	}
}
