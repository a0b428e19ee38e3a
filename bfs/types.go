package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilMap is returned if a nil map is passed.
	ErrNilMap = errors.New("bfs: map is nil")

	// ErrStartNotFound is returned when the start coordinate is not a member of the map.
	ErrStartNotFound = errors.New("bfs: start coordinate not in map")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a coordinate the walk never visited.
	ErrNotReached = errors.New("bfs: coordinate not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth, or a hook typed for a
// different coordinate type than the map), it is recorded internally and
// surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
//
// The hooks are typed on the coordinate (and value) type of the map being
// walked; they are stored untyped here so that options stay usable without
// explicit type arguments, and are checked against the map when Walk starts.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	onEnqueue any // func(P, int)
	onDequeue any // func(P, int)
	onVisit   any // func(P, int) error
	filter    any // func(curr, neighbor P) bool
	passable  any // func(P, T) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no hooks, every neighbor allowed.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback to run when a cell is first discovered.
func WithOnEnqueue[P comparable](fn func(p P, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run immediately before a cell is visited.
func WithOnDequeue[P comparable](fn func(p P, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[P comparable](fn func(p P, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips the step curr→neighbor when fn returns false.
func WithFilterNeighbor[P comparable](fn func(curr, neighbor P) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// WithPassable only admits neighbors whose stored value satisfies fn.
// The start cell is always visited.
func WithPassable[P comparable, T any](fn func(p P, v T) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.passable = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result[P comparable] struct {
	Order  []P
	Depth  map[P]int
	Parent map[P]P
}

// PathTo reconstructs the path from the start cell to dest.
// dest must be given in canonical form. Returns ErrNotReached if dest
// was not visited.
func (r *Result[P]) PathTo(dest P) ([]P, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []P{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// Layers groups Order by depth: Layers()[d] holds the cells at distance d,
// in visit order.
func (r *Result[P]) Layers() [][]P {
	var out [][]P
	for _, p := range r.Order {
		d := r.Depth[p]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], p)
	}

	return out
}
