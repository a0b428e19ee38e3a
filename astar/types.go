package astar

import "errors"

// Sentinel errors returned by PathFinder.Solve.
var (
	// ErrNilMap indicates a nil reader was passed to New.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrNegativeCost indicates a cost predicate returned a negative or NaN value.
	ErrNegativeCost = errors.New("astar: cell cost must be non-negative")

	// ErrBadWeight indicates a negative or NaN heuristic weight.
	ErrBadWeight = errors.New("astar: heuristic weight must be non-negative")

	// ErrConsumed indicates Solve was called on a finished session.
	ErrConsumed = errors.New("astar: path finder already solved")
)

// Path is the outcome of a solve.
//
// When Found is false, Points is nil and Cost is zero. Expanded counts the
// cells moved to the closed set, which is zero after a fast reject.
type Path[P comparable] struct {
	Found    bool
	Points   []P     // start first, end last
	Cost     float64 // accumulated cost at the end cell
	Expanded int
}

// Len returns the number of steps of the path (points minus one), or 0 when not found.
func (p Path[P]) Len() int {
	if len(p.Points) == 0 {
		return 0
	}

	return len(p.Points) - 1
}

// distancer is implemented by stores whose metric differs from their
// topology's, such as dense maps with wraparound.
type distancer[P comparable] interface {
	Distance(a, b P) int
}
