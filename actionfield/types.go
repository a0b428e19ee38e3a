package actionfield

import "errors"

// Sentinel errors returned by Solver.Solve.
var (
	// ErrNilMap indicates a nil reader was passed to New.
	ErrNilMap = errors.New("actionfield: map is nil")

	// ErrBadBudget indicates a negative or NaN budget.
	ErrBadBudget = errors.New("actionfield: budget must be non-negative")

	// ErrNegativeCost indicates a cost predicate returned a negative or NaN value.
	ErrNegativeCost = errors.New("actionfield: cell cost must be non-negative")

	// ErrConsumed indicates Solve was called on a finished session.
	ErrConsumed = errors.New("actionfield: solver already solved")
)

// Reach is one settled cell and its minimal accumulated cost from the start.
type Reach[P comparable] struct {
	Point P
	Cost  float64
}
