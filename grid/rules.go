package grid

// UnitCost is the per-cell cost used when no cost predicate is supplied.
const UnitCost = 1.0

// Uniform is the default Rules: every cell is passable and costs UnitCost.
type Uniform[P comparable, T any] struct{}

// Passable always returns true.
func (Uniform[P, T]) Passable(P, T) bool { return true }

// Cost always returns UnitCost.
func (Uniform[P, T]) Cost(P, T) float64 { return UnitCost }

// RuleFuncs adapts plain functions to Rules.
// A nil PassableFunc admits every cell; a nil CostFunc charges UnitCost.
type RuleFuncs[P comparable, T any] struct {
	PassableFunc func(p P, v T) bool
	CostFunc     func(p P, v T) float64
}

// Passable calls PassableFunc, or returns true when it is nil.
func (r RuleFuncs[P, T]) Passable(p P, v T) bool {
	if r.PassableFunc == nil {
		return true
	}

	return r.PassableFunc(p, v)
}

// Cost calls CostFunc, or returns UnitCost when it is nil.
func (r RuleFuncs[P, T]) Cost(p P, v T) float64 {
	if r.CostFunc == nil {
		return UnitCost
	}

	return r.CostFunc(p, v)
}

// Override layers optional predicates over a base Rules value.
// Nil funcs fall through to Base.
type Override[P comparable, T any] struct {
	Base         Rules[P, T]
	PassableFunc func(p P, v T) bool
	CostFunc     func(p P, v T) float64
}

// Passable uses PassableFunc when set, otherwise Base.
func (o Override[P, T]) Passable(p P, v T) bool {
	if o.PassableFunc != nil {
		return o.PassableFunc(p, v)
	}

	return o.Base.Passable(p, v)
}

// Cost uses CostFunc when set, otherwise Base.
func (o Override[P, T]) Cost(p P, v T) float64 {
	if o.CostFunc != nil {
		return o.CostFunc(p, v)
	}

	return o.Base.Cost(p, v)
}
