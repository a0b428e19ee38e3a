// Package actionfield computes every cell reachable from a start within a cost budget.
//
// What:
//
//	A Solver is a one-shot session bound to a borrowed grid.Reader, a start
//	coordinate and a non-negative budget. Solve runs Dijkstra from the start,
//	admitting a neighbor only while its tentative accumulated cost stays within
//	the budget, and returns a Field: the settled cells with their minimal costs
//	and the parent links needed to walk back to the start.
//
// Why:
//
//	Turn-based and tactical games ask "where can this unit move this turn?".
//	The answer is the set of cells whose cheapest path costs at most the unit's
//	movement points; PathTo then gives the route to the chosen cell.
//
// Rules:
//
//   - Entering a cell costs Rules.Cost(cell, value); the start is settled at 0
//     whenever it is a member, even if the rules would not let a unit enter it.
//   - Impassable cells are never admitted.
//   - Frontier ties are broken by coordinate order, so settling order and
//     parent links are deterministic.
//
// Errors:
//
//   - ErrNilMap:       the reader is nil.
//   - ErrBadBudget:    the budget is negative or NaN.
//   - ErrNegativeCost: a cost predicate returned a negative or NaN cost.
//   - ErrConsumed:     Solve was called more than once.
//
// A start outside the map is not an error: Solve returns an empty Field.
//
// Complexity:
//
//   - Time:  O(E log V) over the V cells within budget.
//   - Space: O(V).
package actionfield
