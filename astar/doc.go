// Package astar finds a single-pair shortest path on any gridmap store.
//
// Overview:
//
//   - A PathFinder is a one-shot session bound to a borrowed grid.Reader, a
//     start and an end coordinate. Rules (passability, entry cost) are attached
//     with builder methods before the single call to Solve.
//   - The open set is a binary heap ordered by f = g + w·h, where g is the
//     accumulated cost, h the topology distance to the end and w the heuristic
//     weight (1 by default). Equal f values pop in coordinate order, so every
//     run returns the same path.
//   - Entering a cell costs Rules.Cost(cell, value); the start cell is free.
//
// Admissibility:
//
//	With w = 1 the heuristic is admissible and consistent as long as every
//	cell costs at least 1. Callers supplying sub-unit costs must lower the
//	weight (w = min cost, or 0 for plain Dijkstra) to keep results optimal.
//	This is a caller contract, not a solver fault.
//
// Fast reject:
//
//	If start or end is not a member of the map, or end is impassable, Solve
//	returns a Path with Found == false without expanding any cell.
//
// State machine:
//
//	New ──Solve──▶ Searching ──▶ Found(path, cost) | Exhausted
//	Solve ──again──▶ ErrConsumed
//
// Errors:
//
//   - ErrNilMap:       the reader is nil.
//   - ErrNegativeCost: a cost predicate returned a negative or NaN cost.
//   - ErrBadWeight:    WithHeuristicWeight received a negative or NaN weight.
//   - ErrConsumed:     Solve was called more than once.
//
// An unreachable end is not an error: it is reported as Found == false.
//
// Complexity:
//
//   - Time:  O(E log V) for V cells expanded and E neighbor relaxations.
//   - Space: O(V) for g-scores, parents and the closed set.
package astar
