// Package grid declares the contracts shared by every map and solver in gridmap.
//
// What:
//
//   - Topology describes how coordinates of one grid family step, compare and
//     measure distance (hexgrid.Topology, taxicab.Topology).
//   - Planar adds a two-axis addressing scheme, required by dense storage.
//   - Reader is the read-only view a solver borrows for the duration of a solve.
//   - Store is the full map contract implemented by sparse.Map and dense.Map.
//   - Rules is the passable/cost capability consulted by solvers.
//
// Why:
//
//   - One generic store and one generic solver serve both hexagonal and
//     rectilinear grids without duplicating search code.
//   - Solvers stay allocation-light and type-checked: predicates are plain
//     interface methods or typed funcs, never untyped callbacks.
//
// Ordering:
//
//	Topology.Compare is a total, lexicographic order. Sparse maps iterate in
//	that order and both solvers use it to break priority ties, which makes
//	every result deterministic across runs.
//
// Absence:
//
//	Asking a Reader for a coordinate it does not contain returns the zero value
//	and false. It is never an error.
package grid
