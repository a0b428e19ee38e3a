// Package taxicab implements the rectilinear (4-neighbor) topology of gridmap.
//
// What:
//
//   - Point{X, Y} is the canonical coordinate; Y grows north.
//   - Direction is one of East (+X), West (-X), North (+Y), South (-Y).
//   - Joint is a directed edge (point + direction) between two cells.
//   - Topology plugs points into the generic sparse/dense stores and the solvers.
//   - Square and Rectangle build dense maps; NewSparse builds an empty sparse one.
//
// Distance:
//
//	Distance(a, b) = |dx| + |dy|, the manhattan metric and the admissible A*
//	heuristic whenever every cell costs at least 1.
//
// Rings ("diamonds"):
//
//	Ring(c, n) yields exactly 4·n points for n > 0, starting at (x+n, y) and
//	turning counter-clockwise:
//
//	         (x, y+n)
//	        /        \
//	(x-n, y)          (x+n, y)  ← index 0
//	        \        /
//	         (x, y-n)
package taxicab
