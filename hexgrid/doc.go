// Package hexgrid implements the hexagonal topology of gridmap in axial coordinates.
//
// What:
//
//   - Axial{Q, R} is the one canonical coordinate. The third cube axis is
//     derived as S = -Q-R and never stored.
//   - Direction enumerates the six step vectors E, NE, NW, W, SW, SE
//     (pointy-top orientation, R grows "down").
//   - Joint is a directed edge (coordinate + direction) between two cells.
//   - Topology plugs axial coordinates into the generic sparse/dense stores
//     and the astar/actionfield solvers.
//   - Rhombus, Circle, WidthFirst and HeightFirst build fully populated maps.
//
// Conversions:
//
//	Cube, offset (odd-r, even-r, odd-q, even-q) and doubled (width, height)
//	forms are exposed only as stateless conversion functions. Pixel projection
//	(Center, Corners, FromPixel) and text (String, ParseAxial, ParseDirection)
//	live here as well; none of them is used by the solvers.
//
// Distance:
//
//	Distance(a, b) = (|dq| + |dr| + |dq+dr|) / 2, i.e. half the cube L1 distance.
//	It is the exact step count on an unbounded grid and the admissible A*
//	heuristic whenever every cell costs at least 1.
//
// Rings:
//
//	Ring(c, r) yields exactly 6·r cells for r > 0, starting at c + SW·r and
//	walking E, NE, NW, W, SW, SE; Ring(c, 0) yields c.
//
//	    NW  NE
//	  W   c   E
//	    SW  SE
package hexgrid
