// Package regions partitions a grid map into connected regions of passable
// cells and computes minimal-cost bridges between them.
//
// What:
//
//   - Partition labels every passable member of a grid.Store with the index
//     of its connected region ("island"), using the map's own neighbor
//     relation so wrapped axes and hex adjacency are honored.
//   - Bridge finds the fewest impassable cells that must be cleared to join
//     two regions (0-1 BFS).
//
// Why:
//
//   - Game maps: contiguous land detection, reachability pre-checks before
//     running a pathfinder, optimal bridging.
//
// Determinism:
//
//	Regions are numbered in the map's iteration order (All), and each
//	region lists its cells in BFS discovery order from its first member.
//
// Complexity (V = member cells, k = neighbors per cell):
//
//   - New:    O(V·k), Memory: O(V).
//   - Bridge: O(V·k), Memory: O(V).
//
// Errors:
//
//   - ErrNilMap: a nil map was passed to New.
//   - ErrRegionIndex: requested region index out of range.
//   - ErrNoPath: no conversion path exists between the regions.
package regions
