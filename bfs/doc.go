// Package bfs provides breadth-first search over a grid map, returning
// step distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → steps from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Prunes steps via WithFilterNeighbor and cells via WithPassable.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unit-cost reachability is the common case for grid maps (flood fill,
//     region discovery, movement ranges where every step costs the same),
//     and BFS answers it in O(V) without a priority queue.
//
// Determinism
//
//	Neighbors are enqueued in the order the map returns them, which is the
//	topology's fixed direction order. The visit sequence is reproducible.
//
// Complexity (V = visited cells, k = neighbors per cell)
//
//   - Time:   O(V·k)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithPassable(func(p taxicab.Point, v int) bool { return v != wall }),
//	)
package bfs
