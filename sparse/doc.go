// Package sparse provides an ordered, unbounded map from grid coordinates to cell values.
//
// What:
//
//   - Map[P, T] stores only the coordinates that were set. Membership is key
//     presence and is independent of any bounding rectangle.
//   - Keys are kept in an AVL tree ordered by Topology.Compare, so All and
//     Points iterate in deterministic coordinate order.
//   - Neighbors, Ring and Disk enumerate around a coordinate, filtered by
//     membership only; passability is a solver concern.
//
// When to use:
//
//   - Maps that grow, have holes, or cover irregular shapes (hexagonal disks,
//     staggered offset layouts). For fixed rectangles use package dense.
//
// Complexity:
//
//   - Get/Set/Remove/Contains: O(log n).
//   - All/Points: O(n) per full pass.
//   - Neighbors: O(d log n), d = number of directions.
//
// Concurrency:
//
//	Map is not safe for concurrent mutation. Solvers borrow it read-only;
//	synchronize externally if another goroutine writes during a solve.
package sparse
