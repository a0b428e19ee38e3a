// Package dense provides a rectangular, slice-backed grid map with an origin
// offset and optional per-axis wraparound.
//
// What:
//
//   - Map[P, T] stores width×height cells row-major: index = j*width + i,
//     where (i, j) are the 0-based storage offsets of a coordinate.
//   - Origin: the logical coordinate (x, y) lives at offset (x-originX, y-originY),
//     so maps may cover negative coordinates and may grow in any direction.
//   - Wraparound: when enabled on an axis, offsets on that axis are reduced
//     modulo the extent instead of being rejected (cylinders and tori).
//   - Extend grows the extent along one side while keeping every previously
//     addressable coordinate bound to the same value.
//
// Membership:
//
//	A coordinate belongs to the map iff, after origin and wrap normalization,
//	it falls inside the extent. Canonical returns the normalized coordinate;
//	Neighbors, Ring and Disk yield canonical coordinates only and never repeat
//	a storage cell, even on one- or two-cell wide wrapped axes.
//
// Accessors:
//
//   - Get, Ref, Set, Remove are checked: an out-of-range coordinate yields the
//     zero value and false.
//   - At is the unchecked fast path. Its precondition is that the coordinate is
//     a member; violating it panics with ErrOutOfBounds. It never reads
//     outside the backing slice.
//
// Complexity:
//
//   - Get/Set/At/Contains: O(1).
//   - All/Row/Column: O(cells visited).
//   - Extend: O(width×height) time and memory.
package dense
