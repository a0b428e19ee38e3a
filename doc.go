// Package gridmap is an in-memory toolkit for two-dimensional grid maps:
// hexagonal and square-cell coordinates, sparse and dense storage, and the
// movement algorithms games and simulations run over them.
//
// What lives where
//
//	grid/        — Topology, Reader, Store and Rules contracts shared by everything below
//	hexgrid/     — axial hex coordinates, directions, joints, rings, offset/pixel conversion, map shapes
//	taxicab/     — square cells with four-way steps, directions, joints, rectangle maps
//	sparse/      — ordered map-backed store for irregular shapes
//	dense/       — flat rectangular store with origin, wrap-around axes and growth
//	astar/       — cheapest path between two cells (A*), wrap-aware heuristic
//	actionfield/ — every cell reachable within a cost budget, with routes back
//	bfs/         — unit-cost breadth-first walk with hooks and depth limit
//	regions/     — connected regions of passable cells and minimal bridges
//	terrain/     — seeded simplex-noise terrain and its movement rules
//	scenario/    — YAML scenario files tying maps, terrain and queries together
//	cmd/gridmap  — command-line runner for scenario files
//
// Quick ASCII example (axial q, r around the origin):
//
//	      (0,-1) (1,-1)
//	  (-1,0) (0,0) (1,0)
//	      (-1,1) (0,1)
//
//	is the disk of radius 1: the center and its six neighbors.
//
// Cells are addressed by value types (hexgrid.Axial, taxicab.Point) and carry
// any payload T. Algorithms only see the grid.Reader contract, so the same
// pathfinder runs over a sparse hex island and a wrapped dense torus.
package gridmap
