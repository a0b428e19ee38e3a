// Package scenario drives gridmap end to end from a YAML description.
//
// A scenario names a topology ("hex" or "taxicab"), a map shape and its
// dimensions, optional procedural terrain, a list of blocked cells, and the
// path and reachability requests to run on the result:
//
//	name: ford crossing
//	topology: hex
//	shape: rhombus
//	width: 16
//	height: 12
//	terrain:
//	  seed: 7
//	blocked: ["(3, 4)", "(3, 5)"]
//	paths:
//	  - {name: scout, from: "0,0", to: "15,11"}
//	fields:
//	  - {name: infantry, from: "8,6", budget: 4}
//
// Parse and Load decode a scenario and fill defaults; Validate reports the
// first problem as a sentinel error; Run builds the map, paints it, runs every
// request with terrain rules and returns a Report that marshals back to YAML.
//
// Run logs through the supplied *slog.Logger; the map and solver packages
// themselves never log.
package scenario
