// Package terrain provides a ready-made cell type for gridmap stores and a
// procedural generator that paints it.
//
// A Cell carries a Kind (Plains, Forest, Hills, Mountain, Water, Wall) plus the
// Elevation and Moisture samples it was derived from. Kinds decide movement:
// Water and Wall are impassable, the others cost 1 to 5 to enter. Rules[P]
// exposes that table as a grid.Rules capability, so any solver can run on a
// painted map without extra predicates.
//
// The Generator layers several octaves of OpenSimplex noise
// (github.com/ojrac/opensimplex-go), one field for elevation and an
// independent one for moisture, and classifies each sample with the
// thresholds in Options. The same seed always yields the same terrain.
//
// Paint fills every member of a store. Coordinates are projected to the plane
// with a caller-supplied function; HexPlane and TaxicabPlane cover the two
// built-in topologies.
package terrain
