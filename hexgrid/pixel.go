package hexgrid

import "math"

var sqrt3 = math.Sqrt(3)

// Center returns the pixel center of a for pointy-top hexagons of the given
// size (center-to-corner radius).
func Center(a Axial, size float64) (x, y float64) {
	x = size * sqrt3 * (float64(a.Q) + float64(a.R)/2)
	y = size * 1.5 * float64(a.R)

	return x, y
}

// Corners returns the six pixel corners of a, starting at the upper-right
// corner and turning clockwise on screen.
func Corners(a Axial, size float64) [directionCount][2]float64 {
	cx, cy := Center(a, size)
	var out [directionCount][2]float64
	for i := range out {
		angle := math.Pi / 180 * float64(60*i-30)
		out[i] = [2]float64{cx + size*math.Cos(angle), cy + size*math.Sin(angle)}
	}

	return out
}

// FromPixel returns the hexagon containing pixel (x, y).
func FromPixel(x, y, size float64) Axial {
	q := (sqrt3/3*x - y/3) / size
	r := (2.0 / 3 * y) / size

	return Round(q, r)
}
