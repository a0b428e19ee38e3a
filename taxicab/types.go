package taxicab

import "errors"

// Sentinel errors for taxicab operations.
var (
	// ErrInvalidAdjacency indicates two points that are not one step apart.
	ErrInvalidAdjacency = errors.New("taxicab: points are not adjacent")

	// ErrParse indicates text that does not describe a point or direction.
	ErrParse = errors.New("taxicab: cannot parse")
)

// Point is a cell of a rectilinear grid.
type Point struct {
	X int
	Y int
}

// Direction is one of the four axis-aligned steps.
type Direction uint8

// The four directions. Opposites differ only in the lowest bit.
const (
	East Direction = iota
	West
	North
	South
)

// directionCount is the number of taxicab directions.
const directionCount = 4

var offsets = [directionCount]Point{
	East:  {X: +1, Y: 0},
	West:  {X: -1, Y: 0},
	North: {X: 0, Y: +1},
	South: {X: 0, Y: -1},
}

// Joint is a directed edge from From to the cell one step away in Dir.
type Joint struct {
	From Point
	Dir  Direction
}
