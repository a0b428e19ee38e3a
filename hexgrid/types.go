package hexgrid

import "errors"

// Sentinel errors for hexgrid operations.
var (
	// ErrInvalidAdjacency indicates two coordinates that are not one step apart.
	ErrInvalidAdjacency = errors.New("hexgrid: coordinates are not adjacent")

	// ErrInvalidCube indicates cube components whose sum is not zero.
	ErrInvalidCube = errors.New("hexgrid: cube coordinates must sum to zero")

	// ErrInvalidDoubled indicates doubled coordinates with odd parity.
	ErrInvalidDoubled = errors.New("hexgrid: doubled coordinates must have even col+row parity")

	// ErrBadDimensions indicates a non-positive width/height or a negative radius.
	ErrBadDimensions = errors.New("hexgrid: map dimensions must be positive")

	// ErrParse indicates text that does not describe a coordinate or direction.
	ErrParse = errors.New("hexgrid: cannot parse")
)

// Axial is a hexagon addressed by its axial coordinates.
type Axial struct {
	Q int
	R int
}

// Direction is one of the six step vectors between adjacent hexagons.
type Direction uint8

// The six directions, in rotational order. Opposite directions are three apart.
const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

// directionCount is the number of hex directions.
const directionCount = 6

// offsets holds the axial step vector of every Direction.
var offsets = [directionCount]Axial{
	East:      {Q: +1, R: 0},
	NorthEast: {Q: +1, R: -1},
	NorthWest: {Q: 0, R: -1},
	West:      {Q: -1, R: 0},
	SouthWest: {Q: -1, R: +1},
	SouthEast: {Q: 0, R: +1},
}

// Joint is a directed edge from From to the hexagon one step away in Dir.
type Joint struct {
	From Axial
	Dir  Direction
}

// OffsetLayout selects one of the four staggered offset coordinate systems.
type OffsetLayout uint8

const (
	// OddR shoves odd rows right (pointy-top, rows first).
	OddR OffsetLayout = iota
	// EvenR shoves even rows right.
	EvenR
	// OddQ shoves odd columns down (columns first).
	OddQ
	// EvenQ shoves even columns down.
	EvenQ
)

// DoubledLayout selects the doubled coordinate system.
type DoubledLayout uint8

const (
	// DoubledWidth doubles the column step: col = 2q + r.
	DoubledWidth DoubledLayout = iota
	// DoubledHeight doubles the row step: row = 2r + q.
	DoubledHeight
)
