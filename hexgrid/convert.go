package hexgrid

import (
	"fmt"
	"math"
)

// Cube is the redundant three-axis form of an axial coordinate, Q+R+S == 0.
type Cube struct {
	Q, R, S int
}

// ToCube returns the cube form of a.
func ToCube(a Axial) Cube { return Cube{Q: a.Q, R: a.R, S: a.S()} }

// FromCube returns the axial form of c.
// Returns ErrInvalidCube if the components do not sum to zero.
func FromCube(c Cube) (Axial, error) {
	if c.Q+c.R+c.S != 0 {
		return Axial{}, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidCube, c.Q, c.R, c.S)
	}

	return Axial{Q: c.Q, R: c.R}, nil
}

// ToOffset returns the (col, row) of a in the given staggered layout.
func ToOffset(a Axial, layout OffsetLayout) (col, row int) {
	switch layout {
	case EvenR:
		return a.Q + (a.R+(a.R&1))/2, a.R
	case OddQ:
		return a.Q, a.R + (a.Q-(a.Q&1))/2
	case EvenQ:
		return a.Q, a.R + (a.Q+(a.Q&1))/2
	default: // OddR
		return a.Q + (a.R-(a.R&1))/2, a.R
	}
}

// FromOffset returns the axial coordinate at (col, row) of the given layout.
// Every (col, row) pair is valid, so FromOffset cannot fail.
func FromOffset(col, row int, layout OffsetLayout) Axial {
	switch layout {
	case EvenR:
		return Axial{Q: col - (row+(row&1))/2, R: row}
	case OddQ:
		return Axial{Q: col, R: row - (col-(col&1))/2}
	case EvenQ:
		return Axial{Q: col, R: row - (col+(col&1))/2}
	default: // OddR
		return Axial{Q: col - (row-(row&1))/2, R: row}
	}
}

// ToDoubled returns the (col, row) of a in the given doubled layout.
func ToDoubled(a Axial, layout DoubledLayout) (col, row int) {
	if layout == DoubledHeight {
		return a.Q, 2*a.R + a.Q
	}

	return 2*a.Q + a.R, a.R
}

// FromDoubled returns the axial coordinate at (col, row) of the given doubled layout.
// Returns ErrInvalidDoubled when col+row is odd, which addresses no hexagon.
func FromDoubled(col, row int, layout DoubledLayout) (Axial, error) {
	if (col+row)&1 != 0 {
		return Axial{}, fmt.Errorf("%w: (%d, %d)", ErrInvalidDoubled, col, row)
	}
	if layout == DoubledHeight {
		return Axial{Q: col, R: (row - col) / 2}, nil
	}

	return Axial{Q: (col - row) / 2, R: row}, nil
}

// Round returns the hexagon containing the fractional axial point (q, r).
func Round(q, r float64) Axial {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}

	return Axial{Q: int(rq), R: int(rr)}
}
