package hexgrid

import (
	"fmt"

	"github.com/katalvlaran/gridmap/dense"
	"github.com/katalvlaran/gridmap/sparse"
)

// NewSparse returns an empty sparse hex map.
func NewSparse[T any]() *sparse.Map[Axial, T] {
	return sparse.New[Axial, T](Topology{})
}

// Rhombus returns a dense width×height hex map covering Q in [0, width) and
// R in [0, height) (shifted by any WithOrigin option), every cell set to fill.
// Dense options (origin, wraparound) apply in axial space.
func Rhombus[T any](width, height int, fill T, opts ...dense.Option) (*dense.Map[Axial, T], error) {
	m, err := dense.New[Axial, T](Topology{}, width, height, fill, opts...)
	if err != nil {
		return nil, fmt.Errorf("hexgrid: rhombus: %w", err)
	}

	return m, nil
}

// Circle returns a sparse hex map holding every hexagon within radius steps of
// the origin, each set to fill. It holds DiskSize(radius) cells.
// Returns ErrBadDimensions for a negative radius.
func Circle[T any](radius int, fill T) (*sparse.Map[Axial, T], error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius %d", ErrBadDimensions, radius)
	}
	m := NewSparse[T]()
	for a := range Disk(Axial{}, radius) {
		m.Set(a, fill)
	}

	return m, nil
}

// WidthFirst returns a sparse hex map laid out as rows of columns hexagons.
// Rows are staggered: with oddShift the odd rows are shoved half a hexagon
// right (odd-r), otherwise the even rows are (even-r). Cell (col, row) sits at
// FromOffset(col, row, OddR|EvenR).
// Returns ErrBadDimensions unless rows and columns are positive.
func WidthFirst[T any](rows, columns int, oddShift bool, fill T) (*sparse.Map[Axial, T], error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %d rows x %d columns", ErrBadDimensions, rows, columns)
	}
	layout := EvenR
	if oddShift {
		layout = OddR
	}
	m := NewSparse[T]()
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			m.Set(FromOffset(col, row, layout), fill)
		}
	}

	return m, nil
}

// HeightFirst returns a sparse hex map laid out as columns of rows hexagons.
// Columns are staggered: with oddShift the odd columns are shoved half a
// hexagon down (odd-q), otherwise the even columns are (even-q).
// Returns ErrBadDimensions unless rows and columns are positive.
func HeightFirst[T any](rows, columns int, oddShift bool, fill T) (*sparse.Map[Axial, T], error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %d rows x %d columns", ErrBadDimensions, rows, columns)
	}
	layout := EvenQ
	if oddShift {
		layout = OddQ
	}
	m := NewSparse[T]()
	for col := 0; col < columns; col++ {
		for row := 0; row < rows; row++ {
			m.Set(FromOffset(col, row, layout), fill)
		}
	}

	return m, nil
}
