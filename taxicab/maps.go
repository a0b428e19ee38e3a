package taxicab

import (
	"fmt"

	"github.com/katalvlaran/gridmap/dense"
	"github.com/katalvlaran/gridmap/sparse"
)

// Rectangle returns a dense width×height map with every cell set to fill.
// Dense options (origin, wraparound) are passed through.
func Rectangle[T any](width, height int, fill T, opts ...dense.Option) (*dense.Map[Point, T], error) {
	m, err := dense.New[Point, T](Topology{}, width, height, fill, opts...)
	if err != nil {
		return nil, fmt.Errorf("taxicab: rectangle: %w", err)
	}

	return m, nil
}

// Square returns a dense size×size map with every cell set to fill.
func Square[T any](size int, fill T, opts ...dense.Option) (*dense.Map[Point, T], error) {
	return Rectangle(size, size, fill, opts...)
}

// NewSparse returns an empty sparse taxicab map.
func NewSparse[T any]() *sparse.Map[Point, T] {
	return sparse.New[Point, T](Topology{})
}

// Extend grows m by amount cells toward direction d, filling new cells with fill.
func Extend[T any](m *dense.Map[Point, T], d Direction, amount int, fill T) error {
	return m.Extend(d.Side(), amount, fill)
}
