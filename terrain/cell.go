package terrain

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridmap/grid"
)

var kindNames = [kindCount]string{
	Plains:   "plains",
	Forest:   "forest",
	Hills:    "hills",
	Mountain: "mountain",
	Water:    "water",
	Wall:     "wall",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// ParseKind is the inverse of Kind.String; it ignores case and surrounding space.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Passable reports whether units may enter the kind.
func (k Kind) Passable() bool { return k < kindCount && k != Water && k != Wall }

// Cost returns the entry cost of the kind, +Inf when impassable.
func (k Kind) Cost() float64 {
	if k >= kindCount {
		return movement[Wall]
	}

	return movement[k]
}

// Passable reports whether units may enter the cell.
func (c Cell) Passable() bool { return c.Kind.Passable() }

// Cost returns the entry cost of the cell.
func (c Cell) Cost() float64 { return c.Kind.Cost() }

// Rules is the grid.Rules capability of painted maps.
// Its zero value is ready to use.
type Rules[P comparable] struct{}

var _ grid.Rules[int, Cell] = Rules[int]{}

// Passable delegates to Cell.Passable.
func (Rules[P]) Passable(_ P, c Cell) bool { return c.Passable() }

// Cost delegates to Cell.Cost.
func (Rules[P]) Cost(_ P, c Cell) float64 { return c.Cost() }
