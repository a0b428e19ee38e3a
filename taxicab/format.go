package taxicab

import (
	"fmt"
	"strconv"
	"strings"
)

var directionNames = [directionCount]string{
	East:  "East",
	West:  "West",
	North: "North",
	South: "South",
}

var directionArrows = [directionCount]string{
	East:  "→",
	West:  "←",
	North: "↑",
	South: "↓",
}

var directionAliases = map[string]Direction{
	"east": East, "right": East, "e": East, "→": East,
	"west": West, "left": West, "w": West, "←": West,
	"north": North, "up": North, "n": North, "↑": North,
	"south": South, "down": South, "s": South, "↓": South,
}

// String returns "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// String returns the direction name, e.g. "North".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return directionNames[d]
}

// Arrow returns the arrow glyph of d.
func (d Direction) Arrow() string {
	if !d.Valid() {
		return "?"
	}

	return directionArrows[d]
}

// String returns "(x, y)→".
func (j Joint) String() string { return j.From.String() + j.Dir.Arrow() }

// ParseDirection accepts names ("east"), screen words ("right", "up") and arrows ("→").
func ParseDirection(s string) (Direction, error) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: direction %q", ErrParse, s)
	}

	return d, nil
}

// ParsePoint parses "(x, y)" or "x,y".
func ParsePoint(s string) (Point, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: point %q", ErrParse, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q: %v", ErrParse, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q: %v", ErrParse, s, err)
	}

	return Point{X: x, Y: y}, nil
}
