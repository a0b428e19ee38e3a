package hexgrid

import (
	"fmt"
	"strconv"
	"strings"
)

var directionNames = [directionCount]string{
	East:      "E",
	NorthEast: "NE",
	NorthWest: "NW",
	West:      "W",
	SouthWest: "SW",
	SouthEast: "SE",
}

var directionAliases = map[string]Direction{
	"e": East, "east": East,
	"ne": NorthEast, "northeast": NorthEast, "north-east": NorthEast,
	"nw": NorthWest, "northwest": NorthWest, "north-west": NorthWest,
	"w": West, "west": West,
	"sw": SouthWest, "southwest": SouthWest, "south-west": SouthWest,
	"se": SouthEast, "southeast": SouthEast, "south-east": SouthEast,
}

// String returns "(q, r)".
func (a Axial) String() string { return fmt.Sprintf("(%d, %d)", a.Q, a.R) }

// String returns the compass abbreviation of d, e.g. "NE".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return directionNames[d]
}

// String returns "(q, r)->DIR".
func (j Joint) String() string { return j.From.String() + "->" + j.Dir.String() }

// ParseDirection parses a compass name such as "ne", "NorthEast" or "north-east".
func ParseDirection(s string) (Direction, error) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: direction %q", ErrParse, s)
	}

	return d, nil
}

// ParseAxial parses "(q, r)" or "q,r".
func ParseAxial(s string) (Axial, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Axial{}, fmt.Errorf("%w: axial %q", ErrParse, s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Axial{}, fmt.Errorf("%w: axial %q: %v", ErrParse, s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Axial{}, fmt.Errorf("%w: axial %q: %v", ErrParse, s, err)
	}

	return Axial{Q: q, R: r}, nil
}
