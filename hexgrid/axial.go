package hexgrid

// New returns the axial coordinate (q, r).
func New(q, r int) Axial { return Axial{Q: q, R: r} }

// S returns the derived third cube axis.
func (a Axial) S() int { return -a.Q - a.R }

// Add returns a+b.
func (a Axial) Add(b Axial) Axial { return Axial{Q: a.Q + b.Q, R: a.R + b.R} }

// Sub returns a-b.
func (a Axial) Sub(b Axial) Axial { return Axial{Q: a.Q - b.Q, R: a.R - b.R} }

// Scale returns a multiplied by k.
func (a Axial) Scale(k int) Axial { return Axial{Q: a.Q * k, R: a.R * k} }

// Step returns the hexagon adjacent to a in direction d.
func (a Axial) Step(d Direction) Axial { return a.Add(d.Offset()) }

// Neighbors returns the six adjacent hexagons in AllDirections order.
func (a Axial) Neighbors() [directionCount]Axial {
	var out [directionCount]Axial
	for i, off := range offsets {
		out[i] = a.Add(off)
	}

	return out
}

// Step returns the hexagon adjacent to a in direction d.
func Step(a Axial, d Direction) Axial { return a.Step(d) }

// Distance returns the number of steps between a and b.
// Complexity: O(1).
func Distance(a, b Axial) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())

	return (dq + dr + ds) / 2
}

// Compare orders axial coordinates by Q, then R.
func Compare(a, b Axial) int {
	switch {
	case a.Q < b.Q:
		return -1
	case a.Q > b.Q:
		return 1
	case a.R < b.R:
		return -1
	case a.R > b.R:
		return 1
	}

	return 0
}

// AllDirections returns the six directions in rotational order.
func AllDirections() [directionCount]Direction {
	return [directionCount]Direction{East, NorthEast, NorthWest, West, SouthWest, SouthEast}
}

// Valid reports whether d is one of the six defined directions.
func (d Direction) Valid() bool { return d < directionCount }

// Neg returns the opposite direction.
func (d Direction) Neg() Direction { return (d + directionCount/2) % directionCount }

// Offset returns the axial step vector of d.
func (d Direction) Offset() Axial { return offsets[d%directionCount] }

// Rotate returns d turned by n sixth-turns counter-clockwise (negative n turns clockwise).
func (d Direction) Rotate(n int) Direction {
	k := (int(d) + n) % directionCount
	if k < 0 {
		k += directionCount
	}

	return Direction(k)
}

// DirectionOf returns the direction whose step vector equals off.
func DirectionOf(off Axial) (Direction, bool) {
	for i, o := range offsets {
		if o == off {
			return Direction(i), true
		}
	}

	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
