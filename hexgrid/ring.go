package hexgrid

import "iter"

// Ring yields every hexagon exactly radius steps from center.
//
// Radius 0 yields center alone; negative radii yield nothing. For radius > 0 the
// walk starts at center + SW·radius and follows E, NE, NW, W, SW, SE, so it
// yields exactly 6·radius distinct coordinates. The sequence is lazy and
// restartable.
func Ring(center Axial, radius int) iter.Seq[Axial] {
	return func(yield func(Axial) bool) {
		if radius < 0 {
			return
		}
		if radius == 0 {
			yield(center)
			return
		}
		cur := center.Add(SouthWest.Offset().Scale(radius))
		for _, d := range AllDirections() {
			for k := 0; k < radius; k++ {
				if !yield(cur) {
					return
				}
				cur = cur.Step(d)
			}
		}
	}
}

// Disk yields every hexagon at most radius steps from center, ring by ring.
// It yields 1 + 3·radius·(radius+1) coordinates.
func Disk(center Axial, radius int) iter.Seq[Axial] {
	return func(yield func(Axial) bool) {
		for r := 0; r <= radius; r++ {
			for a := range Ring(center, r) {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// DiskSize returns the number of hexagons in a disk of the given radius.
func DiskSize(radius int) int {
	if radius < 0 {
		return 0
	}

	return 1 + 3*radius*(radius+1)
}
