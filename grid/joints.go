package grid

// Link converts each consecutive pair of path with link. A path of n points
// yields n-1 results; fewer than two points yield none. The first error stops
// the conversion.
func Link[P comparable, J any](path []P, link func(from, to P) (J, error)) ([]J, error) {
	if len(path) < 2 {
		return nil, nil
	}
	out := make([]J, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		j, err := link(path[i-1], path[i])
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}

	return out, nil
}

// StepOnto returns the first direction in dirs whose step from "from"
// canonicalizes on m to the same cell as to. It accepts steps across a
// wraparound seam, which raw coordinate adjacency does not.
func StepOnto[P comparable, T any, D any](m Reader[P, T], dirs []D, step func(P, D) P, from, to P) (D, bool) {
	var zero D
	target, ok := m.Canonical(to)
	if !ok {
		return zero, false
	}
	for _, d := range dirs {
		if c, ok := m.Canonical(step(from, d)); ok && c == target {
			return d, true
		}
	}

	return zero, false
}

// Adjacent returns the directions in dirs that lead from p to a member of m
// other than p itself. Two directions may reach the same cell across a seam;
// both are reported, as they are distinct edges. An absent p has none.
func Adjacent[P comparable, T any, D any](m Reader[P, T], dirs []D, step func(P, D) P, p P) []D {
	self, ok := m.Canonical(p)
	if !ok {
		return nil
	}
	var out []D
	for _, d := range dirs {
		if c, ok := m.Canonical(step(p, d)); ok && c != self {
			out = append(out, d)
		}
	}

	return out
}
