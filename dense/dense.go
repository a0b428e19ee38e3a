package dense

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridmap/grid"
)

// Map is a rectangular grid map backed by a row-major slice.
type Map[P comparable, T any] struct {
	topo             grid.Planar[P]
	cells            []T
	width, height    int
	originX, originY int
	wrapX, wrapY     bool
}

// New builds a width×height map with every cell set to fill.
// Returns ErrEmptyExtent if width or height is not positive.
// Complexity: O(width×height).
func New[P comparable, T any](topo grid.Planar[P], width, height int, fill T, opts ...Option) (*Map[P, T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyExtent, width, height)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Map[P, T]{
		topo:    topo,
		cells:   cells,
		width:   width,
		height:  height,
		originX: cfg.OriginX,
		originY: cfg.OriginY,
		wrapX:   cfg.WrapX,
		wrapY:   cfg.WrapY,
	}, nil
}

// Topology returns the map's step rules.
func (m *Map[P, T]) Topology() grid.Topology[P] { return m.topo }

// Size returns the storage extent.
func (m *Map[P, T]) Size() (width, height int) { return m.width, m.height }

// Origin returns the logical coordinate axes stored at offset (0, 0).
func (m *Map[P, T]) Origin() (x, y int) { return m.originX, m.originY }

// ShiftOrigin moves the origin by (dx, dy). Every cell keeps its storage slot,
// so its logical coordinate moves by (dx, dy) as well.
func (m *Map[P, T]) ShiftOrigin(dx, dy int) {
	m.originX += dx
	m.originY += dy
}

// Wrap reports the wraparound flags.
func (m *Map[P, T]) Wrap() (x, y bool) { return m.wrapX, m.wrapY }

// SetWrap replaces the wraparound flags.
func (m *Map[P, T]) SetWrap(x, y bool) {
	m.wrapX, m.wrapY = x, y
}

// offsets normalizes p to storage offsets (i, j) and reports membership.
func (m *Map[P, T]) offsets(p P) (i, j int, ok bool) {
	x, y := m.topo.Axes(p)
	i, j = x-m.originX, y-m.originY
	if m.wrapX {
		i = mod(i, m.width)
	}
	if m.wrapY {
		j = mod(j, m.height)
	}
	ok = i >= 0 && i < m.width && j >= 0 && j < m.height

	return i, j, ok
}

// point rebuilds the canonical coordinate of storage offset (i, j).
func (m *Map[P, T]) point(i, j int) P {
	return m.topo.FromAxes(i+m.originX, j+m.originY)
}

// Distance returns the step distance from a to b on this map.
// On a wrapped axis the shorter way around the seam counts; without
// wraparound it is the topology distance.
func (m *Map[P, T]) Distance(a, b P) int {
	if !m.wrapX && !m.wrapY {
		return m.topo.Distance(a, b)
	}
	ax, ay := m.topo.Axes(a)
	bx, by := m.topo.Axes(b)
	xs, ys := []int{0}, []int{0}
	if m.wrapX {
		ax, bx = mod(ax-m.originX, m.width), mod(bx-m.originX, m.width)
		xs = []int{-m.width, 0, m.width}
	}
	if m.wrapY {
		ay, by = mod(ay-m.originY, m.height), mod(by-m.originY, m.height)
		ys = []int{-m.height, 0, m.height}
	}
	from := m.topo.FromAxes(ax, ay)
	best := -1
	for _, dx := range xs {
		for _, dy := range ys {
			d := m.topo.Distance(from, m.topo.FromAxes(bx+dx, by+dy))
			if best < 0 || d < best {
				best = d
			}
		}
	}

	return best
}

// Index returns the row-major storage index of p after normalization.
func (m *Map[P, T]) Index(p P) (int, bool) {
	i, j, ok := m.offsets(p)
	if !ok {
		return -1, false
	}

	return j*m.width + i, true
}

// Contains reports whether p falls inside the extent after normalization.
func (m *Map[P, T]) Contains(p P) bool {
	_, _, ok := m.offsets(p)

	return ok
}

// Canonical returns the in-extent coordinate that p normalizes to.
func (m *Map[P, T]) Canonical(p P) (P, bool) {
	i, j, ok := m.offsets(p)
	if !ok {
		var zero P
		return zero, false
	}

	return m.point(i, j), true
}

// Get returns the value at p, or the zero value and false when p is outside the extent.
func (m *Map[P, T]) Get(p P) (T, bool) {
	idx, ok := m.Index(p)
	if !ok {
		var zero T
		return zero, false
	}

	return m.cells[idx], true
}

// Ref returns a pointer to the cell at p for in-place updates.
// The pointer is invalidated by Extend.
func (m *Map[P, T]) Ref(p P) (*T, bool) {
	idx, ok := m.Index(p)
	if !ok {
		return nil, false
	}

	return &m.cells[idx], true
}

// At returns the value at p without a membership result.
//
// At is the unchecked accessor: the caller guarantees p is a member.
// It panics with ErrOutOfBounds otherwise. Use Get when membership is unknown.
func (m *Map[P, T]) At(p P) T {
	idx, ok := m.Index(p)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrOutOfBounds, p))
	}

	return m.cells[idx]
}

// Set stores v at p and returns the previous value and true.
// A coordinate outside the extent stores nothing and returns the zero value and false;
// dense maps never grow implicitly, use Extend.
func (m *Map[P, T]) Set(p P, v T) (T, bool) {
	idx, ok := m.Index(p)
	if !ok {
		var zero T
		return zero, false
	}
	prev := m.cells[idx]
	m.cells[idx] = v

	return prev, true
}

// Remove resets the cell at p to the zero value and returns the previous value.
// Membership of a dense map is fixed by its extent, so p stays a member.
func (m *Map[P, T]) Remove(p P) (T, bool) {
	var zero T

	return m.Set(p, zero)
}

// Fill overwrites every cell with v.
func (m *Map[P, T]) Fill(v T) {
	for i := range m.cells {
		m.cells[i] = v
	}
}

// Count returns width×height.
func (m *Map[P, T]) Count() int { return len(m.cells) }

// All yields every cell in row-major storage order.
func (m *Map[P, T]) All() iter.Seq2[P, T] {
	return func(yield func(P, T) bool) {
		for idx, v := range m.cells {
			if !yield(m.point(idx%m.width, idx/m.width), v) {
				return
			}
		}
	}
}

// Row yields the cells of the row holding logical y, in increasing x.
// A y outside the extent yields nothing.
func (m *Map[P, T]) Row(y int) iter.Seq2[P, T] {
	return func(yield func(P, T) bool) {
		j := y - m.originY
		if m.wrapY {
			j = mod(j, m.height)
		}
		if j < 0 || j >= m.height {
			return
		}
		for i := 0; i < m.width; i++ {
			if !yield(m.point(i, j), m.cells[j*m.width+i]) {
				return
			}
		}
	}
}

// Column yields the cells of the column holding logical x, in increasing y.
// An x outside the extent yields nothing.
func (m *Map[P, T]) Column(x int) iter.Seq2[P, T] {
	return func(yield func(P, T) bool) {
		i := x - m.originX
		if m.wrapX {
			i = mod(i, m.width)
		}
		if i < 0 || i >= m.width {
			return
		}
		for j := 0; j < m.height; j++ {
			if !yield(m.point(i, j), m.cells[j*m.width+i]) {
				return
			}
		}
	}
}

// Rows yields every row as (logical y, Row(y)), bottom to top, or top to
// bottom when reverse is set.
func (m *Map[P, T]) Rows(reverse bool) iter.Seq2[int, iter.Seq2[P, T]] {
	return func(yield func(int, iter.Seq2[P, T]) bool) {
		for k := 0; k < m.height; k++ {
			j := k
			if reverse {
				j = m.height - 1 - k
			}
			y := m.originY + j
			if !yield(y, m.Row(y)) {
				return
			}
		}
	}
}

// Columns yields every column as (logical x, Column(x)), left to right, or
// right to left when reverse is set.
func (m *Map[P, T]) Columns(reverse bool) iter.Seq2[int, iter.Seq2[P, T]] {
	return func(yield func(int, iter.Seq2[P, T]) bool) {
		for k := 0; k < m.width; k++ {
			i := k
			if reverse {
				i = m.width - 1 - k
			}
			x := m.originX + i
			if !yield(x, m.Column(x)) {
				return
			}
		}
	}
}

// Neighbors returns the canonical member coordinates one step from p.
// Steps that wrap onto the same cell, or back onto p, are reported once or not at all.
func (m *Map[P, T]) Neighbors(p P) []P {
	self, ok := m.Index(p)
	if !ok {
		return nil
	}
	steps := m.topo.Steps(p)
	out := make([]P, 0, len(steps))
	seen := mapset.New[int]()
	seen.Put(self)
	for _, q := range steps {
		i, j, ok := m.offsets(q)
		if !ok {
			continue
		}
		idx := j*m.width + i
		if seen.Has(idx) {
			continue
		}
		seen.Put(idx)
		out = append(out, m.point(i, j))
	}

	return out
}

// Ring yields the canonical member coordinates exactly radius steps from center,
// each storage cell at most once.
func (m *Map[P, T]) Ring(center P, radius int) iter.Seq[P] {
	return func(yield func(P) bool) {
		seen := mapset.New[int]()
		m.emit(m.topo.Ring(center, radius), seen, yield)
	}
}

// Disk yields the canonical member coordinates at most radius steps from center,
// nearest rings first, each storage cell at most once.
func (m *Map[P, T]) Disk(center P, radius int) iter.Seq[P] {
	return func(yield func(P) bool) {
		seen := mapset.New[int]()
		for r := 0; r <= radius; r++ {
			if !m.emit(m.topo.Ring(center, r), seen, yield) {
				return
			}
		}
	}
}

// emit forwards the members of seq not yet in seen. It returns false once yield stops.
func (m *Map[P, T]) emit(seq iter.Seq[P], seen mapset.Set[int], yield func(P) bool) bool {
	for p := range seq {
		i, j, ok := m.offsets(p)
		if !ok {
			continue
		}
		idx := j*m.width + i
		if seen.Has(idx) {
			continue
		}
		seen.Put(idx)
		if !yield(m.point(i, j)) {
			return false
		}
	}

	return true
}

// Extend grows the extent by amount cells on the given side, filling new cells with fill.
//
// Growing toward PosX/PosY appends storage; growing toward NegX/NegY prepends it
// and moves the origin by -amount, so every coordinate that addressed a cell
// before the call addresses the same value after it.
// A wrapped axis addresses every integer, and growing it would change what
// they resolve to, so a positive amount along it fails with ErrWrappedAxis.
// Returns ErrBadAmount for a negative amount and ErrBadSide for an unknown side.
// Complexity: O(width×height).
func (m *Map[P, T]) Extend(side Side, amount int, fill T) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrBadAmount, amount)
	}
	w, h := m.width, m.height
	var dx, dy int
	wrapped := false
	switch side {
	case PosX:
		w += amount
		wrapped = m.wrapX
	case NegX:
		w += amount
		dx = amount
		wrapped = m.wrapX
	case PosY:
		h += amount
		wrapped = m.wrapY
	case NegY:
		h += amount
		dy = amount
		wrapped = m.wrapY
	default:
		return fmt.Errorf("%w: %d", ErrBadSide, side)
	}
	if amount == 0 {
		return nil
	}
	if wrapped {
		return fmt.Errorf("%w: side %d", ErrWrappedAxis, side)
	}
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = fill
	}
	for j := 0; j < m.height; j++ {
		copy(cells[(j+dy)*w+dx:(j+dy)*w+dx+m.width], m.cells[j*m.width:(j+1)*m.width])
	}
	m.cells = cells
	m.width, m.height = w, h
	m.originX -= dx
	m.originY -= dy

	return nil
}

// Clone returns an independent copy of the map. Values are copied shallowly.
func (m *Map[P, T]) Clone() *Map[P, T] {
	c := *m
	c.cells = make([]T, len(m.cells))
	copy(c.cells, m.cells)

	return &c
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}
