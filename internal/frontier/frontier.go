// Package frontier implements the open set shared by the gridmap solvers: a
// binary min-heap ordered by priority, with an explicit coordinate tie-break.
//
// The heap uses the "lazy decrease-key" strategy: an improved entry is pushed
// again and the caller skips stale entries when they are popped (checked
// against its closed set).
package frontier

import "container/heap"

// Item is one frontier entry.
type Item[P any] struct {
	Point    P       // coordinate
	Priority float64 // ordering key (f for A*, accumulated cost for Dijkstra)
	Cost     float64 // accumulated cost from the start
}

// Queue is a min-heap of Items ordered by Priority, then by the coordinate order.
type Queue[P any] struct {
	h itemHeap[P]
}

// New returns an empty queue breaking priority ties with compare.
func New[P any](compare func(a, b P) int) *Queue[P] {
	return &Queue[P]{h: itemHeap[P]{compare: compare}}
}

// Len returns the number of entries, stale ones included.
func (q *Queue[P]) Len() int { return q.h.Len() }

// Push adds an entry. Complexity: O(log n).
func (q *Queue[P]) Push(it Item[P]) { heap.Push(&q.h, it) }

// Pop removes and returns the entry with the lowest priority; ties go to the
// smaller coordinate. The bool is false when the queue is empty.
func (q *Queue[P]) Pop() (Item[P], bool) {
	if q.h.Len() == 0 {
		return Item[P]{}, false
	}

	return heap.Pop(&q.h).(Item[P]), true
}

// itemHeap implements heap.Interface.
type itemHeap[P any] struct {
	items   []Item[P]
	compare func(a, b P) int
}

func (h itemHeap[P]) Len() int { return len(h.items) }

func (h itemHeap[P]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}

	return h.compare(a.Point, b.Point) < 0
}

func (h itemHeap[P]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap[P]) Push(x any) { h.items = append(h.items, x.(Item[P])) }

func (h *itemHeap[P]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]

	return it
}
