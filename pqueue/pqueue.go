package pqueue

import "container/heap"

// NoVertex is the sentinel Item.From value for seed entries that no tree
// vertex generated (e.g. the start vertex of a growth algorithm).
const NoVertex = -1

// Item is one queue entry: a candidate key for a vertex.
type Item struct {
	// Key is the priority; PopMin returns the smallest Key first.
	Key float64

	// Vertex is the vertex this candidate key applies to.
	Vertex int

	// From is the vertex that generated this entry, or NoVertex for seeds.
	From int
}

// Queue is a min-oriented priority queue of Items backed by a binary heap.
// The zero value is not usable; construct with New.
type Queue struct {
	h itemHeap
}

// New creates an empty Queue with capacity for n items pre-allocated.
// Complexity: O(1) beyond the allocation.
func New(n int) *Queue {
	q := &Queue{h: make(itemHeap, 0, n)}
	heap.Init(&q.h)

	return q
}

// Len returns the number of items currently enqueued, stale ones included.
// Complexity: O(1).
func (q *Queue) Len() int { return len(q.h) }

// Push inserts an item. Duplicate entries for the same vertex are allowed;
// see the package comment for the lazy decrease-key contract.
// Complexity: O(log n).
func (q *Queue) Push(it Item) {
	heap.Push(&q.h, it)
}

// PopMin removes and returns the item with the smallest key.
// The boolean is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue) PopMin() (Item, bool) {
	if len(q.h) == 0 {
		return Item{}, false
	}

	return heap.Pop(&q.h).(Item), true
}

// itemHeap implements heap.Interface over a slice of Items, ordered by
// ascending Key. Ties are left to heap order; callers relying on
// determinism resolve them via their own stale-entry checks.
type itemHeap []Item

func (h itemHeap) Len() int           { return len(h) }
func (h itemHeap) Less(i, j int) bool { return h[i].Key < h[j].Key }
func (h itemHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push appends x; called by container/heap.
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

// Pop removes and returns the last element; called by container/heap.
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
