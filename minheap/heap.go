package minheap

import "container/heap"

// rawHeap implements heap.Interface over a slice of entries, ordered by
// ascending key. Mirrors dijkstra.nodePQ / prim_kruskal.edgePQ: Len, Less,
// Swap, Push, Pop on a typed slice.
type rawHeap[T any, K Key] []entry[T, K]

func (h rawHeap[T, K]) Len() int            { return len(h) }
func (h rawHeap[T, K]) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h rawHeap[T, K]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rawHeap[T, K]) Push(x interface{}) { *h = append(*h, x.(entry[T, K])) }
func (h *rawHeap[T, K]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Heap is a binary min-heap of (object, key) pairs. The zero value is not
// usable; construct with New. Insert doubles capacity on fill via the
// backing slice's normal append growth; DeleteTop and Top fail with
// ErrEmptyHeap when the heap holds nothing.
//
// Heap gives no tie-break guarantee between equal keys, matching spec.md
// §4.1: Kruskal relies only on weight order and Dijkstra keeps its own
// state outside the heap.
type Heap[T any, K Key] struct {
	h rawHeap[T, K]
}

// New returns an empty Heap ready for use.
func New[T any, K Key]() *Heap[T, K] {
	return &Heap[T, K]{h: make(rawHeap[T, K], 0)}
}

// Insert adds object keyed by key.
// Complexity: O(log n).
func (q *Heap[T, K]) Insert(object T, key K) {
	heap.Push(&q.h, entry[T, K]{object: object, key: key})
}

// Top returns, without removing, the object with least key.
// Complexity: O(1).
func (q *Heap[T, K]) Top() (T, K, error) {
	var zero T
	if len(q.h) == 0 {
		return zero, *new(K), ErrEmptyHeap
	}

	return q.h[0].object, q.h[0].key, nil
}

// DeleteTop removes and returns the object with least key.
// Complexity: O(log n).
func (q *Heap[T, K]) DeleteTop() (T, K, error) {
	var zero T
	if len(q.h) == 0 {
		return zero, *new(K), ErrEmptyHeap
	}
	e := heap.Pop(&q.h).(entry[T, K])

	return e.object, e.key, nil
}

// IsEmpty reports whether the heap holds no entries.
func (q *Heap[T, K]) IsEmpty() bool { return len(q.h) == 0 }

// Size returns the number of entries currently in the heap.
func (q *Heap[T, K]) Size() int { return len(q.h) }
