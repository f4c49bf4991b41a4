package minheap

import "errors"

// ErrEmptyHeap is returned by Top and DeleteTop when the heap holds no
// entries.
var ErrEmptyHeap = errors.New("minheap: heap is empty")

// Key is any ordered scalar a Heap can be keyed by.
type Key interface {
	~int | ~int64 | ~float64
}

// entry pairs an arbitrary payload with its ordering key.
type entry[T any, K Key] struct {
	object T
	key    K
}
