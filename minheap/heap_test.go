package minheap_test

import (
	"testing"

	"github.com/arbolito/nagui/minheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_EmptyErrors(t *testing.T) {
	h := minheap.New[string, int64]()
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Size())

	_, _, err := h.Top()
	assert.ErrorIs(t, err, minheap.ErrEmptyHeap)

	_, _, err = h.DeleteTop()
	assert.ErrorIs(t, err, minheap.ErrEmptyHeap)
}

func TestHeap_OrdersByAscendingKey(t *testing.T) {
	h := minheap.New[string, int64]()
	h.Insert("c", 3)
	h.Insert("a", 1)
	h.Insert("b", 2)

	require.Equal(t, 3, h.Size())

	top, key, err := h.Top()
	require.NoError(t, err)
	assert.Equal(t, "a", top)
	assert.Equal(t, int64(1), key)

	var order []string
	for !h.IsEmpty() {
		obj, _, err := h.DeleteTop()
		require.NoError(t, err)
		order = append(order, obj)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestHeap_DuplicateKeysDoNotPanic(t *testing.T) {
	h := minheap.New[int, float64]()
	for i := 0; i < 5; i++ {
		h.Insert(i, 1.0)
	}
	count := 0
	for !h.IsEmpty() {
		_, key, err := h.DeleteTop()
		require.NoError(t, err)
		assert.Equal(t, 1.0, key)
		count++
	}
	assert.Equal(t, 5, count)
}
