package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue_FIFO(t *testing.T) {
	q := NewInMemoryQueue[string](4)
	q.Enqueue("a", "b")
	q.Enqueue("c")
	assert.Equal(t, 3, q.Size())

	head, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", head)

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_ReadAllAndClear(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	q.Enqueue(1, 2, 3)
	_, _ = q.Dequeue()

	assert.Equal(t, []int{2, 3}, q.ReadAll())
	assert.Equal(t, 0, q.Size())
	assert.Nil(t, q.ReadAll())

	q.Enqueue(4, 5)
	q.Clear()
	_, ok := q.Peek()
	assert.False(t, ok)
}

func TestInMemoryQueue_ReusesAfterDrain(t *testing.T) {
	q := NewInMemoryQueue[int](2)
	q.Enqueue(1)
	_, _ = q.Dequeue()
	q.Enqueue(2, 3)

	got, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, q.Size())
}
