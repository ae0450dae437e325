// queue package

package queue

// InMemoryQueue implements an in-memory queue backed by a slice.
// It is not safe for concurrent use; every queue in the game loop has a single owner.
type InMemoryQueue[T any] struct {
	items []T
	head  int
}

var _ Queue[int] = &InMemoryQueue[int]{}

// NewInMemoryQueue creates a new queue with room for capacity items.
func NewInMemoryQueue[T any](capacity int) *InMemoryQueue[T] {
	return &InMemoryQueue[T]{
		items: make([]T, 0, capacity),
	}
}

// Enqueue adds items to the end of the queue, in order.
func (q *InMemoryQueue[T]) Enqueue(items ...T) {
	q.items = append(q.items, items...)
}

// Dequeue removes and returns the item from the front of the queue.
// ok is false if the queue is empty.
func (q *InMemoryQueue[T]) Dequeue() (item T, ok bool) {
	if q.Size() == 0 {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return item, true
}

// Peek returns the item at the front of the queue without removing it.
func (q *InMemoryQueue[T]) Peek() (item T, ok bool) {
	if q.Size() == 0 {
		return item, false
	}
	return q.items[q.head], true
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	return len(q.items) - q.head
}

// ReadAll removes and returns all pending items in the queue.
func (q *InMemoryQueue[T]) ReadAll() []T {
	if q.Size() == 0 {
		return nil
	}
	items := make([]T, q.Size())
	copy(items, q.items[q.head:])
	q.Clear()
	return items
}

// Clear removes all items from the queue.
func (q *InMemoryQueue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}
