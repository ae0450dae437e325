package queue

// Queue represents a basic FIFO queue.
type Queue[T any] interface {
	Enqueue(items ...T)
	Dequeue() (T, bool)
	Peek() (T, bool)
	Size() int
	ReadAll() []T
	Clear()
}
