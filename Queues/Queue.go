package Queues

// Queue is a FIFO container. Implementations in this package are not
// synchronized; a queue belongs to a single goroutine.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is empty: cannot Pop."
}
