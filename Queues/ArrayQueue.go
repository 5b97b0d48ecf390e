package Queues

// ArrayQueue is a growable circular-buffer FIFO. Elements are stored in a
// ring between head and tail; pushing into a full ring grows it by half.
// Popped slots are zeroed so the buffer never pins released values.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an ArrayQueue holding up to initCap elements
// before the first growth.
func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	if initCap < 1 {
		initCap = 1
	}
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (this *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.head < this.tail {
		copy(nc, this.content[this.head:this.tail])
	} else if this.sz > 0 {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.tail])
	}
	this.head, this.tail = 0, this.sz
	this.content = nc
}

// Shrink the buffer down to the current element count.
func (this *ArrayQueue[T]) Shrink() {
	this.resize(this.sz | 1)
}

// Clear the queue, keeping the buffer.
func (this *ArrayQueue[T]) Clear() {
	clear(this.content)
	this.head, this.tail, this.sz = 0, 0, 0
}

func (this ArrayQueue[T]) Empty() bool {
	return this.sz == 0
}

func (this ArrayQueue[T]) Size() uint {
	return this.sz
}

// Push item to the back of the queue.
// Time: amortized O(1)
func (this *ArrayQueue[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

// Pop the front of the queue; EmptyQueueError when there is none.
// Time: O(1)
func (this *ArrayQueue[T]) Pop() (T, error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return t, nil
}

// Peek at the front of the queue without removing it; the zero value when
// the queue is empty.
func (this ArrayQueue[T]) Peek() (item T) {
	if this.Empty() {
		return
	}
	return this.content[this.head]
}
