// Package queue implements FIFO ring buffer used as exploration worklist.
package queue

const minSize = 3

// Queue is a growable ring buffer. size+1 is always a power of 2.
type Queue[T any] struct {
	items      []T
	size       int
	head, tail int
}

// New creates queue containing items in given order.
func New[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.size = computeSize(len(items))
	q.items = make([]T, q.size+1)
	q.tail = copy(q.items, items)
	return q
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == q.tail
}

// Append adds item to the end of the queue.
func (q *Queue[T]) Append(item T) *Queue[T] {
	q.items[q.tail] = item
	q.tail = (q.tail + 1) & q.size
	if q.tail == q.head {
		q.grow()
	}
	return q
}

// First removes and returns the first item. Returns false if the queue is empty.
func (q *Queue[T]) First() (T, bool) {
	var zero T
	if q.head == q.tail {
		return zero, false
	}

	result := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) & q.size
	return result, true
}

// computeSize returns the least 2^n - 1 >= max(length, minSize) such that
// length items fit without an immediate grow.
func computeSize(length int) (size int) {
	if length < minSize {
		return minSize
	}

	length |= length >> 1
	length |= length >> 2
	length |= length >> 4
	length |= length >> 8
	return length | length>>16
}

func (q *Queue[T]) grow() {
	items := make([]T, (q.size+1)<<1)
	n := copy(items, q.items[q.head:])
	copy(items[n:], q.items[:q.head])
	q.head = 0
	q.tail = q.size + 1
	q.size = len(items) - 1
	q.items = items
}
