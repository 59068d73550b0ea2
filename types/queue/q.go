// Package queue provides a small generic container usable both as a stack and as a FIFO queue. The command tree uses
// it as a stack for depth-first walks and the parser drains positional tokens from it in order.
package queue

// Q is a generic stack/queue structure.
// Push/Pop operate on the back, Enqueue/Dequeue on the back and front respectively. All operations are O(1)
// amortized: Dequeue advances a head offset and the backing slice is compacted once half of it is consumed.
type Q[T any] struct {
	items []T
	head  int
}

// New creates a new Q, optionally seeded with items in order
func New[T any](items ...T) *Q[T] {
	q := &Q[T]{}
	q.items = append(q.items, items...)
	return q
}

// Push adds an item to the top of the stack
func (q *Q[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the top item from the stack
func (q *Q[T]) Pop() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}
	last := len(q.items) - 1
	item := q.items[last]
	var zero T
	q.items[last] = zero
	q.items = q.items[:last]
	return item, true
}

// Peek returns the top item from the stack without removing it
func (q *Q[T]) Peek() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.items[len(q.items)-1], true
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the first item from the queue
func (q *Q[T]) Dequeue() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item, true
}

// Front returns the first item from the queue without removing it
func (q *Q[T]) Front() (T, bool) {
	return q.At(0)
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return len(q.items) - q.head
}

// At returns the item at a specific index, counted from the front
func (q *Q[T]) At(index int) (T, bool) {
	if index < 0 || index >= q.Len() {
		var zero T
		return zero, false
	}
	return q.items[q.head+index], true
}

// Slice returns a copy of the remaining items from front to back
func (q *Q[T]) Slice() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])
	return out
}

// IterationCallback receives each item and its index; returning false stops the iteration
type IterationCallback[T any] func(item T, index int) (keepGoing bool)

// ForEach iterates over the items from front to back
func (q *Q[T]) ForEach(callback IterationCallback[T]) {
	for i := 0; i < q.Len(); i++ {
		if !callback(q.items[q.head+i], i) {
			return
		}
	}
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.items = q.items[:0]
	q.head = 0
}
