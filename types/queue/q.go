package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a generic stack/queue structure that supports both stack and queue operations.
// It is backed by github.com/ef-ds/deque, so Push/Pop and Enqueue/Dequeue are all O(1).
type Q[T any] struct {
	items *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{items: deque.New()}
}

// Stack Operations

// Push adds an item to the top of the stack (stack behavior)
func (q *Q[T]) Push(item T) {
	q.items.PushBack(item)
}

// Pop removes and returns the top item from the stack (stack behavior)
func (q *Q[T]) Pop() (T, bool) {
	v, ok := q.items.PopBack()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Peek returns the top item from the stack without removing it
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.items.Back()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Queue Operations

// Enqueue adds an item to the end of the queue (queue behavior)
func (q *Q[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes and returns the first item from the queue (queue behavior)
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.items.PopFront()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Front returns the first item of the queue without removing it
func (q *Q[T]) Front() (T, bool) {
	v, ok := q.items.Front()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.items.Len()
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.items.Init()
}
