// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package queue provides a FIFO queue stored in a dynarray.Array.
package queue

import (
	"cloudeng.io/errors"
	"github.com/joudbitar/dsa-teacher/algo/container/dynarray"
)

// Queue is a first-in, first-out container. Dequeued elements are not
// removed from the backing array immediately; instead the head index
// is advanced and, once more than half of the array has been consumed,
// the remaining elements are moved to the front. This keeps Dequeue
// amortized O(1). Queue is not safe for concurrent use.
type Queue[T any] struct {
	items *dynarray.Array[T]
	head  int // index of the first live element.
}

// New returns a new, empty, queue.
func New[T any](opts ...dynarray.Option) *Queue[T] {
	return &Queue[T]{items: dynarray.New[T](opts...)}
}

// Enqueue adds v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.items.Append(v)
}

// Dequeue removes and returns the element at the front of the queue.
// It returns false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	v := q.front()
	must(q.items.Set(q.head, zero))
	q.head++
	if q.head > q.items.Len()/2 {
		must(q.items.RemoveFront(q.head))
		q.head = 0
	}
	return v, true
}

// Front returns the element at the front of the queue without removing
// it. It returns false if the queue is empty.
func (q *Queue[T]) Front() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.front(), true
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return q.items.Len() - q.head
}

// IsEmpty returns true if the queue contains no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.Size() == 0
}

func (q *Queue[T]) front() T {
	v, err := q.items.Get(q.head)
	must(err)
	return v
}

func must(err error) {
	if err != nil {
		panic(errors.Annotate(errors.Caller(2, 2), err))
	}
}
