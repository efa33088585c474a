// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package minheap provides a binary min-heap stored in a dynarray.Array.
//
// The heap is a complete binary tree laid out in the array such that the
// children of the element at index i are at 2i+1 and 2i+2 and its parent
// is at (i-1)/2. Every parent is less than or equal to its children and
// hence the minimum is always at index 0. Insert and ExtractMin run in
// O(log n), PeekMin, Size and IsEmpty in O(1).
//
// A Heap is not safe for concurrent use; callers that share one must
// guard every operation with a single mutex.
package minheap

import (
	"cmp"

	"cloudeng.io/errors"
	"github.com/joudbitar/dsa-teacher/algo/container/dynarray"
)

// Heap is a binary min-heap. Ordering is determined by cmp.Less and
// is therefore total, even for floating point NaNs which are treated
// as less than any other value.
type Heap[K cmp.Ordered] struct {
	items *dynarray.Array[K]
}

type options struct {
	capacity int
}

// Option represents the options that can be passed to New.
type Option func(*options)

// WithCapacity sets the initial capacity of the array used to
// store the heap.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New returns a new, empty, heap.
func New[K cmp.Ordered](opts ...Option) *Heap[K] {
	o := options{capacity: dynarray.DefaultCapacity}
	for _, fn := range opts {
		fn(&o)
	}
	return &Heap[K]{
		items: dynarray.New[K](dynarray.WithCapacity(o.capacity)),
	}
}

// Heapify returns a heap containing a copy of values. The heap is
// built bottom up in O(n).
func Heapify[K cmp.Ordered](values []K) *Heap[K] {
	h := New[K](WithCapacity(len(values)))
	for _, v := range values {
		h.items.Append(v)
	}
	for i := h.Size()/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

// Sort sorts values into non-decreasing order by inserting them all
// into a heap and then extracting them all.
func Sort[K cmp.Ordered](values []K) {
	h := New[K](WithCapacity(len(values)))
	for _, v := range values {
		h.Insert(v)
	}
	for i := range values {
		values[i], _ = h.ExtractMin()
	}
}

// Size returns the number of elements in the heap.
func (h *Heap[K]) Size() int {
	return h.items.Len()
}

// IsEmpty returns true if the heap contains no elements.
func (h *Heap[K]) IsEmpty() bool {
	return h.items.IsEmpty()
}

// Insert adds v to the heap.
func (h *Heap[K]) Insert(v K) {
	h.items.Append(v)
	h.up(h.items.Len() - 1)
}

// PeekMin returns the minimum element without removing it. It returns
// false if the heap is empty.
func (h *Heap[K]) PeekMin() (K, bool) {
	if h.IsEmpty() {
		var zero K
		return zero, false
	}
	return h.get(0), true
}

// ExtractMin removes and returns the minimum element. It returns false
// if the heap is empty.
func (h *Heap[K]) ExtractMin() (K, bool) {
	if h.IsEmpty() {
		var zero K
		return zero, false
	}
	minimum := h.get(0)
	end, err := h.items.RemoveLast()
	must(err)
	if !h.IsEmpty() {
		h.set(0, end)
		h.down(0)
	}
	return minimum, true
}

// Values returns a copy of the heap's elements in heap, not sorted,
// order.
func (h *Heap[K]) Values() []K {
	return h.items.Values()
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (i * 2) + 1 }
func right(i int) int  { return left(i) + 1 }

func (h *Heap[K]) up(j int) {
	for j > 0 {
		i := parent(j)
		if !cmp.Less(h.get(j), h.get(i)) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[K]) down(i int) {
	n := h.items.Len()
	for {
		j := left(i)
		if j >= n || j < 0 { // j < 0 after int overflow
			break
		}
		// The left child wins ties.
		if j2 := right(i); j2 < n && cmp.Less(h.get(j2), h.get(j)) {
			j = j2
		}
		if !cmp.Less(h.get(j), h.get(i)) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *Heap[K]) get(i int) K {
	v, err := h.items.Get(i)
	must(err)
	return v
}

func (h *Heap[K]) set(i int, v K) {
	must(h.items.Set(i, v))
}

func (h *Heap[K]) swap(i, j int) {
	must(h.items.Swap(i, j))
}

// must panics on errors returned by the backing array. Such errors
// can only be caused by a bug in the sift logic.
func must(err error) {
	if err != nil {
		panic(errors.Annotate(errors.Caller(2, 2), err))
	}
}
