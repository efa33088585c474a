// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dynarray provides a growable, index addressable array with
// amortized O(1) append. It is the backing store for the heap, stack and
// queue containers in this module.
//
// Capacity doubles whenever an append would exceed it, so the total cost
// of copying existing elements over n appends is O(n). Removing elements
// never releases capacity.
package dynarray

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

var (
	// ErrOutOfRange is returned when an index is not in [0, Len()).
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmpty is returned when removing from an empty array.
	ErrEmpty = errors.New("array is empty")
)

// DefaultCapacity is the capacity of an array created without
// WithCapacity.
const DefaultCapacity = 1

type options struct {
	capacity int
}

// Option represents the options that can be passed to New.
type Option func(*options)

// WithCapacity sets the initial capacity of the array. Values less than
// one are treated as one.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// Array is a contiguous, resizable sequence. The zero value is not
// usable, use New.
type Array[T any] struct {
	storage []T // len(storage) is the capacity.
	used    int // elements [0, used) are live.
}

// New returns a new, empty, Array.
func New[T any](opts ...Option) *Array[T] {
	o := options{capacity: DefaultCapacity}
	for _, fn := range opts {
		fn(&o)
	}
	if o.capacity < 1 {
		o.capacity = 1
	}
	return &Array[T]{
		storage: make([]T, o.capacity),
	}
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return a.used
}

// Cap returns the current capacity of the array.
func (a *Array[T]) Cap() int {
	return len(a.storage)
}

// IsEmpty returns true if the array contains no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.used == 0
}

func (a *Array[T]) grow() {
	size := 2 * len(a.storage)
	if size == 0 {
		size = 1
	}
	n := make([]T, size)
	copy(n, a.storage[:a.used])
	a.storage = n
}

// Append appends v to the end of the array, doubling its capacity
// if it is full.
func (a *Array[T]) Append(v T) {
	if a.used == len(a.storage) {
		a.grow()
	}
	a.storage[a.used] = v
	a.used++
}

func (a *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= a.used {
		return fmt.Errorf("%w: %v not in [0, %v)", ErrOutOfRange, i, a.used)
	}
	return nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.storage[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.storage[i] = v
	return nil
}

// Swap exchanges the elements at indices i and j.
func (a *Array[T]) Swap(i, j int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if err := a.checkIndex(j); err != nil {
		return err
	}
	a.storage[i], a.storage[j] = a.storage[j], a.storage[i]
	return nil
}

// RemoveLast removes and returns the last element. The capacity of
// the array is unchanged.
func (a *Array[T]) RemoveLast() (T, error) {
	var zero T
	if a.used == 0 {
		return zero, ErrEmpty
	}
	a.used--
	v := a.storage[a.used]
	a.storage[a.used] = zero
	return v, nil
}

// RemoveFront removes the first n elements, moving the remaining
// elements to the start of the array. The capacity of the array is
// unchanged.
func (a *Array[T]) RemoveFront(n int) error {
	if n < 0 || n > a.used {
		return fmt.Errorf("%w: cannot remove %v of %v elements", ErrOutOfRange, n, a.used)
	}
	if n == 0 {
		return nil
	}
	c := copy(a.storage, a.storage[n:a.used])
	clear(a.storage[c:a.used])
	a.used = c
	return nil
}

// All returns an iterator over the indices and values of the array
// in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.used; i++ {
			if !yield(i, a.storage[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in the array.
func (a *Array[T]) Values() []T {
	o := make([]T, 0, a.used)
	for _, v := range a.All() {
		o = append(o, v)
	}
	return o
}
