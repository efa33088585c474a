// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package stack provides a LIFO stack stored in a dynarray.Array.
package stack

import (
	"cloudeng.io/errors"
	"github.com/joudbitar/dsa-teacher/algo/container/dynarray"
)

// Stack is a last-in, first-out container. It is not safe for
// concurrent use.
type Stack[T any] struct {
	items *dynarray.Array[T]
}

// New returns a new, empty, stack.
func New[T any](opts ...dynarray.Option) *Stack[T] {
	return &Stack[T]{items: dynarray.New[T](opts...)}
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items.Append(v)
}

// Pop removes and returns the top of the stack. It returns false
// if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	v, err := s.items.RemoveLast()
	if err != nil {
		panic(errors.WithCaller(err))
	}
	return v, true
}

// Peek returns the top of the stack without removing it. It returns
// false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	v, err := s.items.Get(s.items.Len() - 1)
	if err != nil {
		panic(errors.WithCaller(err))
	}
	return v, true
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int {
	return s.items.Len()
}

// IsEmpty returns true if the stack contains no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}
