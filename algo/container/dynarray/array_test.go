// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dynarray

import (
	"reflect"
	"runtime"
	"testing"

	"cloudeng.io/errors"
)

func arange(s, n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = s + i
	}
	return r
}

func invariants[T any](t *testing.T, a *Array[T], used, size int) {
	_, _, line, _ := runtime.Caller(1)
	if got, want := a.Len(), used; got != want {
		t.Errorf("line %v: len: got %v, want %v", line, got, want)
	}
	if got, want := a.Cap(), size; got != want {
		t.Errorf("line %v: cap: got %v, want %v", line, got, want)
	}
	if got, want := a.IsEmpty(), used == 0; got != want {
		t.Errorf("line %v: empty: got %v, want %v", line, got, want)
	}
}

func contents[T any](t *testing.T, a *Array[T], want []T) {
	_, _, line, _ := runtime.Caller(1)
	if got := a.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
}

func TestGrowth(t *testing.T) {
	a := New[int]()
	invariants(t, a, 0, 1)

	caps := []int{}
	for i := range 33 {
		a.Append(i)
		if n := len(caps); n == 0 || caps[n-1] != a.Cap() {
			caps = append(caps, a.Cap())
		}
	}
	if got, want := caps, []int{1, 2, 4, 8, 16, 32, 64}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	invariants(t, a, 33, 64)
	contents(t, a, arange(0, 33))

	a = New[int](WithCapacity(0))
	invariants(t, a, 0, 1)
	a = New[int](WithCapacity(-3))
	invariants(t, a, 0, 1)
	a = New[int](WithCapacity(10))
	invariants(t, a, 0, 10)
	for i := range 10 {
		a.Append(i)
	}
	invariants(t, a, 10, 10)
	a.Append(10)
	invariants(t, a, 11, 20)
}

func TestAmortizedCopies(t *testing.T) {
	// Every growth copies Len() elements; the total must stay linear.
	for _, n := range []int{1, 2, 3, 100, 1000, 4097} {
		a := New[int]()
		copies := 0
		for i := range n {
			if a.Len() == a.Cap() {
				copies += a.Len()
			}
			a.Append(i)
		}
		if copies >= 2*n {
			t.Errorf("%v appends: %v copies, want < %v", n, copies, 2*n)
		}
	}
}

func TestGetSet(t *testing.T) {
	a := New[string]()
	if _, err := a.Get(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := a.Set(0, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	a.Append("a")
	a.Append("b")
	a.Append("c")
	for i, want := range []string{"a", "b", "c"} {
		got, err := a.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if err := a.Set(1, "B"); err != nil {
		t.Fatal(err)
	}
	contents(t, a, []string{"a", "B", "c"})

	for _, i := range []int{-1, 3, 100} {
		if _, err := a.Get(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
		if err := a.Set(i, "z"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
	}
	contents(t, a, []string{"a", "B", "c"})

	if err := a.Swap(0, 2); err != nil {
		t.Fatal(err)
	}
	contents(t, a, []string{"c", "B", "a"})
	if err := a.Swap(0, 3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := a.Swap(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestRemoveLast(t *testing.T) {
	a := New[int]()
	if _, err := a.RemoveLast(); !errors.Is(err, ErrEmpty) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	for _, v := range arange(0, 5) {
		a.Append(v)
	}
	invariants(t, a, 5, 8)
	for i := 4; i >= 0; i-- {
		v, err := a.RemoveLast()
		if err != nil {
			t.Fatal(err)
		}
		if got, want := v, i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		// Capacity is never released.
		invariants(t, a, i, 8)
	}
	if _, err := a.RemoveLast(); !errors.Is(err, ErrEmpty) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	// Removed slots are zeroed.
	p := New[*int]()
	x := 3
	p.Append(&x)
	p.RemoveLast() //nolint:errcheck
	if p.storage[0] != nil {
		t.Errorf("removed slot was not cleared")
	}
}

func TestRemoveFront(t *testing.T) {
	a := New[int]()
	for _, v := range arange(0, 10) {
		a.Append(v)
	}
	if err := a.RemoveFront(0); err != nil {
		t.Fatal(err)
	}
	invariants(t, a, 10, 16)
	if err := a.RemoveFront(4); err != nil {
		t.Fatal(err)
	}
	invariants(t, a, 6, 16)
	contents(t, a, arange(4, 6))
	for i := 6; i < 10; i++ {
		var zero int
		if got, want := a.storage[i], zero; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if err := a.RemoveFront(7); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := a.RemoveFront(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := a.RemoveFront(6); err != nil {
		t.Fatal(err)
	}
	invariants(t, a, 0, 16)
	a.Append(100)
	contents(t, a, []int{100})
}

func TestAll(t *testing.T) {
	a := New[int]()
	for _, v := range arange(10, 5) {
		a.Append(v)
	}
	var idx, vals []int
	for i, v := range a.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if got, want := idx, arange(0, 5); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := vals, arange(10, 5); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	n := 0
	for range a.All() {
		n++
		if n == 2 {
			break
		}
	}
	if got, want := n, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Values returns a copy.
	v := a.Values()
	v[0] = -1
	if got, _ := a.Get(0); got != 10 {
		t.Errorf("Values aliased the array: got %v", got)
	}

	// Values only contains live elements.
	if err := a.RemoveFront(2); err != nil {
		t.Fatal(err)
	}
	if _, err := a.RemoveLast(); err != nil {
		t.Fatal(err)
	}
	if got, want := a.Values(), []int{12, 13}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := New[int]().Values(), []int{}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
