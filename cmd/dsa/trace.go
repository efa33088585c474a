// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joudbitar/dsa-teacher/algo/container/minheap"
	"github.com/joudbitar/dsa-teacher/algo/container/queue"
	"github.com/joudbitar/dsa-teacher/algo/container/stack"
)

// tracer adapts a heap, stack or queue of numbers to a common set of
// operations, named as per the structure being traced.
type tracer struct {
	name                    string
	addOp, removeOp, peekOp string
	add                     func(float64)
	remove                  func() (float64, bool)
	peek                    func() (float64, bool)
	size                    func() int
	empty                   func() bool
}

func newTracer(structure string) (*tracer, error) {
	switch structure {
	case "heap":
		h := minheap.New[float64]()
		return &tracer{
			name: structure,
			addOp: "insert", removeOp: "extract", peekOp: "peek",
			add: h.Insert, remove: h.ExtractMin, peek: h.PeekMin,
			size: h.Size, empty: h.IsEmpty,
		}, nil
	case "stack":
		s := stack.New[float64]()
		return &tracer{
			name: structure,
			addOp: "push", removeOp: "pop", peekOp: "peek",
			add: s.Push, remove: s.Pop, peek: s.Peek,
			size: s.Size, empty: s.IsEmpty,
		}, nil
	case "queue":
		q := queue.New[float64]()
		return &tracer{
			name: structure,
			addOp: "enqueue", removeOp: "dequeue", peekOp: "front",
			add: q.Enqueue, remove: q.Dequeue, peek: q.Front,
			size: q.Size, empty: q.IsEmpty,
		}, nil
	}
	return nil, fmt.Errorf("unsupported structure %q: use one of heap, stack or queue", structure)
}

func formatResult(op string, v float64, ok bool) string {
	if !ok {
		return op + " -> <empty>"
	}
	return op + " -> " + strconv.FormatFloat(v, 'g', -1, 64)
}

// apply runs a single operation and returns a one line description of
// its result.
func (t *tracer) apply(op string) (string, error) {
	name, arg, hasArg := strings.Cut(op, ":")
	if hasArg && name != t.addOp {
		return "", fmt.Errorf("%q: %v does not take an argument", op, name)
	}
	switch name {
	case t.addOp:
		if !hasArg {
			return "", fmt.Errorf("%q: %v requires a number, eg. %v:1", op, name, name)
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", fmt.Errorf("%q: %q is not a number", op, arg)
		}
		t.add(v)
		return fmt.Sprintf("%v %v -> size %v", name, arg, t.size()), nil
	case t.removeOp:
		v, ok := t.remove()
		return formatResult(name, v, ok), nil
	case t.peekOp:
		v, ok := t.peek()
		return formatResult(name, v, ok), nil
	case "size":
		return fmt.Sprintf("size -> %v", t.size()), nil
	case "empty":
		return fmt.Sprintf("empty -> %v", t.empty()), nil
	}
	return "", fmt.Errorf("%q: unsupported operation for a %v", op, t.name)
}
