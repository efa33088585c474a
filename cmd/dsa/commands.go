// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/joudbitar/dsa-teacher/algo/binarysearch"
	"github.com/joudbitar/dsa-teacher/algo/container/minheap"
	"github.com/joudbitar/dsa-teacher/curriculum"
)

var errUnsorted = errors.New("input is not sorted")

func parseNumbers(args []string) ([]float64, error) {
	errs := &errors.M{}
	values := make([]float64, 0, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			errs.Append(fmt.Errorf("argument %v: %q is not a number", i+1, a))
			continue
		}
		values = append(values, v)
	}
	return values, errs.Err()
}

func formatNumbers(values []float64) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(s, " ")
}

func (c *command) heapsort(ctx context.Context, values any, args []string) error {
	fv := values.(*heapsortFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	minheap.Sort(numbers)
	ctxlog.Logger(ctx).Debug("heapsort", "count", len(numbers))
	fmt.Fprintln(c.out, formatNumbers(numbers))
	return nil
}

func (c *command) search(ctx context.Context, values any, args []string) error {
	fv := values.(*searchFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	if !slices.IsSorted(numbers) {
		return fmt.Errorf("%w: %v", errUnsorted, formatNumbers(numbers))
	}
	idx := binarysearch.Index(numbers, fv.Target)
	ctxlog.Logger(ctx).Debug("search", "target", fv.Target, "count", len(numbers), "index", idx)
	fmt.Fprintln(c.out, idx)
	return nil
}

func (c *command) trace(ctx context.Context, values any, args []string) error {
	fv := values.(*traceFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	tr, err := newTracer(args[0])
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx).With("structure", args[0])
	errs := &errors.M{}
	for i, op := range args[1:] {
		line, err := tr.apply(op)
		if err != nil {
			errs.Append(fmt.Errorf("operation %v: %w", i+1, err))
			continue
		}
		logger.Debug("trace", "op", op, "result", line, "size", tr.size())
		fmt.Fprintln(c.out, line)
	}
	return errs.Err()
}

func (c *command) loadCurriculum(ctx context.Context, fv *curriculumFlags) (*curriculum.Catalogue, error) {
	if len(fv.Curriculum) == 0 {
		return curriculum.Default(), nil
	}
	ctxlog.Logger(ctx).Info("loading curriculum", "file", fv.Curriculum)
	return curriculum.LoadFile(ctx, fv.Curriculum)
}

func lookupModule(cat *curriculum.Catalogue, id string) (curriculum.Module, error) {
	m, ok := cat.Lookup(id)
	if !ok {
		ids := []string{}
		for _, m := range cat.Modules() {
			ids = append(ids, m.ID)
		}
		return m, fmt.Errorf("unknown module %q, available modules are: %v", id, strings.Join(ids, ", "))
	}
	return m, nil
}

func (c *command) modules(ctx context.Context, values any, _ []string) error {
	fv := values.(*curriculumFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	cat, err := c.loadCurriculum(ctx, fv)
	if err != nil {
		return err
	}
	for _, m := range cat.Modules() {
		fmt.Fprintf(c.out, "%v: %v (%v, %v steps): %v\n", m.ID, m.Title, m.Level, len(m.Steps), m.Summary)
	}
	return nil
}

func (c *command) steps(ctx context.Context, values any, args []string) error {
	fv := values.(*curriculumFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	cat, err := c.loadCurriculum(ctx, fv)
	if err != nil {
		return err
	}
	m, err := lookupModule(cat, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v (%v)\n", m.Title, m.Package)
	for _, s := range m.Steps {
		if len(s.Focus) == 0 {
			fmt.Fprintf(c.out, "%2d. %v\n", s.Number, s.Title)
			continue
		}
		fmt.Fprintf(c.out, "%2d. %v: %v\n", s.Number, s.Title, s.Focus)
	}
	return nil
}

func (c *command) hint(ctx context.Context, values any, args []string) error {
	fv := values.(*curriculumFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	cat, err := c.loadCurriculum(ctx, fv)
	if err != nil {
		return err
	}
	m, err := lookupModule(cat, args[0])
	if err != nil {
		return err
	}
	s, ok := m.Step(args[1])
	if !ok {
		return fmt.Errorf("module %q has no step %q, use a step number from 1 to %v or a step title", m.ID, args[1], len(m.Steps))
	}
	ctxlog.Logger(ctx).Debug("hint", "module", m.ID, "step", s.Number)
	fmt.Fprintf(c.out, "%v, step %v: %v\n", m.Title, s.Number, s.Title)
	if len(s.Objective) == 0 && len(s.Requirements) == 0 && len(s.Hints) == 0 && len(s.EdgeCases) == 0 {
		fmt.Fprintln(c.out, "no hints are available for this step")
		return nil
	}
	if len(s.Objective) > 0 {
		fmt.Fprintf(c.out, "Objective: %v\n", s.Objective)
	}
	c.list("Requirements", s.Requirements, false)
	c.list("Hints", s.Hints, true)
	c.list("Edge cases", s.EdgeCases, false)
	return nil
}

func (c *command) list(heading string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(c.out, "%v:\n", heading)
	for i, item := range items {
		if numbered {
			fmt.Fprintf(c.out, "  %v. %v\n", i+1, item)
			continue
		}
		fmt.Fprintf(c.out, "  - %v\n", item)
	}
}
