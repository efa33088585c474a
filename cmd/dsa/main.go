// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command dsa provides a command line interface to the data structures
// taught by the challenge modules in this repository: heap sorting and
// binary searching lists of numbers, tracing a sequence of operations
// against a heap, stack or queue, and browsing the curriculum and the
// hints for each of its steps.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: dsa
summary: explore the data structures taught by the dsa challenge modules
commands:
  - name: heapsort
    summary: sort numbers into non-decreasing order using a min-heap
    arguments:
      - <number>
      - ...
  - name: search
    summary: binary search for --target in a sorted list of numbers, printing its index or -1
    arguments:
      - <number>
      - ...
  - name: trace
    summary: apply a sequence of operations to a heap, stack or queue, printing the result of each.
      Operations are insert:<n>, push:<n> or enqueue:<n> to add a number, extract, pop or dequeue
      to remove one, peek or front, size and empty.
    arguments:
      - <heap|stack|queue>
      - <operation>
      - ...
  - name: modules
    summary: list the curriculum's challenge modules
  - name: steps
    summary: list the steps of a curriculum module
    arguments:
      - <module-id>
  - name: hint
    summary: show the objective, requirements, hints and edge cases for a step
      of a curriculum module. The step is either its number or its title.
    arguments:
      - <module-id>
      - <step>
`

type CommonFlags struct {
	cmdutil.LoggingFlags
}

type heapsortFlags struct {
	CommonFlags
}

type searchFlags struct {
	CommonFlags
	Target float64 `subcmd:"target,0,number to search for"`
}

type traceFlags struct {
	CommonFlags
}

type curriculumFlags struct {
	CommonFlags
	Curriculum string `subcmd:"curriculum,,'yaml file containing an alternative curriculum, the built in curriculum is used by default'"`
}

// withLogger returns a context carrying the logger configured by the
// logging flags and a function to close that logger.
func (cf CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { _ = logger.Close() }, nil
}

type command struct {
	out io.Writer
}

func newCommandSet(cmd *command) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("heapsort").MustRunnerAndFlags(cmd.heapsort,
		subcmd.MustRegisteredFlagSet(&heapsortFlags{}))
	cmdSet.Set("search").MustRunnerAndFlags(cmd.search,
		subcmd.MustRegisteredFlagSet(&searchFlags{}))
	cmdSet.Set("trace").MustRunnerAndFlags(cmd.trace,
		subcmd.MustRegisteredFlagSet(&traceFlags{}))
	cmdSet.Set("modules").MustRunnerAndFlags(cmd.modules,
		subcmd.MustRegisteredFlagSet(&curriculumFlags{}))
	cmdSet.Set("steps").MustRunnerAndFlags(cmd.steps,
		subcmd.MustRegisteredFlagSet(&curriculumFlags{}))
	cmdSet.Set("hint").MustRunnerAndFlags(cmd.hint,
		subcmd.MustRegisteredFlagSet(&curriculumFlags{}))
	return cmdSet
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = newCommandSet(&command{out: os.Stdout})
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
