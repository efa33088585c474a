// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package curriculum describes the challenge modules that the data
// structures in this repository are taught with. Each module is broken
// down into steps, each of which adds one capability to the structure.
//
// The catalogue is a YAML document of the form:
//
//	modules:
//	  - id: stack
//	    title: Build a Stack
//	    level: Beginner
//	    summary: Implement push, pop, peek, size.
//	    time: 30-45 min
//	    package: algo/container/stack
//	    steps:
//	      - Create class
//	      - title: push()
//	        focus: append to the top in amortized O(1)
//	        objective: Add an element to the top of the stack.
//	        requirements: [Append to the end of the internal array]
//	        hints: [The last element added is the top]
//	        edge_cases: [Pushing onto an empty stack]
//
// A step may be written as a bare title or as a mapping. Steps are
// numbered from 1 in the order they appear; an explicit number must
// agree with that order.
package curriculum

import (
	"context"
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

//go:embed modules.yaml
var defaultSpec []byte

// Step represents a single step in a module. Objective, Requirements,
// Hints and EdgeCases are optional guidance for the learner.
type Step struct {
	Number       int      `yaml:"number"`
	Title        string   `yaml:"title"`
	Focus        string   `yaml:"focus"`
	Objective    string   `yaml:"objective"`
	Requirements []string `yaml:"requirements"`
	Hints        []string `yaml:"hints"`
	EdgeCases    []string `yaml:"edge_cases"`
}

func (s Step) clone() Step {
	s.Requirements = slices.Clone(s.Requirements)
	s.Hints = slices.Clone(s.Hints)
	s.EdgeCases = slices.Clone(s.EdgeCases)
	return s
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts either a scalar,
// which is used as the title, or a mapping.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Title = node.Value
		return nil
	}
	type plain Step
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = Step(p)
	return nil
}

// Module represents a single challenge module.
type Module struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Level   string `yaml:"level"`
	Summary string `yaml:"summary"`
	Time    string `yaml:"time"`
	Package string `yaml:"package"`
	Steps   []Step `yaml:"steps"`
}

// Catalogue represents a set of modules.
type Catalogue struct {
	modules []Module
	index   map[string]int
}

type catalogueSpec struct {
	Modules []Module `yaml:"modules"`
}

// Load parses and validates a YAML catalogue specification. Unknown
// module fields are reported as errors.
func Load(spec []byte) (*Catalogue, error) {
	var cs catalogueSpec
	if err := cmdyaml.ParseConfigStrict(spec, &cs); err != nil {
		return nil, err
	}
	return newCatalogue(cs)
}

// LoadFile is like Load but reads the specification from filename
// using cmdyaml.ParseConfigFileStrict, hence an fs.ReadFileFS stored
// in ctx will be used in preference to the local filesystem.
func LoadFile(ctx context.Context, filename string) (*Catalogue, error) {
	var cs catalogueSpec
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cs); err != nil {
		return nil, err
	}
	return newCatalogue(cs)
}

func newCatalogue(cs catalogueSpec) (*Catalogue, error) {
	c := &Catalogue{
		modules: cs.Modules,
		index:   make(map[string]int, len(cs.Modules)),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalogue) validate() error {
	errs := &errors.M{}
	for i := range c.modules {
		m := &c.modules[i]
		if len(m.ID) == 0 {
			errs.Append(fmt.Errorf("module %v: missing id", i))
		}
		if len(m.Title) == 0 {
			errs.Append(fmt.Errorf("module %v (%q): missing title", i, m.ID))
		}
		if len(m.ID) > 0 {
			if prev, ok := c.index[m.ID]; ok {
				errs.Append(fmt.Errorf("module %v: id %q already used by module %v", i, m.ID, prev))
			} else {
				c.index[m.ID] = i
			}
		}
		for j := range m.Steps {
			st := &m.Steps[j]
			switch {
			case st.Number == 0:
				st.Number = j + 1
			case st.Number != j+1:
				errs.Append(fmt.Errorf("module %q: step %q is numbered %v, want %v", m.ID, st.Title, st.Number, j+1))
			}
			if len(st.Title) == 0 {
				errs.Append(fmt.Errorf("module %q: step %v: missing title", m.ID, j+1))
			}
		}
	}
	return errs.Err()
}

var defaultCatalogue *Catalogue

func init() {
	c, err := Load(defaultSpec)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded curriculum: %v", err))
	}
	defaultCatalogue = c
}

// Default returns the catalogue embedded in this package.
func Default() *Catalogue {
	return defaultCatalogue
}

func (m Module) clone() Module {
	steps := make([]Step, len(m.Steps))
	for i, st := range m.Steps {
		steps[i] = st.clone()
	}
	m.Steps = steps
	return m
}

// Modules returns a copy of the modules in the catalogue in the order
// they were specified.
func (c *Catalogue) Modules() []Module {
	mods := make([]Module, len(c.modules))
	for i, m := range c.modules {
		mods[i] = m.clone()
	}
	return mods
}

// Lookup returns the module with the specified id.
func (c *Catalogue) Lookup(id string) (Module, bool) {
	i, ok := c.index[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i].clone(), true
}

// Step returns the step identified by ref, which is either its number
// or its title. Titles are matched case insensitively and the trailing
// parentheses of titles such as "push()" may be omitted.
func (m Module) Step(ref string) (Step, bool) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(m.Steps) {
			return Step{}, false
		}
		return m.Steps[n-1].clone(), true
	}
	ref = strings.TrimSuffix(strings.TrimSpace(ref), "()")
	for _, st := range m.Steps {
		if strings.EqualFold(strings.TrimSuffix(st.Title, "()"), ref) {
			return st.clone(), true
		}
	}
	return Step{}, false
}
