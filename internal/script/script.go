// Package script runs sequences of list operations against a linked list.
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidStep is returned for unknown operations or missing operands.
var ErrInvalidStep = errors.New("invalid step")

type Op string

const (
	OpAppend      Op = "append"
	OpPrepend     Op = "prepend"
	OpInsertAfter Op = "insert-after"
	OpDelete      Op = "delete"
	OpSearch      Op = "search"
)

// operands returns the number of arguments op takes, or 0 for an unknown op.
func (op Op) operands() int {
	switch op {
	case OpAppend, OpPrepend, OpDelete, OpSearch:
		return 1
	case OpInsertAfter:
		return 2
	default:
		return 0
	}
}

// Step is a single list operation. Anchor is used by insert-after only.
type Step struct {
	Op     Op     `yaml:"op"`
	Value  string `yaml:"value"`
	Anchor string `yaml:"anchor,omitempty"`
}

func (s Step) String() string {
	if s.Op == OpInsertAfter {
		return fmt.Sprintf("%s %s %s", s.Op, s.Anchor, s.Value)
	}

	return fmt.Sprintf("%s %s", s.Op, s.Value)
}

func (s Step) Validate() error {
	if s.Op.operands() == 0 {
		return fmt.Errorf("unknown op %q: %w", s.Op, ErrInvalidStep)
	}

	return nil
}

// Script is the YAML form of a run:
//
//	list: doubly
//	steps:
//	  - {op: append, value: "10"}
//	  - {op: insert-after, anchor: "10", value: "15"}
type Script struct {
	List  string `yaml:"list,omitempty"`
	Steps []Step `yaml:"steps"`
}

func (s Script) Validate() error {
	switch s.List {
	case "", "singly", "doubly":
	default:
		return fmt.Errorf("unknown list kind %q: %w", s.List, ErrInvalidStep)
	}

	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return nil
}

// Parse reads steps from command line tokens, e.g.
// "append 10 prepend 5 insert-after 10 15 delete 5".
func Parse(args []string) ([]Step, error) {
	var steps []Step

	for i := 0; i < len(args); {
		op := Op(args[i])

		n := op.operands()
		if n == 0 {
			return nil, fmt.Errorf("arg %d: unknown op %q: %w", i+1, args[i], ErrInvalidStep)
		}

		if i+n >= len(args) {
			return nil, fmt.Errorf("arg %d: %s needs %d operand(s): %w", i+1, op, n, ErrInvalidStep)
		}

		step := Step{Op: op, Value: args[i+n]}
		if n == 2 {
			step.Anchor = args[i+1]
		}

		steps = append(steps, step)
		i += n + 1
	}

	return steps, nil
}

// Load reads and validates a YAML script file.
func Load(path string) (Script, error) {
	var s Script

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read script: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode script %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("validate script %s: %w", path, err)
	}

	return s, nil
}
