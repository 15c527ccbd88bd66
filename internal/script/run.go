package script

import (
	"go.uber.org/zap"
)

// Target is the operation set shared by linkedlist.Singly and linkedlist.Doubly.
type Target interface {
	Append(v string)
	Prepend(v string)
	InsertAfter(anchor, v string) error
	Delete(v string) error
	Search(v string) bool
	Len() int
}

type Result struct {
	Step  Step
	Found bool // search only
	Err   error
}

// Run applies steps to t in order. A step that fails with a not found or empty list
// condition is recorded in its Result and the run continues.
func Run(logger *zap.Logger, t Target, steps []Step) []Result {
	results := make([]Result, 0, len(steps))

	for _, step := range steps {
		r := Result{Step: step}

		switch step.Op {
		case OpAppend:
			t.Append(step.Value)
		case OpPrepend:
			t.Prepend(step.Value)
		case OpInsertAfter:
			r.Err = t.InsertAfter(step.Anchor, step.Value)
		case OpDelete:
			r.Err = t.Delete(step.Value)
		case OpSearch:
			r.Found = t.Search(step.Value)
		default:
			r.Err = step.Validate()
		}

		if r.Err != nil {
			logger.Warn("step failed", zap.Stringer("step", step), zap.Error(r.Err))
		} else {
			logger.Debug("step applied",
				zap.Stringer("step", step),
				zap.Bool("found", r.Found),
				zap.Int("len", t.Len()),
			)
		}

		results = append(results, r)
	}

	return results
}

// Failed returns the results whose step had no effect.
func Failed(results []Result) []Result {
	var failed []Result

	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}

	return failed
}
