package linkedlist

import (
	"errors"
	"math/rand"
	"reflect"
	"slices"
)

type mutator interface {
	Append(v int8)
	Prepend(v int8)
	InsertAfter(anchor, v int8) error
	Delete(v int8) error
	Search(v int8) bool
}

type opKind uint8

const (
	opAppend opKind = iota
	opPrepend
	opInsertAfter
	opDelete
	opSearch
	opCount
)

// operation is a random list operation. Values are drawn from a small range
// so that anchors and deletes hit existing nodes often.
type operation struct {
	kind   opKind
	anchor int8
	value  int8
}

func (operation) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(operation{
		kind:   opKind(r.Intn(int(opCount))),
		anchor: int8(r.Intn(4)),
		value:  int8(r.Intn(4)),
	})
}

// apply runs the operation on l. A search result that disagrees with want is
// reported as errSearchMismatch.
func (op operation) apply(l mutator, want []int8) error {
	switch op.kind {
	case opAppend:
		l.Append(op.value)
	case opPrepend:
		l.Prepend(op.value)
	case opInsertAfter:
		return l.InsertAfter(op.anchor, op.value)
	case opDelete:
		return l.Delete(op.value)
	case opSearch:
		if l.Search(op.value) != slices.Contains(want, op.value) {
			return errSearchMismatch
		}
	}

	return nil
}

var errSearchMismatch = errors.New("search mismatch")

// applyModel runs the operation on a plain slice.
func (op operation) applyModel(model *[]int8) error {
	switch op.kind {
	case opAppend:
		*model = append(*model, op.value)
	case opPrepend:
		*model = slices.Insert(*model, 0, op.value)
	case opInsertAfter:
		if len(*model) == 0 {
			return ErrEmptyList
		}

		i := slices.Index(*model, op.anchor)
		if i < 0 {
			return ErrNotFound
		}

		*model = slices.Insert(*model, i+1, op.value)
	case opDelete:
		i := slices.Index(*model, op.value)
		if i < 0 {
			return ErrNotFound
		}

		*model = slices.Delete(*model, i, i+1)
	case opSearch:
	}

	return nil
}

func sameFailure(want, got error) bool {
	if want == nil {
		return got == nil
	}

	return errors.Is(got, want)
}
