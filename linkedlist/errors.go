package linkedlist

import "errors"

var (
	// ErrNotFound is returned when no node holds the requested value.
	ErrNotFound = errors.New("not found")
	// ErrEmptyList is returned by InsertAfter when the list has no anchor to insert after.
	ErrEmptyList = errors.New("empty list")
)
