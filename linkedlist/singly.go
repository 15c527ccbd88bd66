package linkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// Singly represents a singly linked list. The zero value is an empty list.
//
// Singly keeps no tail pointer, so Append walks the whole chain.
type Singly[V comparable] struct {
	head *SinglyNode[V]
	n    int
}

// NewSingly returns a new empty singly linked list.
func NewSingly[V comparable]() *Singly[V] {
	return new(Singly[V])
}

// Head returns the first node or nil if the list is empty.
func (l *Singly[V]) Head() *SinglyNode[V] { return l.head }

// Len returns the number of nodes in the list.
func (l *Singly[V]) Len() int { return l.n }

func (l *Singly[V]) insert(v V, at *SinglyNode[V]) {
	e := &SinglyNode[V]{Value: v}

	if at == nil {
		e.next = l.head
		l.head = e
	} else {
		e.next = at.next
		at.next = e
	}

	l.n++
}

// find returns the first node holding v and its predecessor.
func (l *Singly[V]) find(v V) (prev, e *SinglyNode[V]) {
	for e = l.head; e != nil; prev, e = e, e.next {
		if e.Value == v {
			return prev, e
		}
	}

	return nil, nil
}

// Append inserts v at the end of the list.
func (l *Singly[V]) Append(v V) {
	if l.head == nil {
		l.insert(v, nil)
		return
	}

	last := l.head
	for last.next != nil {
		last = last.next
	}

	l.insert(v, last)
}

// Prepend inserts v at the front of the list.
func (l *Singly[V]) Prepend(v V) {
	l.insert(v, nil)
}

// InsertAfter inserts v right after the first node holding anchor.
// The list is left unchanged if the anchor is missing.
func (l *Singly[V]) InsertAfter(anchor, v V) error {
	if l.head == nil {
		return fmt.Errorf("insert after %v: %w", anchor, ErrEmptyList)
	}

	_, at := l.find(anchor)
	if at == nil {
		return fmt.Errorf("insert after %v: %w", anchor, ErrNotFound)
	}

	l.insert(v, at)

	return nil
}

// Delete removes the first node holding v.
func (l *Singly[V]) Delete(v V) error {
	prev, e := l.find(v)
	if e == nil {
		return fmt.Errorf("delete %v: %w", v, ErrNotFound)
	}

	if prev == nil {
		l.head = e.next
	} else {
		prev.next = e.next
	}

	e.next = nil
	l.n--

	return nil
}

// Search reports whether any node holds v.
func (l *Singly[V]) Search(v V) bool {
	_, e := l.find(v)
	return e != nil
}

// Clear removes all nodes from the list.
func (l *Singly[V]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.next = nil
		e = next
	}

	l.head = nil
	l.n = 0
}

// All returns an iterator over the values from head to the last node.
func (l *Singly[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns the values from head to the last node.
func (l *Singly[V]) Values() []V {
	return collect(l.All(), l.n)
}

// String lists the values in order, e.g. "[5 -> 10 -> 20]". It is meant for diagnostics.
func (l *Singly[V]) String() string {
	return format(l.All(), " -> ")
}

func format[V any](values iter.Seq[V], sep string) string {
	var b strings.Builder

	b.WriteByte('[')

	first := true

	for v := range values {
		if !first {
			b.WriteString(sep)
		}

		first = false

		fmt.Fprint(&b, v)
	}

	b.WriteByte(']')

	return b.String()
}
