package linkedlist

import (
	"fmt"
	"iter"
)

// Doubly represents a doubly linked list. The zero value is an empty list.
type Doubly[V comparable] struct {
	head *DoublyNode[V]
	tail *DoublyNode[V]
	n    int
}

// NewDoubly returns a new empty doubly linked list.
func NewDoubly[V comparable]() *Doubly[V] {
	return new(Doubly[V])
}

// Head returns the first node or nil if the list is empty.
func (l *Doubly[V]) Head() *DoublyNode[V] { return l.head }

// Tail returns the last node or nil if the list is empty.
func (l *Doubly[V]) Tail() *DoublyNode[V] { return l.tail }

// Len returns the number of nodes in the list.
func (l *Doubly[V]) Len() int { return l.n }

// insert links e after at, or at the front when at is nil.
func (l *Doubly[V]) insert(e, at *DoublyNode[V]) {
	e.prev = at

	if at == nil {
		e.next = l.head
		l.head = e
	} else {
		e.next = at.next
		at.next = e
	}

	if e.next == nil {
		l.tail = e
	} else {
		e.next.prev = e
	}

	l.n++
}

func (l *Doubly[V]) unlink(e *DoublyNode[V]) {
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}

	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}

	e.prev = nil
	e.next = nil

	l.n--
}

func (l *Doubly[V]) find(v V) *DoublyNode[V] {
	for e := l.head; e != nil; e = e.next {
		if e.Value == v {
			return e
		}
	}

	return nil
}

// Append inserts v at the back of the list.
func (l *Doubly[V]) Append(v V) {
	l.insert(&DoublyNode[V]{Value: v}, l.tail)
}

// Prepend inserts v at the front of the list.
func (l *Doubly[V]) Prepend(v V) {
	l.insert(&DoublyNode[V]{Value: v}, nil)
}

// InsertAfter inserts v right after the first node holding anchor.
// Inserting after the tail moves the tail to the new node.
// The list is left unchanged if the anchor is missing.
func (l *Doubly[V]) InsertAfter(anchor, v V) error {
	if l.head == nil {
		return fmt.Errorf("insert after %v: %w", anchor, ErrEmptyList)
	}

	at := l.find(anchor)
	if at == nil {
		return fmt.Errorf("insert after %v: %w", anchor, ErrNotFound)
	}

	l.insert(&DoublyNode[V]{Value: v}, at)

	return nil
}

// Delete removes the first node holding v.
func (l *Doubly[V]) Delete(v V) error {
	e := l.find(v)
	if e == nil {
		return fmt.Errorf("delete %v: %w", v, ErrNotFound)
	}

	l.unlink(e)

	return nil
}

// Search reports whether any node holds v.
func (l *Doubly[V]) Search(v V) bool {
	return l.find(v) != nil
}

// Clear removes all nodes from the list.
func (l *Doubly[V]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.prev = nil
		e.next = nil
		e = next
	}

	l.head = nil
	l.tail = nil
	l.n = 0
}

// All returns an iterator over the values from head to tail.
func (l *Doubly[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from tail to head.
func (l *Doubly[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns the values from head to tail.
func (l *Doubly[V]) Values() []V {
	return collect(l.All(), l.n)
}

// BackwardValues returns the values from tail to head.
func (l *Doubly[V]) BackwardValues() []V {
	return collect(l.Backward(), l.n)
}

// String lists the values in order, e.g. "[10 <-> 15]". It is meant for diagnostics.
func (l *Doubly[V]) String() string {
	return format(l.All(), " <-> ")
}

func collect[V any](values iter.Seq[V], n int) []V {
	s := make([]V, 0, n)
	for v := range values {
		s = append(s, v)
	}

	return s
}
