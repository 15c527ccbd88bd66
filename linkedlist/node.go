package linkedlist

// SinglyNode represents an element of a Singly list.
type SinglyNode[V any] struct {
	Value V
	next  *SinglyNode[V]
}

// Next returns the next node or nil if it is the last node.
func (n *SinglyNode[V]) Next() *SinglyNode[V] {
	return n.next
}

// DoublyNode represents an element of a Doubly list.
type DoublyNode[V any] struct {
	Value V
	next  *DoublyNode[V]
	prev  *DoublyNode[V] // non-owning, always the inverse of the predecessor's next
}

// Next returns the next node or nil if it is the last node.
func (n *DoublyNode[V]) Next() *DoublyNode[V] {
	return n.next
}

// Prev returns the previous node or nil if it is the first node.
func (n *DoublyNode[V]) Prev() *DoublyNode[V] {
	return n.prev
}
