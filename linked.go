/*
Package linked defines the contract shared by the linked list topologies
implemented in its subpackages:

	list       singly linked, linear
	dlist      doubly linked, linear
	ringlist   singly linked, circular
	dringlist  doubly linked, circular

Each subpackage provides a Node type for working with a raw node chain and a
List type that keeps track of the entry points. None of the types are safe
for concurrent use. Mutating a structure while a sequence over it is being
consumed is undefined behavior.
*/
package linked

import "iter"

// Sequence is an ordered container with left-end operations.
type Sequence[V comparable] interface {
	Len() int
	NonEmpty() bool
	All() iter.Seq[V]
	Contains(value V) bool
	PushFront(value V)
	PopFront() (V, error)
	Reverse()
}

// Deque is a Sequence that also has right-end operations.
type Deque[V comparable] interface {
	Sequence[V]
	PushBack(value V)
	PopBack() (V, error)
	Backward() iter.Seq[V]
}

// Ring is a Sequence that can be consumed lap after lap.
type Ring[V comparable] interface {
	Sequence[V]
	// Cycle returns a sequence that repeats the elements forever.
	// It yields nothing when the ring is empty.
	Cycle() iter.Seq[V]
}
