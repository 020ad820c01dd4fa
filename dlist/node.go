package dlist

import (
	"fmt"
	"iter"

	"github.com/mgnsk/linked"
	"github.com/mgnsk/linked/internal/format"
)

// Node is a node of a doubly linked linear chain.
// A nil *Node is the empty chain.
//
// Left side operations are called on the head and right side operations
// on the tail, so it is useful to hold onto both.
type Node[V comparable] struct {
	next, prev *Node[V]
	Value      V
}

// FromSeq creates a chain holding the values of seq in order and returns its head.
// It returns nil if seq is empty. seq is consumed in a single pass.
func FromSeq[V comparable](seq iter.Seq[V]) *Node[V] {
	var head, tail *Node[V]
	for v := range seq {
		tail = tail.PushBack(v)
		if head == nil {
			head = tail
		}
	}
	return head
}

// Next returns the next node or nil if n is the last node.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the previous node or nil if n is the first node.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}

// Tail returns the last node of the chain by walking forward from n.
func (n *Node[V]) Tail() *Node[V] {
	if n == nil {
		return nil
	}
	for n.next != nil {
		n = n.next
	}
	return n
}

// Len returns the number of nodes from n to the end of the chain.
func (n *Node[V]) Len() int {
	length := 0
	for ; n != nil; n = n.next {
		length++
	}
	return length
}

// All returns a sequence of the values from n to the end of the chain.
func (n *Node[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := n; p != nil; p = p.next {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Backward returns a sequence of the values from n back to the start of the chain.
func (n *Node[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := n; p != nil; p = p.prev {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Contains reports whether value is held by n or any node after it.
func (n *Node[V]) Contains(value V) bool {
	for ; n != nil; n = n.next {
		if n.Value == value {
			return true
		}
	}
	return false
}

// PushFront inserts value before n and returns the new node.
// Called on the head, the new node is the new head. Called on nil,
// the new node is both head and tail.
func (n *Node[V]) PushFront(value V) *Node[V] {
	s := &Node[V]{Value: value}
	if n != nil {
		s.prev = n.prev
		s.next = n
		if n.prev != nil {
			n.prev.next = s
		}
		n.prev = s
	}
	return s
}

// PushBack inserts value after n and returns the new node.
// Called on the tail, the new node is the new tail.
func (n *Node[V]) PushBack(value V) *Node[V] {
	s := &Node[V]{Value: value}
	if n != nil {
		s.next = n.next
		s.prev = n
		if n.next != nil {
			n.next.prev = s
		}
		n.next = s
	}
	return s
}

// PopFront detaches the head n and returns the new head and the value of n.
func (n *Node[V]) PopFront() (*Node[V], V, error) {
	if n == nil {
		var zero V
		return nil, zero, linked.ErrEmpty
	}
	next := n.next
	if next != nil {
		next.prev = nil
	}
	n.next = nil
	return next, n.Value, nil
}

// PopBack detaches the tail n and returns the new tail and the value of n.
func (n *Node[V]) PopBack() (*Node[V], V, error) {
	if n == nil {
		var zero V
		return nil, zero, linked.ErrEmpty
	}
	prev := n.prev
	if prev != nil {
		prev.next = nil
	}
	n.prev = nil
	return prev, n.Value, nil
}

// Reverse reverses the chain in place and returns the new head.
// It must be called on the head.
func (n *Node[V]) Reverse() *Node[V] {
	var head *Node[V]
	for n != nil {
		n.next, n.prev = n.prev, n.next
		head, n = n, n.prev
	}
	return head
}

func (n *Node[V]) String() string {
	var prev, next V
	if n.prev != nil {
		prev = n.prev.Value
	}
	if n.next != nil {
		next = n.next.Value
	}
	return fmt.Sprintf("%s <- %v -> %s",
		format.Neighbor(prev, n.prev != nil),
		n.Value,
		format.Neighbor(next, n.next != nil),
	)
}
