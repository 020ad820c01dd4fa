package list

import (
	"fmt"
	"iter"

	"github.com/mgnsk/linked"
	"github.com/mgnsk/linked/internal/format"
)

// Node is a node of a singly linked linear chain.
// A nil *Node is the empty chain.
type Node[V comparable] struct {
	next  *Node[V]
	Value V
}

// FromSeq creates a chain holding the values of seq in order and returns its head.
// It returns nil if seq is empty. seq is consumed in a single pass.
func FromSeq[V comparable](seq iter.Seq[V]) *Node[V] {
	var head, tail *Node[V]
	for v := range seq {
		n := &Node[V]{Value: v}
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return head
}

// Next returns the next node or nil if n is the last node.
func (n *Node[V]) Next() *Node[V] {
	return n.next
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

// Contains reports whether value is held by n or any node after it.
func (n *Node[V]) Contains(value V) bool {
	for ; n != nil; n = n.next {
		if n.Value == value {
			return true
		}
	}
	return false
}

// PushFront inserts value before n and returns the new head.
func (n *Node[V]) PushFront(value V) *Node[V] {
	return &Node[V]{next: n, Value: value}
}

// PopFront detaches n from the chain and returns the new head and the value of n.
func (n *Node[V]) PopFront() (*Node[V], V, error) {
	if n == nil {
		var zero V
		return nil, zero, linked.ErrEmpty
	}
	next := n.next
	n.next = nil
	return next, n.Value, nil
}

// Reverse reverses the chain starting at n in place and returns the new head.
func (n *Node[V]) Reverse() *Node[V] {
	var prev *Node[V]
	for n != nil {
		n.next, prev, n = prev, n, n.next
	}
	return prev
}

func (n *Node[V]) String() string {
	var next V
	if n.next != nil {
		next = n.next.Value
	}
	return fmt.Sprintf("%v -> %s", n.Value, format.Neighbor(next, n.next != nil))
}
