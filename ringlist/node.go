package ringlist

import (
	"fmt"
	"iter"

	"github.com/mgnsk/linked"
)

// Node is a node of a singly linked ring.
//
// A ring is addressed through its tail node: the head is n.Next().
// A lone node links to itself. A nil *Node is the empty ring.
type Node[V comparable] struct {
	next  *Node[V]
	Value V
}

// NewNode creates a single node ring.
func NewNode[V comparable](v V) *Node[V] {
	n := &Node[V]{Value: v}
	n.next = n
	return n
}

// FromSeq creates a ring holding the values of seq in order and returns its tail.
// It returns nil if seq is empty. seq is consumed in a single pass.
func FromSeq[V comparable](seq iter.Seq[V]) *Node[V] {
	var tail *Node[V]
	for v := range seq {
		if tail == nil {
			tail = NewNode(v)
			continue
		}
		tail.next = &Node[V]{next: tail.next, Value: v}
		tail = tail.next
	}
	return tail
}

// Next returns the next node. It is never nil for a node in a ring.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Len returns the number of nodes in the ring.
func (n *Node[V]) Len() int {
	if n == nil {
		return 0
	}
	length := 1
	for p := n.next; p != n; p = p.next {
		length++
	}
	return length
}

// All returns a sequence of one lap of values, starting from the head n.Next()
// and ending with n.
func (n *Node[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		if n == nil {
			return
		}
		for p := n.next; ; p = p.next {
			if !yield(p.Value) || p == n {
				return
			}
		}
	}
}

// Cycle returns a sequence that repeats the laps of All forever.
func (n *Node[V]) Cycle() iter.Seq[V] {
	return func(yield func(V) bool) {
		if n == nil {
			return
		}
		for p := n.next; ; p = p.next {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Contains reports whether value is held by any node in the ring.
func (n *Node[V]) Contains(value V) bool {
	if n == nil {
		return false
	}
	p := n
	for {
		if p.Value == value {
			return true
		}
		if p = p.next; p == n {
			return false
		}
	}
}

// PushFront inserts value between n and its head, making it the new head.
// It returns n, which stays the tail. On a nil ring it returns a new single node ring.
func (n *Node[V]) PushFront(value V) *Node[V] {
	if n == nil {
		return NewNode(value)
	}
	n.next = &Node[V]{next: n.next, Value: value}
	return n
}

// PopFront removes the head n.Next() and returns the tail and the removed value.
// Removing the only node returns a nil tail.
func (n *Node[V]) PopFront() (*Node[V], V, error) {
	if n == nil {
		var zero V
		return nil, zero, linked.ErrEmpty
	}
	head := n.next
	if head == n {
		return nil, head.Value, nil
	}
	n.next = head.next
	head.next = head
	return n, head.Value, nil
}

// Reverse reverses the ring in place and returns the new tail, which is the old head.
func (n *Node[V]) Reverse() *Node[V] {
	if n == nil {
		return nil
	}
	head := n.next
	prev, p := n, head
	for {
		next := p.next
		p.next = prev
		if p == n {
			return head
		}
		prev, p = p, next
	}
}

func (n *Node[V]) String() string {
	return fmt.Sprintf("%v -> %v", n.Value, n.next.Value)
}
