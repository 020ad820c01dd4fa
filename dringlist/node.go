package dringlist

import (
	"fmt"
	"iter"

	"github.com/mgnsk/linked"
)

// Node is a node of a doubly linked ring.
//
// A ring is addressed through its tail node: the head is n.Next().
// A lone node links to itself in both directions. A nil *Node is the empty ring.
type Node[V comparable] struct {
	next, prev *Node[V]
	Value      V
}

// NewNode creates a single node ring.
func NewNode[V comparable](v V) *Node[V] {
	n := &Node[V]{
		Value: v,
	}
	n.next = n
	n.prev = n
	return n
}

// FromSeq creates a ring holding the values of seq in order and returns its tail.
// It returns nil if seq is empty. seq is consumed in a single pass.
func FromSeq[V comparable](seq iter.Seq[V]) *Node[V] {
	var tail *Node[V]
	for v := range seq {
		tail = tail.PushBack(v)
	}
	return tail
}

// Next returns the next node. It is never nil for a node in a ring.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the previous node. It is never nil for a node in a ring.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
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

// Backward returns a sequence of one lap of values in backward order,
// starting from n and ending with the head.
func (n *Node[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		if n == nil {
			return
		}
		for p := n; ; p = p.prev {
			if !yield(p.Value) || p.prev == n {
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
	n.link(NewNode(value))
	return n
}

// PushBack inserts value after the tail n and returns the new tail.
func (n *Node[V]) PushBack(value V) *Node[V] {
	s := NewNode(value)
	if n != nil {
		n.link(s)
	}
	return s
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
	head.unlink()
	return n, head.Value, nil
}

// PopBack removes the tail n and returns the new tail and the removed value.
// Removing the only node returns a nil tail.
func (n *Node[V]) PopBack() (*Node[V], V, error) {
	if n == nil {
		var zero V
		return nil, zero, linked.ErrEmpty
	}
	if n.next == n {
		return nil, n.Value, nil
	}
	prev := n.prev
	n.unlink()
	return prev, n.Value, nil
}

// Reverse reverses the ring in place and returns the new tail, which is the old head.
func (n *Node[V]) Reverse() *Node[V] {
	if n == nil {
		return nil
	}
	head := n.next
	p := n
	for {
		p.next, p.prev = p.prev, p.next
		if p = p.prev; p == n {
			return head
		}
	}
}

func (n *Node[V]) String() string {
	return fmt.Sprintf("%v <- %v -> %v", n.prev.Value, n.Value, n.next.Value)
}

// link inserts s after n.
func (n *Node[V]) link(s *Node[V]) {
	next := n.next
	n.next = s
	s.prev = n
	next.prev = s
	s.next = next
}

// unlink removes n from its ring and leaves it linked to itself.
func (n *Node[V]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = n
	n.prev = n
}
