package dringlist

import (
	"iter"

	"github.com/mgnsk/linked"
	"github.com/mgnsk/linked/internal/format"
)

// List is a doubly linked circular list.
// Only the tail is stored, the front element is the one after it.
//
// The zero value is a ready to use empty list.
type List[V comparable] struct {
	tail *Node[V]
	len  int
}

var (
	_ linked.Deque[int] = (*List[int])(nil)
	_ linked.Ring[int]  = (*List[int])(nil)
)

// New creates a list holding the values of seq in order.
func New[V comparable](seq iter.Seq[V]) *List[V] {
	l := &List[V]{}
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// NonEmpty reports whether the list has at least one element.
func (l *List[V]) NonEmpty() bool {
	return l.tail != nil
}

// Front returns the first node of the list or nil.
func (l *List[V]) Front() *Node[V] {
	if l.tail == nil {
		return nil
	}
	return l.tail.next
}

// Back returns the last node of the list or nil.
func (l *List[V]) Back() *Node[V] {
	return l.tail
}

// All returns a sequence of the list values in forward order.
// The lap ends at the tail node, so repeated values do not end it early.
func (l *List[V]) All() iter.Seq[V] {
	return l.tail.All()
}

// Backward returns a sequence of the list values in backward order.
func (l *List[V]) Backward() iter.Seq[V] {
	return l.tail.Backward()
}

// Cycle returns a sequence that repeats the list values forever.
// It yields nothing when the list is empty.
func (l *List[V]) Cycle() iter.Seq[V] {
	return l.tail.Cycle()
}

// Contains reports whether value is in the list.
func (l *List[V]) Contains(value V) bool {
	return l.tail.Contains(value)
}

// PushFront inserts a value at the front of the list.
func (l *List[V]) PushFront(value V) {
	l.tail = l.tail.PushFront(value)
	l.len++
}

// PushBack inserts a value at the back of the list.
func (l *List[V]) PushBack(value V) {
	l.tail = l.tail.PushBack(value)
	l.len++
}

// PopFront removes the front element and returns its value.
func (l *List[V]) PopFront() (V, error) {
	tail, value, err := l.tail.PopFront()
	if err != nil {
		return value, err
	}
	l.tail = tail
	l.len--
	return value, nil
}

// PopBack removes the back element and returns its value.
func (l *List[V]) PopBack() (V, error) {
	tail, value, err := l.tail.PopBack()
	if err != nil {
		return value, err
	}
	l.tail = tail
	l.len--
	return value, nil
}

// Reverse reverses the list in place.
func (l *List[V]) Reverse() {
	l.tail = l.tail.Reverse()
}

// Remove a node from the list. The node must belong to l.
func (l *List[V]) Remove(n *Node[V]) {
	if l.tail == nil {
		panic("dringlist: invalid node")
	}
	if n == l.tail {
		if l.len == 1 {
			l.tail = nil
		} else {
			l.tail = n.prev
		}
	}
	n.unlink()
	l.len--
}

// MoveAfter moves a node to its new position after mark.
// If mark == l.Back(), n becomes the new back node.
func (l *List[V]) MoveAfter(n, mark *Node[V]) {
	if n == mark {
		return
	}

	l.Remove(n)

	mark.link(n)
	l.len++

	if mark == l.tail {
		l.tail = n
	}
}

// MoveBefore moves a node to its new position before mark.
// If mark == l.Front(), n becomes the new front node.
func (l *List[V]) MoveBefore(n, mark *Node[V]) {
	if n == mark {
		return
	}

	l.Remove(n)

	mark.prev.link(n)
	l.len++
}

// MoveToFront moves the node to the front of list l.
func (l *List[V]) MoveToFront(n *Node[V]) {
	l.MoveBefore(n, l.Front())
}

// MoveToBack moves the node to the back of list l.
func (l *List[V]) MoveToBack(n *Node[V]) {
	l.MoveAfter(n, l.Back())
}

func (l *List[V]) String() string {
	return format.Seq("dringlist.List", l.All())
}
