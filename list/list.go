package list

import (
	"iter"

	"github.com/mgnsk/linked"
	"github.com/mgnsk/linked/internal/format"
)

// List is a singly linked list.
//
// The zero value is a ready to use empty list.
type List[V comparable] struct {
	head *Node[V]
	len  int
}

var _ linked.Sequence[int] = (*List[int])(nil)

// New creates a list holding the values of seq in order.
func New[V comparable](seq iter.Seq[V]) *List[V] {
	l := &List[V]{}
	var tail *Node[V]
	for v := range seq {
		n := &Node[V]{Value: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
		l.len++
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// NonEmpty reports whether the list has at least one element.
func (l *List[V]) NonEmpty() bool {
	return l.head != nil
}

// Front returns the first node of the list or nil.
func (l *List[V]) Front() *Node[V] {
	return l.head
}

// All returns a sequence of the list values in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return l.head.All()
}

// Contains reports whether value is in the list.
func (l *List[V]) Contains(value V) bool {
	return l.head.Contains(value)
}

// PushFront inserts a value at the front of the list.
func (l *List[V]) PushFront(value V) {
	l.head = l.head.PushFront(value)
	l.len++
}

// PopFront removes the front element and returns its value.
func (l *List[V]) PopFront() (V, error) {
	head, value, err := l.head.PopFront()
	if err != nil {
		return value, err
	}
	l.head = head
	l.len--
	return value, nil
}

// Reverse reverses the list in place.
func (l *List[V]) Reverse() {
	l.head = l.head.Reverse()
}

func (l *List[V]) String() string {
	return format.Seq("list.List", l.All())
}
