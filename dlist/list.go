package dlist

import (
	"iter"

	"github.com/mgnsk/linked"
	"github.com/mgnsk/linked/internal/format"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V comparable] struct {
	head, tail *Node[V]
	len        int
}

var _ linked.Deque[int] = (*List[int])(nil)

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
	return l.head != nil
}

// Front returns the first node of the list or nil.
func (l *List[V]) Front() *Node[V] {
	return l.head
}

// Back returns the last node of the list or nil.
func (l *List[V]) Back() *Node[V] {
	return l.tail
}

// All returns a sequence of the list values in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return l.head.All()
}

// Backward returns a sequence of the list values in backward order.
func (l *List[V]) Backward() iter.Seq[V] {
	return l.tail.Backward()
}

// Contains reports whether value is in the list.
func (l *List[V]) Contains(value V) bool {
	return l.head.Contains(value)
}

// PushFront inserts a value at the front of the list.
func (l *List[V]) PushFront(value V) {
	l.head = l.head.PushFront(value)
	if l.tail == nil {
		l.tail = l.head
	}
	l.len++
}

// PushBack inserts a value at the back of the list.
func (l *List[V]) PushBack(value V) {
	l.tail = l.tail.PushBack(value)
	if l.head == nil {
		l.head = l.tail
	}
	l.len++
}

// PopFront removes the front element and returns its value.
func (l *List[V]) PopFront() (V, error) {
	head, value, err := l.head.PopFront()
	if err != nil {
		return value, err
	}
	l.head = head
	if head == nil {
		l.tail = nil
	}
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
	if tail == nil {
		l.head = nil
	}
	l.len--
	return value, nil
}

// Reverse reverses the list in place.
func (l *List[V]) Reverse() {
	l.tail = l.head
	l.head = l.head.Reverse()
}

func (l *List[V]) String() string {
	return format.Seq("dlist.List", l.All())
}
