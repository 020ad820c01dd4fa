package ringlist

import (
	"iter"

	"github.com/mgnsk/linked"
	"github.com/mgnsk/linked/internal/format"
)

// List is a singly linked circular list.
// Only the tail is stored, the front element is the one after it.
//
// The zero value is a ready to use empty list.
type List[V comparable] struct {
	tail *Node[V]
	len  int
}

var _ linked.Ring[int] = (*List[int])(nil)

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
	if l.tail == nil {
		l.tail = NewNode(value)
	} else {
		l.tail = l.tail.PushFront(value).next
	}
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

// Reverse reverses the list in place.
func (l *List[V]) Reverse() {
	l.tail = l.tail.Reverse()
}

func (l *List[V]) String() string {
	return format.Seq("ringlist.List", l.All())
}
