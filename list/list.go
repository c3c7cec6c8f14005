// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"cmp"
	"reflect"
)

// Compare orders two values. It returns a negative number when a orders
// before b, zero when they are equal and a positive number otherwise.
type Compare[T any] func(a, b T) int

// List implements a doubly-linked list that can optionally keep its
// values sorted by a [Compare] function supplied at construction.
//
// The list owns the [Element]s it links but never the values they hold.
// Removing an element detaches it and hands it back to the caller.
//
// Invalid arguments (nil list, absent value, missing comparator, index out of
// range, no match) never panic and never mutate the list: the operation
// returns nil and it is up to the caller to interpret that.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type List[T comparable] struct {
	head *Element[T]
	tail *Element[T]
	size int

	compare Compare[T]
}

type Element[T comparable] struct {
	prev *Element[T]
	next *Element[T]
	list *List[T]

	value T
}

// New returns an empty list. If [compare] is nil the list is unordered and
// [List.Insert] always fails.
func New[T comparable](compare Compare[T]) *List[T] {
	return &List[T]{compare: compare}
}

// NewOrdered returns an empty list sorted in ascending order.
func NewOrdered[T cmp.Ordered]() *List[T] {
	return New[T](cmp.Compare[T])
}

func (e *Element[T]) Next() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.next
}

func (e *Element[T]) Prev() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.prev
}

func (e *Element[T]) Value() T {
	return e.value
}

func (l *List[T]) First() *Element[T] {
	return l.head
}

func (l *List[T]) Last() *Element[T] {
	return l.tail
}

func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Ordered returns true if the list was created with a comparator.
func (l *List[T]) Ordered() bool {
	return l.compare != nil
}

// Compare returns the comparator the list was created with, or nil.
func (l *List[T]) Compare() Compare[T] {
	return l.compare
}

// Append adds [v] after the current tail. The comparator is not consulted.
func (l *List[T]) Append(v T) *Element[T] {
	if l == nil || absent(v) {
		return nil
	}
	return l.insertAfter(&Element[T]{value: v}, l.tail)
}

// Prepend adds [v] before the current head. The comparator is not consulted.
func (l *List[T]) Prepend(v T) *Element[T] {
	if l == nil || absent(v) {
		return nil
	}
	return l.insertAfter(&Element[T]{value: v}, nil)
}

// Insert adds [v] after every element that compares less than or equal to
// it and before the first element that compares greater. Values with equal
// keys therefore keep their insertion order.
//
// Insert returns nil if the list has no comparator.
func (l *List[T]) Insert(v T) *Element[T] {
	if l == nil || absent(v) || l.compare == nil {
		return nil
	}
	if l.size == 0 || l.compare(v, l.head.value) < 0 {
		return l.Prepend(v)
	}

	at := l.head
	for at.next != nil && l.compare(v, at.next.value) >= 0 {
		at = at.next
	}
	return l.insertAfter(&Element[T]{value: v}, at)
}

// RemoveElement unlinks [e] from the list and returns it. The returned
// element no longer belongs to any list.
//
// Returns nil if [e] is nil or does not belong to [l].
func (l *List[T]) RemoveElement(e *Element[T]) *Element[T] {
	if l == nil || e == nil || e.list != l {
		return nil
	}
	l.remove(e)
	return e
}

// RemoveIndex removes the element at the 1-based position [idx]. Valid
// positions are [1, Size()].
func (l *List[T]) RemoveIndex(idx int) *Element[T] {
	if l == nil {
		return nil
	}
	return l.RemoveElement(l.Get(idx))
}

// Get returns the element at the 1-based position [idx] or nil if [idx] is
// out of range. The search starts from whichever end of the list is closer.
func (l *List[T]) Get(idx int) *Element[T] {
	if l == nil || idx < 1 || idx > l.size {
		return nil
	}

	if idx-1 <= l.size-idx {
		e := l.head
		for i := 1; i < idx; i++ {
			e = e.next
		}
		return e
	}
	e := l.tail
	for i := l.size; i > idx; i-- {
		e = e.prev
	}
	return e
}

// Remove removes the first element holding [v]. An element matches if its
// value is identical to [v] or, when the list has a comparator, compares
// equal to [v]. A [v] whose dynamic type cannot be compared with == only
// matches through the comparator.
func (l *List[T]) Remove(v T) *Element[T] {
	if l == nil || absent(v) {
		return nil
	}
	identical := equatable(v)
	for e := l.head; e != nil; e = e.next {
		if (identical && e.value == v) || (l.compare != nil && l.compare(v, e.value) == 0) {
			return l.RemoveElement(e)
		}
	}
	return nil
}

// insertAfter links [e] after [at]. A nil [at] links [e] as the new head.
func (l *List[T]) insertAfter(e *Element[T], at *Element[T]) *Element[T] {
	e.prev = at
	if at == nil {
		e.next = l.head
		l.head = e
	} else {
		e.next = at.next
		at.next = e
	}
	if e.next == nil {
		l.tail = e
	} else {
		e.next.prev = e
	}
	e.list = l
	l.size++
	return e
}

func (l *List[T]) remove(e *Element[T]) {
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.next = nil
	e.prev = nil
	e.list = nil
	l.size--
}

// equatable reports whether == on [v] cannot panic. Only interface values
// holding slices, maps or funcs fail this.
func equatable[T comparable](v T) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.Comparable()
}

// absent reports whether [v] is a nil reference. Non-reference values are
// never absent.
func absent[T comparable](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		// nil interface
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
