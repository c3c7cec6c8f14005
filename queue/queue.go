// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"cmp"

	"github.com/ava-labs/dlist/list"
)

// Queue is a [list.List] that is only added to with [Queue.Enqueue] and only
// removed from with [Queue.Dequeue].
//
// A Queue created with a comparator is a priority queue: values with the
// lowest comparator value are dequeued first and values with equal priority
// are dequeued in the order they were enqueued.
type Queue[T comparable] struct {
	*list.List[T]
}

// New returns an empty FIFO queue.
func New[T comparable]() *Queue[T] {
	return NewPriority[T](nil)
}

// NewPriority returns an empty priority queue ordered by [compare]. A nil
// [compare] returns a FIFO queue.
func NewPriority[T comparable](compare list.Compare[T]) *Queue[T] {
	return &Queue[T]{
		List: list.New(compare),
	}
}

// NewOrdered returns an empty priority queue that dequeues the smallest value
// first.
func NewOrdered[T cmp.Ordered]() *Queue[T] {
	return NewPriority[T](cmp.Compare[T])
}

func (q *Queue[T]) Enqueue(v T) *list.Element[T] {
	if q == nil {
		return nil
	}
	if !q.Ordered() {
		return q.Append(v)
	}
	return q.Insert(v)
}

// Dequeue removes and returns the head of the queue or nil if the queue is
// empty.
func (q *Queue[T]) Dequeue() *list.Element[T] {
	if q == nil {
		return nil
	}
	return q.RemoveElement(q.First())
}

// Peek returns the value that the next call to [Queue.Dequeue] would return.
func (q *Queue[T]) Peek() (T, bool) {
	first := q.First()
	if first == nil {
		return *new(T), false
	}
	return first.Value(), true
}
