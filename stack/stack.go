// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stack

import "github.com/ava-labs/dlist/list"

// Stack is an unordered [list.List] that is pushed to and popped from its
// tail.
type Stack[T comparable] struct {
	*list.List[T]
}

func New[T comparable]() *Stack[T] {
	return &Stack[T]{
		List: list.New[T](nil),
	}
}

func (s *Stack[T]) Push(v T) *list.Element[T] {
	if s == nil {
		return nil
	}
	return s.Append(v)
}

// Pop removes and returns the most recently pushed element or nil if the
// stack is empty.
func (s *Stack[T]) Pop() *list.Element[T] {
	if s == nil {
		return nil
	}
	return s.RemoveElement(s.Last())
}

// Peek returns the value that the next call to [Stack.Pop] would return.
func (s *Stack[T]) Peek() (T, bool) {
	last := s.Last()
	if last == nil {
		return *new(T), false
	}
	return last.Value(), true
}
