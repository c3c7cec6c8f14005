// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"errors"
	"fmt"
)

var (
	ErrSizeMismatch = errors.New("size mismatch")
	ErrBrokenLink   = errors.New("broken link")
	ErrBadTail      = errors.New("bad tail")
	ErrOutOfOrder   = errors.New("out of order")
)

// Verify walks [l] from head to tail and returns an error describing the
// first structural invariant that does not hold. If the list is ordered,
// Verify also checks that values are non-decreasing.
//
// Verify is O(n) and is meant for tests and debugging.
func (l *List[T]) Verify() error {
	if (l.size == 0) != (l.head == nil) || (l.size == 0) != (l.tail == nil) {
		return fmt.Errorf("%w: size=%d head=%t tail=%t", ErrSizeMismatch, l.size, l.head != nil, l.tail != nil)
	}
	if l.head != nil && l.head.prev != nil {
		return fmt.Errorf("%w: head has a predecessor", ErrBrokenLink)
	}

	var (
		count int
		prev  *Element[T]
	)
	for e := l.head; e != nil; e = e.next {
		count++
		if count > l.size {
			// Also catches cycles.
			return fmt.Errorf("%w: more than %d elements reachable", ErrSizeMismatch, l.size)
		}
		if e.list != l {
			return fmt.Errorf("%w: element %d belongs to another list", ErrBrokenLink, count)
		}
		if e.prev != prev {
			return fmt.Errorf("%w: element %d prev does not point at element %d", ErrBrokenLink, count, count-1)
		}
		if l.compare != nil && prev != nil && l.compare(prev.value, e.value) > 0 {
			return fmt.Errorf("%w: element %d orders before element %d", ErrOutOfOrder, count, count-1)
		}
		prev = e
	}
	if count != l.size {
		return fmt.Errorf("%w: size=%d reachable=%d", ErrSizeMismatch, l.size, count)
	}
	if prev != l.tail {
		return fmt.Errorf("%w: last reachable element is not the tail", ErrBadTail)
	}
	return nil
}
