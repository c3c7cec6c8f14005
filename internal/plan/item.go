// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"cmp"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/dlist/list"
	"github.com/ava-labs/dlist/utils"
)

// Item is the payload stored by the containers a plan drives. Items are
// always handled by pointer so removal by value without a comparator matches
// by identity.
type Item struct {
	ID       ids.ID
	Label    string
	Priority int64
}

func newItem(planName string, step int, label string, priority int64) *Item {
	return &Item{
		ID:       utils.ToID([]byte(fmt.Sprintf("%s/%d/%s", planName, step, label))),
		Label:    label,
		Priority: priority,
	}
}

func ascending(a, b *Item) int {
	return cmp.Compare(a.Priority, b.Priority)
}

func descending(a, b *Item) int {
	return cmp.Compare(b.Priority, a.Priority)
}

// comparator returns nil for [OrderNone].
func (o Order) comparator() list.Compare[*Item] {
	switch o {
	case OrderAsc:
		return ascending
	case OrderDesc:
		return descending
	default:
		return nil
	}
}
