// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/utils/set"
	"gopkg.in/yaml.v2"
)

const refPrefix = "step_"

type Kind string

const (
	KindList          Kind = "list"
	KindQueue         Kind = "queue"
	KindPriorityQueue Kind = "priority_queue"
	KindStack         Kind = "stack"
)

type Order string

const (
	OrderNone Order = ""
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

type Op string

const (
	OpAppend        Op = "append"
	OpPrepend       Op = "prepend"
	OpInsert        Op = "insert"
	OpRemoveElement Op = "remove_element"
	OpRemoveIndex   Op = "remove_index"
	OpRemove        Op = "remove"
	OpGet           Op = "get"
	OpSize          Op = "size"
	OpIsEmpty       Op = "is_empty"
	OpEnqueue       Op = "enqueue"
	OpDequeue       Op = "dequeue"
	OpPush          Op = "push"
	OpPop           Op = "pop"
	OpPeek          Op = "peek"
)

var (
	// ops that link a new element and can therefore be referenced by later
	// steps
	creatingOps = set.Of(OpAppend, OpPrepend, OpInsert, OpEnqueue, OpPush)

	readOps = []Op{OpGet, OpSize, OpIsEmpty}

	allowedOps = map[Kind]set.Set[Op]{
		KindList: set.Of(append(
			readOps,
			OpAppend, OpPrepend, OpInsert, OpRemoveElement, OpRemoveIndex, OpRemove,
		)...),
		KindQueue:         set.Of(append(readOps, OpEnqueue, OpDequeue, OpPeek)...),
		KindPriorityQueue: set.Of(append(readOps, OpEnqueue, OpDequeue, OpPeek)...),
		KindStack:         set.Of(append(readOps, OpPush, OpPop, OpPeek)...),
	}
)

type Plan struct {
	// The name of the plan. Item ids are derived from it.
	Name string `json:"name" yaml:"name"`
	// A description of the plan.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// The container the plan drives.
	Kind Kind `json:"kind" yaml:"kind"`
	// How items are ordered by priority. Only lists and priority queues can
	// be ordered; priority queues must be.
	Order Order `json:"order,omitempty" yaml:"order,omitempty"`
	// Steps performed against the container, in order.
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Op          Op     `json:"op" yaml:"op"`
	// Label and Priority of the item created by this step.
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Priority int64  `json:"priority,omitempty" yaml:"priority,omitempty"`
	// Ref names the element created by an earlier step, as step_N.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
	// Index is the 1-based position used by get and remove_index.
	Index   int      `json:"index,omitempty" yaml:"index,omitempty"`
	Require *Require `json:"require,omitempty" yaml:"require,omitempty"`
}

// Require holds assertions checked after a step has run. Unset fields are
// not checked.
type Require struct {
	Label  *string `json:"label,omitempty" yaml:"label,omitempty"`
	Size   *int    `json:"size,omitempty" yaml:"size,omitempty"`
	Empty  *bool   `json:"empty,omitempty" yaml:"empty,omitempty"`
	Absent *bool   `json:"absent,omitempty" yaml:"absent,omitempty"`
}

// Verify checks that [p] can be run. It does not run it.
func (p *Plan) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: no steps found", ErrInvalidPlan)
	}

	ops, ok := allowedOps[p.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidKind, p.Kind)
	}

	switch p.Order {
	case OrderNone:
		if p.Kind == KindPriorityQueue {
			return fmt.Errorf("%w: %s requires an order", ErrInvalidOrder, p.Kind)
		}
	case OrderAsc, OrderDesc:
		if p.Kind != KindList && p.Kind != KindPriorityQueue {
			return fmt.Errorf("%w: %s cannot be ordered", ErrInvalidOrder, p.Kind)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrder, p.Order)
	}

	for i, step := range p.Steps {
		if !ops.Contains(step.Op) {
			return fmt.Errorf("%w %d: %w: %q not supported by %s", ErrInvalidStep, i, ErrInvalidOp, step.Op, p.Kind)
		}
		if step.Op == OpRemoveElement && step.Ref == "" {
			return fmt.Errorf("%w %d: %s requires a ref", ErrInvalidStep, i, step.Op)
		}
		if step.Ref == "" {
			continue
		}
		if step.Op != OpRemoveElement && step.Op != OpRemove {
			return fmt.Errorf("%w %d: %s does not take a ref", ErrInvalidStep, i, step.Op)
		}
		target, err := parseRef(step.Ref)
		if err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
		if target >= i || !creatingOps.Contains(p.Steps[target].Op) {
			return fmt.Errorf("%w %d: %w: %s does not name an earlier step that creates an element", ErrInvalidStep, i, ErrUnknownRef, step.Ref)
		}
	}
	return nil
}

func parseRef(ref string) (int, error) {
	n, ok := strings.CutPrefix(ref, refPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRef, ref)
	}
	i, err := strconv.Atoi(n)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRef, ref)
	}
	return i, nil
}

func refName(step int) string {
	return refPrefix + strconv.Itoa(step)
}

// Unmarshal parses a JSON or YAML encoded plan.
func Unmarshal(b []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(b):
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, err
		}
	case isYAML(b):
		if err := yaml.UnmarshalStrict(b, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidConfigFormat
	}
	return &p, nil
}

func isJSON(b []byte) bool {
	var js map[string]interface{}
	return json.Unmarshal(b, &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(b, &y) == nil
}
