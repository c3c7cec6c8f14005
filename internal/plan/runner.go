// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/dlist/list"
	"github.com/ava-labs/dlist/queue"
	"github.com/ava-labs/dlist/stack"
)

// container holds the view a plan drives. [list] always points at the
// underlying list, [queue] and [stack] are set for their kinds only.
type container struct {
	list  *list.List[*Item]
	queue *queue.Queue[*Item]
	stack *stack.Stack[*Item]
}

func newContainer(kind Kind, order Order) *container {
	switch kind {
	case KindQueue:
		q := queue.New[*Item]()
		return &container{list: q.List, queue: q}
	case KindPriorityQueue:
		q := queue.NewPriority(order.comparator())
		return &container{list: q.List, queue: q}
	case KindStack:
		s := stack.New[*Item]()
		return &container{list: s.List, stack: s}
	default:
		return &container{list: list.New(order.comparator())}
	}
}

// Runner runs plans. A Runner is not safe for concurrent use.
type Runner struct {
	log    logging.Logger
	verify bool

	registry *prometheus.Registry
	metrics  *metrics
}

// NewRunner returns a runner that logs to [log]. If [verify] is true the
// container invariants are checked after every step.
func NewRunner(log logging.Logger, verify bool) (*Runner, error) {
	r, m, err := newMetrics()
	if err != nil {
		return nil, err
	}
	return &Runner{
		log:      log,
		verify:   verify,
		registry: r,
		metrics:  m,
	}, nil
}

// Registry returns the registry holding the metrics of every plan run by r.
func (r *Runner) Registry() *prometheus.Registry {
	return r.registry
}

// Run verifies and runs [p] against a new container. It returns a response
// for every step run. If a step fails its requirements, Run stops and
// returns the responses so far together with the error.
func (r *Runner) Run(ctx context.Context, p *Plan) ([]*Response, error) {
	if err := p.Verify(); err != nil {
		return nil, err
	}

	r.log.Info("running plan",
		zap.String("name", p.Name),
		zap.String("description", p.Description),
		zap.String("kind", string(p.Kind)),
		zap.String("order", string(p.Order)),
		zap.Int("steps", len(p.Steps)),
	)

	var (
		c         = newContainer(p.Kind, p.Order)
		refs      = make(map[string]*list.Element[*Item])
		responses = make([]*Response, 0, len(p.Steps))
	)
	for i, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return responses, err
		}

		r.log.Debug("running step",
			zap.Int("step", i),
			zap.String("description", step.Description),
			zap.String("op", string(step.Op)),
			zap.String("label", step.Label),
			zap.Int64("priority", step.Priority),
			zap.String("ref", step.Ref),
			zap.Int("index", step.Index),
		)

		start := time.Now()
		resp := r.runStep(p, i, &step, c, refs)
		r.metrics.observe(step.Op, resp.Absent, resp.Size, time.Since(start).Seconds())
		responses = append(responses, resp)

		if resp.Absent {
			r.log.Debug("no element",
				zap.Int("step", i),
				zap.String("op", string(step.Op)),
			)
		}

		if r.verify {
			if err := c.list.Verify(); err != nil {
				r.log.Error("container invariant broken",
					zap.Int("step", i),
					zap.Error(err),
				)
				err = fmt.Errorf("%w: step %d: %w", ErrCorruptContainer, i, err)
				resp.setError(err)
				return responses, err
			}
		}

		if err := step.Require.check(i, resp); err != nil {
			resp.setError(err)
			return responses, err
		}
	}

	r.log.Info("plan finished",
		zap.String("name", p.Name),
		zap.Int("size", c.list.Size()),
	)
	return responses, nil
}

func (r *Runner) runStep(
	p *Plan,
	i int,
	step *Step,
	c *container,
	refs map[string]*list.Element[*Item],
) *Response {
	resp := newResponse(i, step.Op)
	defer func() {
		resp.Size = c.list.Size()
		resp.Empty = c.list.IsEmpty()
	}()

	var e *list.Element[*Item]
	switch step.Op {
	case OpAppend:
		e = c.list.Append(newItem(p.Name, i, step.Label, step.Priority))
	case OpPrepend:
		e = c.list.Prepend(newItem(p.Name, i, step.Label, step.Priority))
	case OpInsert:
		e = c.list.Insert(newItem(p.Name, i, step.Label, step.Priority))
	case OpEnqueue:
		e = c.queue.Enqueue(newItem(p.Name, i, step.Label, step.Priority))
	case OpPush:
		e = c.stack.Push(newItem(p.Name, i, step.Label, step.Priority))
	case OpRemoveElement:
		e = c.list.RemoveElement(refs[step.Ref])
	case OpRemove:
		if step.Ref == "" {
			e = c.list.Remove(newItem(p.Name, i, step.Label, step.Priority))
			break
		}
		// remove by identity
		if ref, ok := refs[step.Ref]; ok {
			e = c.list.Remove(ref.Value())
		}
	case OpRemoveIndex:
		e = c.list.RemoveIndex(step.Index)
	case OpGet:
		e = c.list.Get(step.Index)
	case OpDequeue:
		e = c.queue.Dequeue()
	case OpPop:
		e = c.stack.Pop()
	case OpPeek:
		var (
			v  *Item
			ok bool
		)
		if c.queue != nil {
			v, ok = c.queue.Peek()
		} else {
			v, ok = c.stack.Peek()
		}
		if !ok {
			resp.Absent = true
			return resp
		}
		resp.setItem(v)
		return resp
	case OpSize, OpIsEmpty:
		return resp
	}

	if e == nil {
		resp.Absent = true
		return resp
	}
	if creatingOps.Contains(step.Op) {
		refs[refName(i)] = e
	}
	resp.setItem(e.Value())
	return resp
}
