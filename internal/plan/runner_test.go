// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) *Runner {
	r, err := NewRunner(logging.NoLog{}, true)
	require.NoError(t, err)
	return r
}

func labels(responses []*Response) []string {
	out := make([]string, 0, len(responses))
	for _, resp := range responses {
		if resp.Result == nil {
			out = append(out, "")
			continue
		}
		out = append(out, resp.Result.Label)
	}
	return out
}

func TestRunBuiltin(t *testing.T) {
	plans, err := Builtin()
	require.NoError(t, err)

	for _, p := range plans {
		t.Run(p.Name, func(t *testing.T) {
			require := require.New(t)
			r := newTestRunner(t)

			responses, err := r.Run(context.Background(), p)
			require.NoError(err)
			require.Len(responses, len(p.Steps))
			for _, resp := range responses {
				require.Empty(resp.Error)
			}
		})
	}
}

func TestRunQueue(t *testing.T) {
	require := require.New(t)
	r := newTestRunner(t)

	p := &Plan{
		Name: "fifo",
		Kind: KindQueue,
		Steps: []Step{
			{Op: OpEnqueue, Label: "A"},
			{Op: OpEnqueue, Label: "B"},
			{Op: OpEnqueue, Label: "C"},
			{Op: OpDequeue},
			{Op: OpDequeue},
			{Op: OpDequeue},
			{Op: OpDequeue},
		},
	}
	responses, err := r.Run(context.Background(), p)
	require.NoError(err)
	require.Equal([]string{"A", "B", "C", "A", "B", "C", ""}, labels(responses))
	require.True(responses[6].Absent)
	require.True(responses[6].Empty)
	require.Equal(2, responses[3].Size)
}

func TestRunPriorityQueueDescending(t *testing.T) {
	require := require.New(t)
	r := newTestRunner(t)

	p := &Plan{
		Name:  "max",
		Kind:  KindPriorityQueue,
		Order: OrderDesc,
		Steps: []Step{
			{Op: OpEnqueue, Label: "low", Priority: 1},
			{Op: OpEnqueue, Label: "high-a", Priority: 9},
			{Op: OpEnqueue, Label: "high-b", Priority: 9},
			{Op: OpEnqueue, Label: "mid", Priority: 5},
			{Op: OpDequeue},
			{Op: OpDequeue},
			{Op: OpDequeue},
			{Op: OpDequeue},
		},
	}
	responses, err := r.Run(context.Background(), p)
	require.NoError(err)
	require.Equal([]string{"high-a", "high-b", "mid", "low"}, labels(responses[4:]))
}

func TestRunOrderedList(t *testing.T) {
	require := require.New(t)
	r := newTestRunner(t)

	p := &Plan{
		Name:  "sorted",
		Kind:  KindList,
		Order: OrderAsc,
		Steps: []Step{
			{Op: OpInsert, Label: "b", Priority: 2},
			{Op: OpInsert, Label: "a", Priority: 1},
			{Op: OpInsert, Label: "c", Priority: 3},
			{Op: OpGet, Index: 2},
			// matches "b" by priority
			{Op: OpRemove, Label: "probe", Priority: 2},
			{Op: OpRemoveIndex, Index: 5},
			{Op: OpSize},
		},
	}
	responses, err := r.Run(context.Background(), p)
	require.NoError(err)
	require.Equal("b", responses[3].Result.Label)
	require.Equal("b", responses[4].Result.Label)
	require.True(responses[5].Absent)
	require.Equal(2, responses[6].Size)
	require.False(responses[6].Absent)
}

func TestRunInsertUnordered(t *testing.T) {
	require := require.New(t)
	r := newTestRunner(t)

	p := &Plan{
		Name: "unordered",
		Kind: KindList,
		Steps: []Step{
			{Op: OpInsert, Label: "a"},
			{Op: OpRemoveElement, Ref: "step_0"},
			{Op: OpIsEmpty},
		},
	}
	responses, err := r.Run(context.Background(), p)
	require.NoError(err)
	require.True(responses[0].Absent)
	require.True(responses[1].Absent)
	require.True(responses[2].Empty)
}

func TestRunRequireFailed(t *testing.T) {
	require := require.New(t)
	r := newTestRunner(t)

	wrong := "B"
	p := &Plan{
		Name: "stack",
		Kind: KindStack,
		Steps: []Step{
			{Op: OpPush, Label: "A"},
			{Op: OpPush, Label: "C"},
			{Op: OpPop, Require: &Require{Label: &wrong}},
			{Op: OpPop},
		},
	}
	responses, err := r.Run(context.Background(), p)
	require.ErrorIs(err, ErrRequireFailed)
	require.Len(responses, 3)
	require.NotEmpty(responses[2].Error)
}

func TestRunInvalidPlan(t *testing.T) {
	require := require.New(t)
	r := newTestRunner(t)

	responses, err := r.Run(context.Background(), &Plan{Kind: KindStack})
	require.ErrorIs(err, ErrInvalidPlan)
	require.Nil(responses)
}

func TestRunCanceled(t *testing.T) {
	require := require.New(t)
	r := newTestRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	responses, err := r.Run(ctx, &Plan{Kind: KindQueue, Steps: []Step{{Op: OpDequeue}}})
	require.ErrorIs(err, context.Canceled)
	require.Empty(responses)
}

func TestRunMetrics(t *testing.T) {
	require := require.New(t)
	r := newTestRunner(t)

	p := &Plan{
		Name: "metrics",
		Kind: KindStack,
		Steps: []Step{
			{Op: OpPush, Label: "a"},
			{Op: OpPush, Label: "b"},
			{Op: OpPop},
			{Op: OpPop},
			{Op: OpPop},
			{Op: OpPush, Label: "c"},
		},
	}
	_, err := r.Run(context.Background(), p)
	require.NoError(err)

	require.Equal(3.0, testutil.ToFloat64(r.metrics.ops.WithLabelValues(string(OpPush))))
	require.Equal(3.0, testutil.ToFloat64(r.metrics.ops.WithLabelValues(string(OpPop))))
	require.Equal(1.0, testutil.ToFloat64(r.metrics.absent.WithLabelValues(string(OpPop))))
	require.Equal(1.0, testutil.ToFloat64(r.metrics.size))

	families, err := r.Registry().Gather()
	require.NoError(err)
	require.NotEmpty(families)
}

func TestResponsePrint(t *testing.T) {
	require := require.New(t)

	resp := newResponse(3, OpDequeue)
	resp.setItem(newItem("p", 0, "A", 7))
	resp.Size = 2

	var buf bytes.Buffer
	require.NoError(resp.Print(&buf))

	var decoded Response
	require.NoError(json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(3, decoded.ID)
	require.Equal(OpDequeue, decoded.Op)
	require.Equal("A", decoded.Result.Label)
	require.Equal(int64(7), decoded.Result.Priority)
	require.Equal(resp.Result.ID, decoded.Result.ID)
	require.False(decoded.Absent)
}
