// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"encoding/json"
	"fmt"
	"io"
)

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	Op Op  `json:"op"`
	// The item held by the element the step returned, if any.
	Result *Result `json:"result,omitempty"`
	// Absent is true if the step returned no element.
	Absent bool `json:"absent"`
	// Size and Empty describe the container after the step.
	Size  int  `json:"size"`
	Empty bool `json:"empty"`
	// The error message if the step failed.
	Error string `json:"error,omitempty"`
}

type Result struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Priority int64  `json:"priority"`
}

func newResponse(id int, op Op) *Response {
	return &Response{
		ID: id,
		Op: op,
	}
}

func (r *Response) setItem(item *Item) {
	r.Result = &Result{
		ID:       item.ID.String(),
		Label:    item.Label,
		Priority: item.Priority,
	}
}

func (r *Response) setError(err error) {
	r.Error = err.Error()
}

// Print writes [r] to [w] as a single line of JSON.
func (r *Response) Print(w io.Writer) error {
	jsonBytes, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

func (r *Require) check(step int, resp *Response) error {
	if r == nil {
		return nil
	}
	if r.Absent != nil && *r.Absent != resp.Absent {
		return fmt.Errorf("%w: step %d: expected absent=%t", ErrRequireFailed, step, *r.Absent)
	}
	if r.Label != nil {
		if resp.Result == nil {
			return fmt.Errorf("%w: step %d: expected label %q, got no element", ErrRequireFailed, step, *r.Label)
		}
		if resp.Result.Label != *r.Label {
			return fmt.Errorf("%w: step %d: expected label %q, got %q", ErrRequireFailed, step, *r.Label, resp.Result.Label)
		}
	}
	if r.Size != nil && *r.Size != resp.Size {
		return fmt.Errorf("%w: step %d: expected size %d, got %d", ErrRequireFailed, step, *r.Size, resp.Size)
	}
	if r.Empty != nil && *r.Empty != resp.Empty {
		return fmt.Errorf("%w: step %d: expected empty=%t", ErrRequireFailed, step, *r.Empty)
	}
	return nil
}
