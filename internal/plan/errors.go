// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import "errors"

var (
	ErrInvalidConfigFormat = errors.New("invalid config format")
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrInvalidKind         = errors.New("invalid container kind")
	ErrInvalidOrder        = errors.New("invalid order")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidOp           = errors.New("invalid op")
	ErrUnknownRef          = errors.New("unknown ref")
	ErrRequireFailed       = errors.New("require failed")
	ErrCorruptContainer    = errors.New("corrupt container")
)
