// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestToID(t *testing.T) {
	require := require.New(t)

	a := ToID([]byte("queue/0/A"))
	require.NotEqual(ids.Empty, a)
	require.Equal(a, ToID([]byte("queue/0/A")))
	require.NotEqual(a, ToID([]byte("queue/1/A")))
}
