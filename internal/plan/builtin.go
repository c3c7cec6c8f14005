// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"embed"
	"fmt"
	"path"
)

const builtinDir = "plans"

//go:embed plans/*.yaml
var builtin embed.FS

// Builtin returns the plans shipped with dlist sorted by file name.
func Builtin() ([]*Plan, error) {
	entries, err := builtin.ReadDir(builtinDir)
	if err != nil {
		return nil, err
	}
	plans := make([]*Plan, 0, len(entries))
	for _, entry := range entries {
		b, err := builtin.ReadFile(path.Join(builtinDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		p, err := Unmarshal(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}
