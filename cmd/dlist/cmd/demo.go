// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/dlist/internal/plan"
	"github.com/ava-labs/dlist/utils"
)

func newDemoCmd(d *dlist) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in plans and summarize what each container returned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plans, err := plan.Builtin()
			if err != nil {
				return err
			}
			runner, err := plan.NewRunner(d.log, d.verify)
			if err != nil {
				return err
			}
			for _, p := range plans {
				responses, err := runner.Run(cmd.Context(), p)
				if err != nil {
					d.log.Error("plan failed",
						zap.String("name", p.Name),
						zap.Error(err),
					)
					return err
				}
				utils.Outf("{{green}}%s{{/}} {{light-gray}}(%s){{/}}\n", p.Name, p.Description)
				utils.Outf("  %s\n", summarize(responses))
			}
			if d.metrics {
				return printMetrics(cmd.OutOrStdout(), runner.Registry())
			}
			return nil
		},
	}
}

// summarize renders the removals of a plan, e.g. "dequeue A, pop <none>".
func summarize(responses []*plan.Response) string {
	parts := make([]string, 0, len(responses))
	for _, resp := range responses {
		switch resp.Op {
		case plan.OpDequeue, plan.OpPop, plan.OpRemove, plan.OpRemoveElement, plan.OpRemoveIndex:
		default:
			continue
		}
		label := "<none>"
		if resp.Result != nil {
			label = resp.Result.Label
		}
		parts = append(parts, string(resp.Op)+" "+label)
	}
	return strings.Join(parts, ", ")
}
