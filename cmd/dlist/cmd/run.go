// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/ava-labs/dlist/internal/plan"
)

func newRunCmd(d *dlist) *cobra.Command {
	return &cobra.Command{
		Use:   "run [path]",
		Short: "Run a plan read from [path], or from stdin if [path] is -",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPlan(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return d.run(cmd.Context(), cmd.OutOrStdout(), p)
		},
	}
}

func readPlan(path string, stdin io.Reader) (*plan.Plan, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return plan.Unmarshal(b)
}

// run prints one JSON line per step of [p] to [w].
func (d *dlist) run(ctx context.Context, w io.Writer, p *plan.Plan) error {
	runner, err := plan.NewRunner(d.log, d.verify)
	if err != nil {
		return err
	}
	responses, runErr := runner.Run(ctx, p)
	for _, resp := range responses {
		if err := resp.Print(w); err != nil {
			return err
		}
	}
	if d.metrics {
		if err := printMetrics(w, runner.Registry()); err != nil {
			return err
		}
	}
	return runErr
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
