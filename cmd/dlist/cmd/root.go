// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const loggerName = "dlist"

type dlist struct {
	logLevel string
	logDir   string
	verify   bool
	metrics  bool

	newLog func(name string, config logConfig) logging.Logger
	log    logging.Logger
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&dlist{
		newLog: newLogger,
		log:    logging.NoLog{},
	})
}

func newRootCmd(d *dlist) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dlist",
		Short: "Run plans against linked-list backed queues, stacks and priority queues",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return d.Init(cmd)
		},
	}

	cobra.EnablePrefixMatching = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.PersistentFlags().StringVar(&d.logLevel, "log-level", "info", "log level")
	cmd.PersistentFlags().StringVar(&d.logDir, "log-dir", "", "directory for rotated JSON logs (disabled if empty)")
	cmd.PersistentFlags().BoolVar(&d.verify, "verify", false, "check container invariants after every step")
	cmd.PersistentFlags().BoolVar(&d.metrics, "metrics", false, "print metrics after running")

	cmd.AddCommand(
		newRunCmd(d),
		newDemoCmd(d),
	)

	// runs even if a subcommand fails
	cobra.OnFinalize(func() {
		d.log.Stop()
	})
	return cmd
}

func (d *dlist) Init(cmd *cobra.Command) error {
	level, err := logging.ToLevel(d.logLevel)
	if err != nil {
		return err
	}
	d.log = d.newLog(loggerName, logConfig{
		level:   level,
		dir:     d.logDir,
		console: cmd.ErrOrStderr(),
	})
	d.log.Debug("dlist initialized",
		zap.String("log-level", d.logLevel),
		zap.String("log-dir", d.logDir),
		zap.Bool("verify", d.verify),
	)
	return nil
}
