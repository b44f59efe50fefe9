// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "hemicycle",
		Short: "Hemicycle - roll-call vote network analysis",
		Long: `Hemicycle turns roll-call votes into a legislator similarity network
and ranks the pivots, piliers and leaders of each parliamentary group.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(rf.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", rf.logLevel, err)
			}
			rf.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Level:           level,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "hemicycle",
			})
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newAnalyzeCmd(rf))
	cmd.AddCommand(newMethodsCmd())

	return cmd
}

func (rf *rootFlags) log() *log.Logger {
	if rf.logger == nil {
		return log.New(os.Stderr)
	}
	return rf.logger
}
