package cmd

import (
	"fmt"
	"os"

	"upsolve-tracker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "upsolve-tracker",
	Short: "Upsolve Tracker Service",
	Long: `Upsolve Tracker keeps a per-student queue of Codeforces problems to upsolve,
reconciled against each student's rating history and submission log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding and debug level give readable ISO8601 output for CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
