package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"upsolve-tracker/feature/analysis"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeJSON bool

// analyzeCmd prints the upsolve analysis of a handle.
var analyzeCmd = &cobra.Command{
	Use:   "analyze HANDLE",
	Short: "Analyze how a Codeforces handle upsolves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		l := rt.log

		report, err := analysis.NewService(rt.judge, l).Analyze(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to analyze %s: %w", args[0], err)
		}

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		l.Info("Analysis",
			zap.String("handle", report.Handle),
			zap.Int("contests", report.Summary.TotalContests),
			zap.Int("solved_during", report.Summary.TotalSolvedDuring),
			zap.Int("upsolved", report.Summary.TotalUpsolved),
		)
		for _, st := range report.ContestStats {
			l.Info("Contest",
				zap.String("name", st.ContestName),
				zap.Int("during", st.SolvedDuring),
				zap.Int("after", st.SolvedAfter),
			)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
	RootCmd.AddCommand(analyzeCmd)
}
