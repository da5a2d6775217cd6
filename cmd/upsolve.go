package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"upsolve-tracker/core/reconcile"
	"upsolve-tracker/feature/students"
	"upsolve-tracker/feature/upsolve"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	upsolveStudent uint
	upsolveDryRun  bool
	yesConfirm     bool
)

// upsolveCmd runs a bulk reconciliation for one student.
var upsolveCmd = &cobra.Command{
	Use:   "upsolve",
	Short: "Reconcile one student's upsolve queue (report + optionally apply)",
	Long: `Reconcile a student's upsolve queue against their Codeforces rating history.

Prints the planned transitions and additions, then applies them after confirmation.

Examples:
  # Report only
  upsolve --student 7 --dry-run

  # Apply with interactive confirmation
  upsolve --student 7

  # Apply with auto-confirm (non-interactive)
  upsolve --student 7 --yes`,
	RunE: runUpsolve,
}

func init() {
	upsolveCmd.Flags().UintVar(&upsolveStudent, "student", 0, "Student ID to reconcile")
	upsolveCmd.Flags().BoolVar(&upsolveDryRun, "dry-run", false, "Compute and print the plan without writing")
	upsolveCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")
	_ = upsolveCmd.MarkFlagRequired("student")

	RootCmd.AddCommand(upsolveCmd)
}

func runUpsolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	l := rt.log

	db, err := rt.connect()
	if err != nil {
		return err
	}

	svc := upsolve.NewService(upsolve.NewStore(db), rt.judge, students.NewService(db, l), rt.clock, l)

	l.Info("Planning reconciliation...", zap.Uint("student_id", upsolveStudent))
	plan, _, err := svc.Reconcile(ctx, upsolveStudent, true)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	printUpsolveReport(l, plan)

	if upsolveDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if plan.Empty() {
		l.Info("Queue already up to date.")
		return nil
	}
	if !confirmAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Applying plan...")
	_, res, err := svc.Reconcile(ctx, upsolveStudent, false)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("Reconciliation applied",
		zap.Int("solved", res.Solved),
		zap.Int("added", res.Added),
		zap.Int("contests_created", res.ContestsCreated),
	)
	return nil
}

// printUpsolveReport prints a formatted reconciliation report using logger.
func printUpsolveReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("contests_in_history", s.ContestsInHistory),
		zap.Int("completed", s.CompletedCount),
		zap.Int("pending", s.PendingCount),
		zap.Int("skipped", s.Skipped),
		zap.Int("transitions", len(plan.Transitions)),
		zap.Int("additions", len(plan.Additions)),
	)
	if s.Degraded {
		l.Warn("Judge data incomplete, garbage collection skipped", zap.Strings("unknown", s.Unknown))
	}

	const maxShow = 5
	for i, t := range plan.Transitions {
		if i == maxShow {
			l.Info("Additional transitions not shown", zap.Int("count", len(plan.Transitions)-maxShow))
			break
		}
		l.Info("Close",
			zap.String("contest", t.ContestName),
			zap.String("problem", t.ProblemIndex),
			zap.String("reason", string(t.Reason)),
			zap.Time("solved_at", t.SolvedAt),
		)
	}
	for i, a := range plan.Additions {
		if i == maxShow {
			l.Info("Additional additions not shown", zap.Int("count", len(plan.Additions)-maxShow))
			break
		}
		l.Info("Queue",
			zap.String("contest", a.ContestName),
			zap.String("problem", a.ProblemIndex),
			zap.String("link", a.Link),
		)
	}
}

// confirmAction prompts the user for confirmation or uses --yes flag.
func confirmAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to apply: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
