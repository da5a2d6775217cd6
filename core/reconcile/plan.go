package reconcile

import (
	"context"
	"fmt"
	"time"
)

// Reconcile builds a snapshot, plans against it and applies the plan.
func Reconcile(ctx context.Context, src Source, store Store, userID uint, handle string, referenceTime time.Time, opts ApplyOptions) (*Plan, ApplyResult, error) {
	snap, err := BuildSnapshot(ctx, src, store, userID, handle)
	if err != nil {
		return nil, ApplyResult{}, err
	}

	plan := BuildPlan(snap, referenceTime)
	res, err := ApplyPlan(ctx, store, plan, opts)
	return plan, res, err
}

// ApplyPlan writes a plan through the store. Writes are independent and idempotent,
// so a failed apply can be retried by reconciling again.
func ApplyPlan(ctx context.Context, store Store, plan *Plan, opts ApplyOptions) (ApplyResult, error) {
	res := ApplyResult{DryRun: opts.DryRun}
	if opts.DryRun {
		res.Solved = len(plan.Transitions)
		res.Added = len(plan.Additions)
		return res, nil
	}

	solved, err := applyTransitions(ctx, store, plan.Transitions)
	res.Solved = solved
	if err != nil {
		return res, err
	}

	if len(plan.Additions) == 0 {
		return res, nil
	}

	contests := make(map[string]uint)
	slots := make(map[uint][]ContestProblem)
	var order []uint
	entries := make([]Entry, 0, len(plan.Additions))

	for _, add := range plan.Additions {
		key := add.ContestKey
		if key == "" {
			key = NormalizeContestName(add.ContestName)
		}

		contestID := add.InternalContestID
		if contestID == 0 {
			contestID = contests[key]
		}
		if contestID == 0 {
			c, created, err := store.FindOrCreateContest(ctx, plan.UserID, add.ContestName)
			if err != nil {
				return res, fmt.Errorf("failed to resolve contest %q: %w", add.ContestName, err)
			}
			if created {
				res.ContestsCreated++
			}
			contestID = c.ID
		}
		contests[key] = contestID

		if _, seen := slots[contestID]; !seen {
			order = append(order, contestID)
		}
		slots[contestID] = append(slots[contestID], ContestProblem{Order: add.ProblemIndex, Link: add.Link})
		entries = append(entries, Entry{
			UserID:       plan.UserID,
			ContestID:    contestID,
			ContestName:  add.ContestName,
			ProblemIndex: add.ProblemIndex,
			Status:       StatusPending,
		})
	}

	for _, id := range order {
		if err := store.AppendProblems(ctx, id, slots[id]); err != nil {
			return res, fmt.Errorf("failed to append problems to contest %d: %w", id, err)
		}
	}

	added, err := store.InsertEntries(ctx, entries)
	res.Added = added
	if err != nil {
		return res, fmt.Errorf("failed to insert queue entries: %w", err)
	}
	return res, nil
}

// applyTransitions closes entries in batches grouped by timestamp when the store
// supports it and one at a time otherwise.
func applyTransitions(ctx context.Context, store Store, transitions []Transition) (int, error) {
	if len(transitions) == 0 {
		return 0, nil
	}

	executed := 0
	if batcher, ok := store.(BatchSolver); ok {
		groups := make(map[time.Time][]uint)
		var stamps []time.Time
		for _, t := range transitions {
			if _, seen := groups[t.SolvedAt]; !seen {
				stamps = append(stamps, t.SolvedAt)
			}
			groups[t.SolvedAt] = append(groups[t.SolvedAt], t.EntryID)
		}
		for _, at := range stamps {
			if err := batcher.MarkSolvedBatch(ctx, groups[at], at); err != nil {
				return executed, fmt.Errorf("failed to batch close entries: %w", err)
			}
			executed += len(groups[at])
		}
		return executed, nil
	}

	for _, t := range transitions {
		if err := store.MarkSolved(ctx, t.EntryID, t.SolvedAt); err != nil {
			return executed, fmt.Errorf("failed to close entry %d: %w", t.EntryID, err)
		}
		executed++
	}
	return executed, nil
}
