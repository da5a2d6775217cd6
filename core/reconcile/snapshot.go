package reconcile

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BuildSnapshot loads the four judge datasets and the user's queue concurrently.
// Judge fetches never fail the snapshot; they come back as Unknown results.
// Only store errors are returned.
func BuildSnapshot(ctx context.Context, src Source, store StoreReader, userID uint, handle string) (*Snapshot, error) {
	snap := &Snapshot{UserID: userID, Handle: handle}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap.History = src.RatingHistory(gctx, handle)
		return nil
	})
	g.Go(func() error {
		snap.Submissions = src.Submissions(gctx, handle)
		return nil
	})
	g.Go(func() error {
		snap.Contests = src.Contests(gctx)
		return nil
	})
	g.Go(func() error {
		snap.Problems = src.Problems(gctx)
		return nil
	})
	g.Go(func() error {
		entries, err := store.EntriesByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load queue entries: %w", err)
		}
		snap.Entries = entries
		return nil
	})
	g.Go(func() error {
		contests, err := store.ContestsByOwner(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load contests: %w", err)
		}
		snap.InternalContests = contests
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
