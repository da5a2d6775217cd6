package reconcile

import (
	"context"
	"time"

	"upsolve-tracker/core/codeforces"
)

// Source is the judge side of a reconciliation. *codeforces.Client implements it.
type Source interface {
	RatingHistory(ctx context.Context, handle string) codeforces.Result[[]codeforces.RatingEvent]
	Submissions(ctx context.Context, handle string) codeforces.Result[[]codeforces.Submission]
	Contests(ctx context.Context) codeforces.Result[[]codeforces.Contest]
	Problems(ctx context.Context) codeforces.Result[[]codeforces.Problem]
}

// StoreReader loads the persisted side of a reconciliation.
type StoreReader interface {
	// EntriesByUser returns every queue entry of the user joined with its contest name.
	EntriesByUser(ctx context.Context, userID uint) ([]Entry, error)
	// ContestsByOwner returns the internal contests owned by the user.
	ContestsByOwner(ctx context.Context, ownerID uint) ([]InternalContest, error)
}

// Store is the persisted side ApplyPlan writes to.
type Store interface {
	StoreReader

	// MarkSolved moves one pending entry to Solved. Solved entries are left unchanged.
	MarkSolved(ctx context.Context, entryID uint, at time.Time) error
	// FindOrCreateContest returns the owner's contest matching the normalized name,
	// creating it with the given display name when missing.
	FindOrCreateContest(ctx context.Context, ownerID uint, name string) (InternalContest, bool, error)
	// AppendProblems adds problem slots whose order is not yet listed.
	AppendProblems(ctx context.Context, contestID uint, problems []ContestProblem) error
	// InsertEntries inserts pending entries and skips ones that already exist.
	// It returns the number of rows actually inserted.
	InsertEntries(ctx context.Context, entries []Entry) (int, error)
}

// BatchSolver is implemented by stores that can close many entries at once.
type BatchSolver interface {
	MarkSolvedBatch(ctx context.Context, entryIDs []uint, at time.Time) error
}
