package reconcile

import (
	"time"

	"upsolve-tracker/core/codeforces"
)

// Status is the lifecycle state of a queue entry. Pending -> Solved only.
type Status string

const (
	StatusPending Status = "Pending"
	StatusSolved  Status = "Solved"
)

// Entry is a persisted queue entry joined with its contest's name.
type Entry struct {
	ID           uint
	UserID       uint
	ContestID    uint
	ContestName  string
	ProblemIndex string
	Status       Status
	SolvedAt     *time.Time
}

// Pending reports whether the entry is still open.
func (e Entry) Pending() bool {
	return e.Status == StatusPending
}

// ContestProblem is one problem slot of an internal contest.
type ContestProblem struct {
	Order string `json:"order"`
	Link  string `json:"link"`
}

// InternalContest is the locally owned mirror of a judge contest.
type InternalContest struct {
	ID       uint             `json:"id"`
	Name     string           `json:"contestName"`
	OwnerID  uint             `json:"ownerId"`
	Problems []ContestProblem `json:"problems"`
}

// HasProblem reports whether the contest already lists the given index.
func (c InternalContest) HasProblem(index string) bool {
	for _, p := range c.Problems {
		if p.Order == index {
			return true
		}
	}
	return false
}

// Snapshot is everything a reconciliation run reads, fetched up front.
type Snapshot struct {
	UserID uint
	Handle string

	History     codeforces.Result[[]codeforces.RatingEvent]
	Submissions codeforces.Result[[]codeforces.Submission]
	Contests    codeforces.Result[[]codeforces.Contest]
	Problems    codeforces.Result[[]codeforces.Problem]

	// Entries are all of the user's queue entries, any status.
	Entries []Entry
	// InternalContests are the contests owned by the user.
	InternalContests []InternalContest
}

// Reason explains why an entry is closed.
type Reason string

const (
	// ReasonCompleted: the last accepted submission came after the contest window.
	ReasonCompleted Reason = "completed"
	// ReasonSuperseded: the entry is not the contest's current target.
	ReasonSuperseded Reason = "superseded"
	// ReasonDuplicate: another pending entry already holds the target index.
	ReasonDuplicate Reason = "duplicate"
	// ReasonOrphaned: the contest is no longer in the rating history.
	ReasonOrphaned Reason = "orphaned"
)

// Transition closes one pending entry.
type Transition struct {
	EntryID      uint      `json:"entryId"`
	ContestName  string    `json:"contestName"`
	ProblemIndex string    `json:"problemIndex"`
	SolvedAt     time.Time `json:"solvedAt"`
	Reason       Reason    `json:"reason"`
}

// Addition stages a new pending entry.
type Addition struct {
	// ContestName is the judge's display name, used when the contest must be created.
	ContestName string `json:"contestName"`
	// ContestKey is the normalized join key.
	ContestKey string `json:"-"`
	// InternalContestID is zero when no owned contest matches yet.
	InternalContestID uint   `json:"internalContestId,omitempty"`
	ExternalContestID int    `json:"cfContestId"`
	ProblemIndex      string `json:"problemIndex"`
	Link              string `json:"link"`
}

// Summary is returned by every reconciliation run, degraded or not.
type Summary struct {
	// ContestsInHistory is the number of rating events fetched.
	ContestsInHistory int `json:"contestsInHistory"`
	// CompletedCount counts contests classified Completed.
	CompletedCount int `json:"completedCount"`
	// PendingCount counts contests still requiring upsolving.
	PendingCount int `json:"pendingCount"`
	// Skipped counts events with no catalog or timing data.
	Skipped int `json:"skipped"`
	// Added counts staged new entries.
	Added int `json:"added"`
	// Solved counts staged transitions.
	Solved int `json:"solved"`
	// Degraded is set when any judge dataset was unknown.
	Degraded bool `json:"degraded"`
	// Unknown names the datasets that could not be fetched.
	Unknown []string `json:"unknown,omitempty"`
}

// Plan is the computed set of queue mutations. It is not applied by BuildPlan.
type Plan struct {
	UserID      uint         `json:"userId"`
	Summary     Summary      `json:"summary"`
	Transitions []Transition `json:"transitions"`
	Additions   []Addition   `json:"additions"`
}

// Empty reports whether applying the plan would change nothing.
func (p *Plan) Empty() bool {
	return len(p.Transitions) == 0 && len(p.Additions) == 0
}

// ApplyOptions controls ApplyPlan.
type ApplyOptions struct {
	// DryRun computes the outcome without writing.
	DryRun bool
}

// ApplyResult reports what ApplyPlan wrote.
type ApplyResult struct {
	Solved          int  `json:"solved"`
	Added           int  `json:"added"`
	ContestsCreated int  `json:"contestsCreated"`
	DryRun          bool `json:"dryRun"`
}
