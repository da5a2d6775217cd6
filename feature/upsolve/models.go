package upsolve

import (
	"time"

	"upsolve-tracker/core/reconcile"
)

// Contest is an internal contest owned by a student.
type Contest struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	ContestName string           `gorm:"size:255;not null" json:"contestName"`
	OwnerID     uint             `gorm:"index;not null" json:"ownerId"`
	Problems    []ContestProblem `gorm:"foreignKey:ContestID" json:"problems"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// TableName overrides the table name.
func (Contest) TableName() string {
	return "contests"
}

// ContestProblem is one problem slot of a contest.
type ContestProblem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ContestID uint   `gorm:"uniqueIndex:idx_contest_order;not null" json:"-"`
	Order     string `gorm:"column:problem_order;size:16;uniqueIndex:idx_contest_order;not null" json:"order"`
	Link      string `gorm:"size:255;not null" json:"link"`
}

// TableName overrides the table name.
func (ContestProblem) TableName() string {
	return "contest_problems"
}

// ProblemStatus is a queue entry. Unique per (user, contest, problem index).
type ProblemStatus struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	UserID       uint             `gorm:"uniqueIndex:idx_user_contest_problem;not null" json:"userId"`
	ContestID    uint             `gorm:"uniqueIndex:idx_user_contest_problem;not null" json:"contestId"`
	ProblemIndex string           `gorm:"size:16;uniqueIndex:idx_user_contest_problem;not null" json:"problemIndex"`
	Status       reconcile.Status `gorm:"size:16;index;not null" json:"status"`
	SolvedAt     *time.Time       `json:"solvedAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// TableName overrides the table name.
func (ProblemStatus) TableName() string {
	return "problem_statuses"
}

// Models lists the tables owned by this feature, for migrations.
func Models() []any {
	return []any{&Contest{}, &ContestProblem{}, &ProblemStatus{}}
}

// QueueItem is a pending entry as shown in the upsolve queue.
type QueueItem struct {
	ID           uint      `json:"id"`
	ContestID    uint      `json:"contestId"`
	ContestName  string    `json:"contestName"`
	ProblemIndex string    `json:"problemIndex"`
	Link         string    `json:"link"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Stats summarizes a student's queue.
type Stats struct {
	Total     int64   `json:"total"`
	Solved    int64   `json:"solved"`
	Pending   int64   `json:"pending"`
	SolveRate float64 `json:"solveRate"`
}

// AddResult is returned by the additive operations.
type AddResult struct {
	ContestID   uint     `json:"contestId"`
	ContestName string   `json:"contestName"`
	Added       []string `json:"added"`
}

// SyncReport is returned by a full reconciliation.
type SyncReport struct {
	reconcile.Summary
	Applied reconcile.ApplyResult `json:"applied"`
}

// VerifyResult is the outcome of verifying one entry.
type VerifyResult struct {
	Solved bool           `json:"solved"`
	Entry  *ProblemStatus `json:"entry"`
}

// VerifyQueueResult is the outcome of verifying every pending entry.
type VerifyQueueResult struct {
	Checked  int  `json:"checked"`
	Solved   int  `json:"solved"`
	Degraded bool `json:"degraded"`
}

// ParticipatedContest is a recent rated contest with its rating change.
type ParticipatedContest struct {
	ContestID    int    `json:"contestId"`
	ContestName  string `json:"contestName"`
	Rank         int    `json:"rank"`
	RatingChange int    `json:"ratingChange"`
}

func (c Contest) toInternal() reconcile.InternalContest {
	out := reconcile.InternalContest{ID: c.ID, Name: c.ContestName, OwnerID: c.OwnerID}
	for _, p := range c.Problems {
		out.Problems = append(out.Problems, reconcile.ContestProblem{Order: p.Order, Link: p.Link})
	}
	return out
}
