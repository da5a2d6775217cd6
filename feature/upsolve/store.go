package upsolve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"upsolve-tracker/core/apperror"
	"upsolve-tracker/core/reconcile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists contests and queue entries with GORM.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new queue store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var (
	_ reconcile.Store       = (*Store)(nil)
	_ reconcile.BatchSolver = (*Store)(nil)
)

// EntriesByUser returns every queue entry of the user joined with its contest name.
func (s *Store) EntriesByUser(ctx context.Context, userID uint) ([]reconcile.Entry, error) {
	var rows []struct {
		ID           uint
		UserID       uint
		ContestID    uint
		ContestName  string
		ProblemIndex string
		Status       reconcile.Status
		SolvedAt     *time.Time
	}
	err := s.db.WithContext(ctx).
		Table("problem_statuses AS ps").
		Select("ps.id, ps.user_id, ps.contest_id, c.contest_name, ps.problem_index, ps.status, ps.solved_at").
		Joins("JOIN contests c ON c.id = ps.contest_id").
		Where("ps.user_id = ?", userID).
		Order("ps.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for user %d: %w", userID, err)
	}

	out := make([]reconcile.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, reconcile.Entry(r))
	}
	return out, nil
}

// ContestsByOwner returns the contests owned by the user with their problems.
func (s *Store) ContestsByOwner(ctx context.Context, ownerID uint) ([]reconcile.InternalContest, error) {
	contests, err := s.OwnedContests(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]reconcile.InternalContest, 0, len(contests))
	for _, c := range contests {
		out = append(out, c.toInternal())
	}
	return out, nil
}

// OwnedContests returns the owner's contests ordered by id.
func (s *Store) OwnedContests(ctx context.Context, ownerID uint) ([]Contest, error) {
	var contests []Contest
	err := s.db.WithContext(ctx).
		Preload("Problems", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&contests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load contests for owner %d: %w", ownerID, err)
	}
	return contests, nil
}

// Contest returns one contest with its problems.
func (s *Store) Contest(ctx context.Context, id uint) (*Contest, error) {
	var c Contest
	err := s.db.WithContext(ctx).
		Preload("Problems", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("contest %d: %w", id, apperror.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load contest %d: %w", id, err)
	}
	return &c, nil
}

// FindContestByName returns the owner's contest with exactly this name, or nil.
func (s *Store) FindContestByName(ctx context.Context, ownerID uint, name string) (*Contest, error) {
	var c Contest
	err := s.db.WithContext(ctx).
		Preload("Problems").
		Where("owner_id = ? AND contest_name = ?", ownerID, name).
		Order("id").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find contest %q: %w", name, err)
	}
	return &c, nil
}

// CreateContest inserts an empty contest.
func (s *Store) CreateContest(ctx context.Context, ownerID uint, name string) (*Contest, error) {
	c := &Contest{ContestName: name, OwnerID: ownerID}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("failed to create contest %q: %w", name, err)
	}
	return c, nil
}

// FindOrCreateContest matches the owner's contests by normalized name.
func (s *Store) FindOrCreateContest(ctx context.Context, ownerID uint, name string) (reconcile.InternalContest, bool, error) {
	var c Contest
	err := s.db.WithContext(ctx).
		Preload("Problems").
		Where("owner_id = ? AND LOWER(TRIM(contest_name)) = ?", ownerID, reconcile.NormalizeContestName(name)).
		Order("id").
		First(&c).Error
	if err == nil {
		return c.toInternal(), false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return reconcile.InternalContest{}, false, fmt.Errorf("failed to find contest %q: %w", name, err)
	}

	created, err := s.CreateContest(ctx, ownerID, name)
	if err != nil {
		return reconcile.InternalContest{}, false, err
	}
	return created.toInternal(), true, nil
}

// AppendProblems adds problem slots, skipping orders the contest already lists.
func (s *Store) AppendProblems(ctx context.Context, contestID uint, problems []reconcile.ContestProblem) error {
	if len(problems) == 0 {
		return nil
	}
	rows := make([]ContestProblem, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, ContestProblem{ContestID: contestID, Order: p.Order, Link: p.Link})
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to append problems to contest %d: %w", contestID, err)
	}
	return nil
}

// InsertEntries inserts pending entries; rows violating the unique index are skipped.
func (s *Store) InsertEntries(ctx context.Context, entries []reconcile.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	rows := make([]ProblemStatus, 0, len(entries))
	for _, e := range entries {
		status := e.Status
		if status == "" {
			status = reconcile.StatusPending
		}
		rows = append(rows, ProblemStatus{
			UserID:       e.UserID,
			ContestID:    e.ContestID,
			ProblemIndex: e.ProblemIndex,
			Status:       status,
		})
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to insert entries: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

// MarkSolved moves one pending entry to Solved.
func (s *Store) MarkSolved(ctx context.Context, entryID uint, at time.Time) error {
	return s.MarkSolvedBatch(ctx, []uint{entryID}, at)
}

// MarkSolvedBatch moves pending entries to Solved in one statement.
func (s *Store) MarkSolvedBatch(ctx context.Context, entryIDs []uint, at time.Time) error {
	if len(entryIDs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Model(&ProblemStatus{}).
		Where("id IN ? AND status = ?", entryIDs, reconcile.StatusPending).
		Updates(map[string]any{"status": reconcile.StatusSolved, "solved_at": at}).Error
	if err != nil {
		return fmt.Errorf("failed to mark %d entries solved: %w", len(entryIDs), err)
	}
	return nil
}

// Entry returns one queue entry.
func (s *Store) Entry(ctx context.Context, id uint) (*ProblemStatus, error) {
	var ps ProblemStatus
	err := s.db.WithContext(ctx).First(&ps, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("queue entry %d: %w", id, apperror.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load queue entry %d: %w", id, err)
	}
	return &ps, nil
}

// QueuedIndices returns the problem indices the user already has in a contest, any status.
func (s *Store) QueuedIndices(ctx context.Context, userID, contestID uint) (map[string]bool, error) {
	var indices []string
	err := s.db.WithContext(ctx).
		Model(&ProblemStatus{}).
		Where("user_id = ? AND contest_id = ?", userID, contestID).
		Pluck("problem_index", &indices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load queued problems: %w", err)
	}
	out := make(map[string]bool, len(indices))
	for _, idx := range indices {
		out[idx] = true
	}
	return out, nil
}

// Queue lists the user's pending entries with contest name and link, newest first.
func (s *Store) Queue(ctx context.Context, userID uint) ([]QueueItem, error) {
	var items []QueueItem
	err := s.db.WithContext(ctx).
		Table("problem_statuses AS ps").
		Select("ps.id, ps.contest_id, c.contest_name, ps.problem_index, COALESCE(cp.link, '') AS link, ps.created_at").
		Joins("JOIN contests c ON c.id = ps.contest_id").
		Joins("LEFT JOIN contest_problems cp ON cp.contest_id = ps.contest_id AND cp.problem_order = ps.problem_index").
		Where("ps.user_id = ? AND ps.status = ?", userID, reconcile.StatusPending).
		Order("ps.created_at DESC, ps.id DESC").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load queue for user %d: %w", userID, err)
	}
	return items, nil
}

// ProblemLink returns the link of a contest's problem slot.
func (s *Store) ProblemLink(ctx context.Context, contestID uint, index string) (string, error) {
	var cp ContestProblem
	err := s.db.WithContext(ctx).
		Where("contest_id = ? AND problem_order = ?", contestID, index).
		First(&cp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("problem %s of contest %d: %w", index, contestID, apperror.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load problem link: %w", err)
	}
	return cp.Link, nil
}

// Stats counts the user's entries by status.
func (s *Store) Stats(ctx context.Context, userID uint) (Stats, error) {
	var st Stats
	db := s.db.WithContext(ctx).Model(&ProblemStatus{})
	if err := db.Where("user_id = ?", userID).Count(&st.Total).Error; err != nil {
		return st, fmt.Errorf("failed to count entries: %w", err)
	}
	err := s.db.WithContext(ctx).Model(&ProblemStatus{}).
		Where("user_id = ? AND status = ?", userID, reconcile.StatusSolved).
		Count(&st.Solved).Error
	if err != nil {
		return st, fmt.Errorf("failed to count solved entries: %w", err)
	}
	st.Pending = st.Total - st.Solved
	return st, nil
}
