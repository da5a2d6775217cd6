package upsolve

import (
	"context"
	"fmt"
	"math"

	"upsolve-tracker/core/apperror"
	"upsolve-tracker/core/codeforces"
	"upsolve-tracker/core/logger"
	"upsolve-tracker/core/reconcile"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	maxRecommend    = 3
	maxPersonalAdd  = 5
	participatedCap = 15
)

// Judge is the part of the judge client the upsolve feature needs.
type Judge interface {
	reconcile.Source
	ContestProblems(ctx context.Context, contestID int) codeforces.Result[codeforces.ContestProblems]
}

// Students resolves a student's judge handle.
type Students interface {
	Handle(ctx context.Context, id uint) (string, error)
}

// Service implements the upsolve queue operations.
type Service struct {
	store    *Store
	judge    Judge
	students Students
	clock    clockwork.Clock
	logger   *zap.Logger
}

// NewService creates a new upsolve service.
func NewService(store *Store, judge Judge, students Students, clock clockwork.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{store: store, judge: judge, students: students, clock: clock, logger: logger}
}

// requireHandle returns the student's handle or a validation error when unset.
func (s *Service) requireHandle(ctx context.Context, userID uint) (string, error) {
	handle, err := s.students.Handle(ctx, userID)
	if err != nil {
		return "", err
	}
	if handle == "" {
		return "", fmt.Errorf("handle required: %w", apperror.ErrValidation)
	}
	return handle, nil
}

// Reconcile runs a full bulk reconciliation for one student.
func (s *Service) Reconcile(ctx context.Context, userID uint, dryRun bool) (*reconcile.Plan, reconcile.ApplyResult, error) {
	handle, err := s.requireHandle(ctx, userID)
	if err != nil {
		return nil, reconcile.ApplyResult{}, err
	}

	l := logger.WithStudent(s.logger, userID, handle)
	plan, res, err := reconcile.Reconcile(ctx, s.judge, s.store, userID, handle, s.clock.Now().UTC(), reconcile.ApplyOptions{DryRun: dryRun})
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return plan, res, err
	}

	fields := []zap.Field{
		zap.Int("contests", plan.Summary.ContestsInHistory),
		zap.Int("solved", res.Solved),
		zap.Int("added", res.Added),
		zap.Bool("dry_run", dryRun),
	}
	if plan.Summary.Degraded {
		l.Warn("Reconciliation degraded", append(fields, zap.Strings("unknown", plan.Summary.Unknown))...)
	} else {
		l.Info("Reconciliation finished", fields...)
	}
	return plan, res, nil
}

// Sync reconciles a student and returns the combined report.
func (s *Service) Sync(ctx context.Context, userID uint) (*SyncReport, error) {
	plan, res, err := s.Reconcile(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	return &SyncReport{Summary: plan.Summary, Applied: res}, nil
}

// Recommend queues up to count (1 to 3) unsolved problems of an internal contest.
func (s *Service) Recommend(ctx context.Context, userID, contestID uint, count int) (*AddResult, error) {
	handle, err := s.requireHandle(ctx, userID)
	if err != nil {
		return nil, err
	}

	contest, err := s.store.Contest(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if contest.OwnerID != userID {
		return nil, fmt.Errorf("contest %d belongs to another student: %w", contestID, apperror.ErrForbidden)
	}
	if len(contest.Problems) == 0 {
		return nil, fmt.Errorf("contest has no initial problems: %w", apperror.ErrValidation)
	}

	ref, ok := codeforces.ParseProblemLink(contest.Problems[0].Link)
	if !ok {
		return nil, fmt.Errorf("invalid problem link %q: %w", contest.Problems[0].Link, apperror.ErrValidation)
	}

	fetched := s.judge.ContestProblems(ctx, ref.ContestID)
	if !fetched.Known() {
		return nil, fmt.Errorf("contest %d: %w", ref.ContestID, apperror.ErrServiceUnavailable)
	}
	if len(fetched.Value.Problems) == 0 {
		return nil, fmt.Errorf("no problem data for contest %d: %w", ref.ContestID, apperror.ErrServiceUnavailable)
	}

	added, err := s.queueUnsolved(ctx, userID, handle, contest.ID, fetched.Value, reconcile.Clamp(count, 1, maxRecommend))
	if err != nil {
		return nil, err
	}
	return &AddResult{ContestID: contest.ID, ContestName: contest.ContestName, Added: added}, nil
}

// AddPersonalContest mirrors a judge contest into the student's contests and queues
// up to count (1 to 5) unsolved problems of it.
func (s *Service) AddPersonalContest(ctx context.Context, userID uint, externalID, count int) (*AddResult, error) {
	if externalID <= 0 {
		return nil, fmt.Errorf("invalid contest id %d: %w", externalID, apperror.ErrValidation)
	}
	handle, err := s.requireHandle(ctx, userID)
	if err != nil {
		return nil, err
	}

	fetched := s.judge.ContestProblems(ctx, externalID)
	if !fetched.Known() {
		return nil, fmt.Errorf("contest %d: %w", externalID, apperror.ErrServiceUnavailable)
	}
	if len(fetched.Value.Problems) == 0 {
		return nil, fmt.Errorf("contest not found: %w", apperror.ErrNotFound)
	}

	name := fetched.Value.Name
	contest, err := s.store.FindContestByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if contest == nil {
		if contest, err = s.store.CreateContest(ctx, userID, name); err != nil {
			return nil, err
		}
	}

	added, err := s.queueUnsolved(ctx, userID, handle, contest.ID, fetched.Value, reconcile.Clamp(count, 1, maxPersonalAdd))
	if err != nil {
		return nil, err
	}
	return &AddResult{ContestID: contest.ID, ContestName: contest.ContestName, Added: added}, nil
}

// queueUnsolved appends the first count problems with no accepted submission and no
// existing entry to the internal contest and queues them.
func (s *Service) queueUnsolved(ctx context.Context, userID uint, handle string, contestID uint, cp codeforces.ContestProblems, count int) ([]string, error) {
	subs := s.judge.Submissions(ctx, handle)
	if !subs.Known() {
		return nil, fmt.Errorf("submissions of %s: %w", handle, apperror.ErrServiceUnavailable)
	}

	queued, err := s.store.QueuedIndices(ctx, userID, contestID)
	if err != nil {
		return nil, err
	}

	solved := reconcile.AcceptedIndices(subs.Value, cp.ContestID)
	picked := reconcile.PickUnsolved(cp.Problems, solved, queued, count)
	added := make([]string, 0, len(picked))
	if len(picked) == 0 {
		return added, nil
	}

	slots := make([]reconcile.ContestProblem, 0, len(picked))
	entries := make([]reconcile.Entry, 0, len(picked))
	for _, p := range picked {
		slots = append(slots, reconcile.ContestProblem{Order: p.Index, Link: codeforces.ProblemLink(cp.ContestID, p.Index)})
		entries = append(entries, reconcile.Entry{UserID: userID, ContestID: contestID, ProblemIndex: p.Index, Status: reconcile.StatusPending})
		added = append(added, p.Index)
	}

	if err := s.store.AppendProblems(ctx, contestID, slots); err != nil {
		return nil, err
	}
	if _, err := s.store.InsertEntries(ctx, entries); err != nil {
		return nil, err
	}

	logger.WithStudent(s.logger, userID, handle).Info("Problems queued",
		zap.Uint("contest_id", contestID), zap.Strings("problems", added))
	return added, nil
}

// Queue lists the student's pending entries.
func (s *Service) Queue(ctx context.Context, userID uint) ([]QueueItem, error) {
	if _, err := s.students.Handle(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.Queue(ctx, userID)
}

// ownedEntry loads an entry and checks it belongs to the student.
func (s *Service) ownedEntry(ctx context.Context, userID, entryID uint) (*ProblemStatus, error) {
	entry, err := s.store.Entry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("queue entry %d belongs to another student: %w", entryID, apperror.ErrForbidden)
	}
	return entry, nil
}

// MarkSolved closes a pending entry now. Solved entries are returned unchanged.
func (s *Service) MarkSolved(ctx context.Context, userID, entryID uint) (*ProblemStatus, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == reconcile.StatusSolved {
		return entry, nil
	}

	if err := s.store.MarkSolved(ctx, entry.ID, s.clock.Now().UTC()); err != nil {
		return nil, err
	}
	return s.store.Entry(ctx, entry.ID)
}

// Verify checks the submission log for an accepted solution of one entry and closes it.
func (s *Service) Verify(ctx context.Context, userID, entryID uint) (*VerifyResult, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == reconcile.StatusSolved {
		return &VerifyResult{Solved: true, Entry: entry}, nil
	}

	handle, err := s.requireHandle(ctx, userID)
	if err != nil {
		return nil, err
	}

	link, err := s.store.ProblemLink(ctx, entry.ContestID, entry.ProblemIndex)
	if err != nil {
		return nil, err
	}
	ref, ok := codeforces.ParseProblemLink(link)
	if !ok {
		return nil, fmt.Errorf("invalid problem link %q: %w", link, apperror.ErrValidation)
	}

	subs := s.judge.Submissions(ctx, handle)
	if !subs.Known() {
		return nil, fmt.Errorf("submissions of %s: %w", handle, apperror.ErrServiceUnavailable)
	}

	if !reconcile.AcceptedIndices(subs.Value, ref.ContestID)[ref.ProblemIndex] {
		return &VerifyResult{Solved: false, Entry: entry}, nil
	}
	if err := s.store.MarkSolved(ctx, entry.ID, s.clock.Now().UTC()); err != nil {
		return nil, err
	}
	entry, err = s.store.Entry(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Solved: true, Entry: entry}, nil
}

// VerifyQueue checks every pending entry against one submission log fetch.
func (s *Service) VerifyQueue(ctx context.Context, userID uint) (*VerifyQueueResult, error) {
	handle, err := s.requireHandle(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.EntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var pending []reconcile.Entry
	for _, e := range entries {
		if e.Pending() {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		return &VerifyQueueResult{}, nil
	}

	subs := s.judge.Submissions(ctx, handle)
	if !subs.Known() {
		logger.WithStudent(s.logger, userID, handle).Warn("Queue verification skipped, submissions unavailable", zap.Error(subs.Err))
		return &VerifyQueueResult{Degraded: true}, nil
	}

	accepted := make(map[int]map[string]bool)
	var ids []uint
	for _, e := range pending {
		link, err := s.store.ProblemLink(ctx, e.ContestID, e.ProblemIndex)
		if err != nil {
			s.logger.Debug("Entry has no problem link", zap.Uint("entry_id", e.ID), zap.Error(err))
			continue
		}
		ref, ok := codeforces.ParseProblemLink(link)
		if !ok {
			continue
		}
		if _, seen := accepted[ref.ContestID]; !seen {
			accepted[ref.ContestID] = reconcile.AcceptedIndices(subs.Value, ref.ContestID)
		}
		if accepted[ref.ContestID][ref.ProblemIndex] {
			ids = append(ids, e.ID)
		}
	}

	if err := s.store.MarkSolvedBatch(ctx, ids, s.clock.Now().UTC()); err != nil {
		return nil, err
	}
	return &VerifyQueueResult{Checked: len(pending), Solved: len(ids)}, nil
}

// Stats summarizes the student's queue. SolveRate is a percentage rounded to two decimals.
func (s *Service) Stats(ctx context.Context, userID uint) (Stats, error) {
	if _, err := s.students.Handle(ctx, userID); err != nil {
		return Stats{}, err
	}
	st, err := s.store.Stats(ctx, userID)
	if err != nil {
		return st, err
	}
	if st.Total > 0 {
		st.SolveRate = math.Round(float64(st.Solved)/float64(st.Total)*10000) / 100
	}
	return st, nil
}

// ParticipatedContests returns the student's most recent rated contests.
func (s *Service) ParticipatedContests(ctx context.Context, userID uint) ([]ParticipatedContest, error) {
	handle, err := s.students.Handle(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []ParticipatedContest{}
	if handle == "" {
		return out, nil
	}

	history := s.judge.RatingHistory(ctx, handle)
	if !history.Known() {
		return nil, fmt.Errorf("rating history of %s: %w", handle, apperror.ErrServiceUnavailable)
	}
	for i, ev := range history.Value {
		if i == participatedCap {
			break
		}
		out = append(out, ParticipatedContest{
			ContestID:    ev.ContestID,
			ContestName:  ev.ContestName,
			Rank:         ev.Rank,
			RatingChange: ev.RatingChange(),
		})
	}
	return out, nil
}

// MyContests returns the student's internal contests with their problems.
func (s *Service) MyContests(ctx context.Context, userID uint) ([]Contest, error) {
	if _, err := s.students.Handle(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.OwnedContests(ctx, userID)
}
