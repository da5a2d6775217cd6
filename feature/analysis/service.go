package analysis

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"upsolve-tracker/core/apperror"
	"upsolve-tracker/core/codeforces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source is the part of the judge client the analysis reads.
type Source interface {
	RatingHistory(ctx context.Context, handle string) codeforces.Result[[]codeforces.RatingEvent]
	Submissions(ctx context.Context, handle string) codeforces.Result[[]codeforces.Submission]
	Contests(ctx context.Context) codeforces.Result[[]codeforces.Contest]
}

// ContestStat counts the problems of one rated contest solved during and after it.
type ContestStat struct {
	ContestID    int    `json:"contestId"`
	ContestName  string `json:"contestName"`
	SolvedDuring int    `json:"solvedDuring"`
	SolvedAfter  int    `json:"solvedAfter"`
	TotalSolved  int    `json:"totalSolved"`
}

// Upsolved is a problem first accepted after its contest ended.
type Upsolved struct {
	ContestID    int       `json:"contestId"`
	ContestName  string    `json:"contestName"`
	ProblemIndex string    `json:"problemIndex"`
	SolvedAt     time.Time `json:"solvedAt"`
}

// Summary totals a report.
type Summary struct {
	TotalContests     int `json:"totalContests"`
	TotalSolvedDuring int `json:"totalSolvedDuring"`
	TotalUpsolved     int `json:"totalUpsolved"`
}

// Report is the upsolve analysis of one handle.
type Report struct {
	Handle       string        `json:"handle"`
	Summary      Summary       `json:"summary"`
	ContestStats []ContestStat `json:"contestStats"`
	Upsolved     []Upsolved    `json:"upsolveQueue"`
}

// Service analyzes any handle without touching local state.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService creates a new analysis service.
func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Analyze classifies every accepted problem of each rated contest by whether its
// last accepted submission came before or after the contest window closed.
func (s *Service) Analyze(ctx context.Context, handle string) (*Report, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, fmt.Errorf("handle required: %w", apperror.ErrValidation)
	}

	var (
		history  codeforces.Result[[]codeforces.RatingEvent]
		subs     codeforces.Result[[]codeforces.Submission]
		contests codeforces.Result[[]codeforces.Contest]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { history = s.source.RatingHistory(gctx, handle); return nil })
	g.Go(func() error { subs = s.source.Submissions(gctx, handle); return nil })
	g.Go(func() error { contests = s.source.Contests(gctx); return nil })
	_ = g.Wait()

	for name, known := range map[string]bool{
		"rating history": history.Known(),
		"submissions":    subs.Known(),
		"contest list":   contests.Known(),
	} {
		if !known {
			s.logger.Warn("Analysis input unavailable", zap.String("handle", handle), zap.String("dataset", name))
			return nil, fmt.Errorf("%s of %s: %w", name, handle, apperror.ErrServiceUnavailable)
		}
	}

	return BuildReport(handle, history.Value, subs.Value, contests.Value), nil
}

// BuildReport computes the analysis from fetched data.
func BuildReport(handle string, history []codeforces.RatingEvent, subs []codeforces.Submission, contests []codeforces.Contest) *Report {
	byID := codeforces.ContestsByID(contests)

	// Last accepted time per contest and problem index.
	lastAC := make(map[int]map[string]int64)
	for _, sub := range subs {
		if !sub.Accepted() {
			continue
		}
		if lastAC[sub.ContestID] == nil {
			lastAC[sub.ContestID] = make(map[string]int64)
		}
		if sub.CreationTimeSeconds > lastAC[sub.ContestID][sub.ProblemIndex] {
			lastAC[sub.ContestID][sub.ProblemIndex] = sub.CreationTimeSeconds
		}
	}

	report := &Report{
		Handle:       handle,
		ContestStats: []ContestStat{},
		Upsolved:     []Upsolved{},
	}
	report.Summary.TotalContests = len(history)

	for _, ev := range history {
		contest, ok := byID[ev.ContestID]
		if !ok {
			continue
		}

		stat := ContestStat{ContestID: contest.ID, ContestName: contest.Name}
		solved := lastAC[contest.ID]
		indices := make([]string, 0, len(solved))
		for idx := range solved {
			indices = append(indices, idx)
		}
		slices.SortFunc(indices, codeforces.CompareIndex)

		for _, idx := range indices {
			at := solved[idx]
			if at <= contest.EndTimeSeconds() {
				stat.SolvedDuring++
				continue
			}
			stat.SolvedAfter++
			report.Upsolved = append(report.Upsolved, Upsolved{
				ContestID:    contest.ID,
				ContestName:  contest.Name,
				ProblemIndex: idx,
				SolvedAt:     time.Unix(at, 0).UTC(),
			})
		}
		stat.TotalSolved = stat.SolvedDuring + stat.SolvedAfter
		report.ContestStats = append(report.ContestStats, stat)
		report.Summary.TotalSolvedDuring += stat.SolvedDuring
	}

	slices.SortStableFunc(report.Upsolved, func(a, b Upsolved) int {
		return b.SolvedAt.Compare(a.SolvedAt)
	})
	report.Summary.TotalUpsolved = len(report.Upsolved)
	return report
}
