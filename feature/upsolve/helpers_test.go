package upsolve_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"upsolve-tracker/core/apperror"
	"upsolve-tracker/core/codeforces"
	"upsolve-tracker/core/database"
	"upsolve-tracker/core/reconcile"
	"upsolve-tracker/feature/upsolve"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(upsolve.Models()...))
	return db
}

type mockJudge struct {
	mock.Mock
}

func (m *mockJudge) RatingHistory(_ context.Context, handle string) codeforces.Result[[]codeforces.RatingEvent] {
	return m.Called(handle).Get(0).(codeforces.Result[[]codeforces.RatingEvent])
}

func (m *mockJudge) Submissions(_ context.Context, handle string) codeforces.Result[[]codeforces.Submission] {
	return m.Called(handle).Get(0).(codeforces.Result[[]codeforces.Submission])
}

func (m *mockJudge) Contests(context.Context) codeforces.Result[[]codeforces.Contest] {
	return m.Called().Get(0).(codeforces.Result[[]codeforces.Contest])
}

func (m *mockJudge) Problems(context.Context) codeforces.Result[[]codeforces.Problem] {
	return m.Called().Get(0).(codeforces.Result[[]codeforces.Problem])
}

func (m *mockJudge) ContestProblems(_ context.Context, contestID int) codeforces.Result[codeforces.ContestProblems] {
	return m.Called(contestID).Get(0).(codeforces.Result[codeforces.ContestProblems])
}

// fakeStudents maps student ids to handles.
type fakeStudents map[uint]string

func (f fakeStudents) Handle(_ context.Context, id uint) (string, error) {
	h, ok := f[id]
	if !ok {
		return "", fmt.Errorf("student %d: %w", id, apperror.ErrNotFound)
	}
	return h, nil
}

func (f fakeStudents) IDsWithHandles(context.Context) ([]uint, error) {
	var ids []uint
	for id, h := range f {
		if h != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fixture struct {
	db     *gorm.DB
	store  *upsolve.Store
	judge  *mockJudge
	clock  *clockwork.FakeClock
	svc    *upsolve.Service
	people fakeStudents
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupDB(t)
	f := &fixture{
		db:     db,
		store:  upsolve.NewStore(db),
		judge:  new(mockJudge),
		clock:  clockwork.NewFakeClockAt(testNow),
		people: fakeStudents{1: "tourist", 2: "petr", 3: ""},
	}
	f.svc = upsolve.NewService(f.store, f.judge, f.people, f.clock, zap.NewNop())
	return f
}

// seedContest creates a contest owned by owner with slots for the given indices of a judge contest.
func (f *fixture) seedContest(t *testing.T, owner uint, name string, judgeID int, indices ...string) *upsolve.Contest {
	t.Helper()
	c := &upsolve.Contest{ContestName: name, OwnerID: owner}
	for _, idx := range indices {
		c.Problems = append(c.Problems, upsolve.ContestProblem{Order: idx, Link: codeforces.ProblemLink(judgeID, idx)})
	}
	require.NoError(t, f.db.Create(c).Error)
	return c
}

func (f *fixture) seedEntry(t *testing.T, user, contestID uint, index string, status string) *upsolve.ProblemStatus {
	t.Helper()
	ps := &upsolve.ProblemStatus{UserID: user, ContestID: contestID, ProblemIndex: index, Status: reconcile.Status(status)}
	if status == "Solved" {
		at := testNow.Add(-time.Hour)
		ps.SolvedAt = &at
	}
	require.NoError(t, f.db.Create(ps).Error)
	return ps
}

func problems(contestID int, indices ...string) []codeforces.Problem {
	out := make([]codeforces.Problem, 0, len(indices))
	for _, idx := range indices {
		out = append(out, codeforces.Problem{ContestID: contestID, Index: idx, Name: "Problem " + idx})
	}
	return out
}

func accepted(contestID int, index string, at int64) codeforces.Submission {
	return codeforces.Submission{ContestID: contestID, ProblemIndex: index, Verdict: codeforces.VerdictOK, CreationTimeSeconds: at}
}
