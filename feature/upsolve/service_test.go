package upsolve_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"upsolve-tracker/core/apperror"
	"upsolve-tracker/core/codeforces"
	"upsolve-tracker/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Recommend(t *testing.T) {
	ctx := context.Background()

	t.Run("Queues Unsolved In Order", func(t *testing.T) {
		f := newFixture(t)
		c := f.seedContest(t, 1, "Round 1900", 1900, "A")
		f.seedEntry(t, 1, c.ID, "A", "Pending")

		f.judge.On("ContestProblems", 1900).Return(codeforces.KnownResult(codeforces.ContestProblems{
			ContestID: 1900, Name: "Round 1900", Problems: problems(1900, "A", "B", "C", "D", "E"),
		}))
		f.judge.On("Submissions", "tourist").Return(codeforces.KnownResult([]codeforces.Submission{
			accepted(1900, "B", 100),
		}))

		res, err := f.svc.Recommend(ctx, 1, c.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "D"}, res.Added)
		assert.Equal(t, "Round 1900", res.ContestName)

		items, err := f.store.Queue(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, items, 3)

		// Count is clamped to three.
		res, err = f.svc.Recommend(ctx, 1, c.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"E"}, res.Added)
	})

	t.Run("Validation", func(t *testing.T) {
		f := newFixture(t)
		empty := f.seedContest(t, 1, "Empty", 0)
		bad := f.seedContest(t, 1, "Bad Link", 0)
		require.NoError(t, f.store.AppendProblems(ctx, bad.ID, []reconcile.ContestProblem{{Order: "A", Link: "https://example.com/a"}}))
		foreign := f.seedContest(t, 2, "Foreign", 1900, "A")

		_, err := f.svc.Recommend(ctx, 1, empty.ID, 1)
		assert.ErrorIs(t, err, apperror.ErrValidation)

		_, err = f.svc.Recommend(ctx, 1, bad.ID, 1)
		assert.ErrorIs(t, err, apperror.ErrValidation)

		_, err = f.svc.Recommend(ctx, 1, foreign.ID, 1)
		assert.ErrorIs(t, err, apperror.ErrForbidden)

		_, err = f.svc.Recommend(ctx, 1, 999, 1)
		assert.ErrorIs(t, err, apperror.ErrNotFound)

		_, err = f.svc.Recommend(ctx, 3, empty.ID, 1)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("Judge Unavailable", func(t *testing.T) {
		f := newFixture(t)
		c := f.seedContest(t, 1, "Round 1900", 1900, "A")
		f.judge.On("ContestProblems", 1900).Return(codeforces.UnknownResult[codeforces.ContestProblems](errors.New("timeout")))

		_, err := f.svc.Recommend(ctx, 1, c.ID, 1)
		assert.ErrorIs(t, err, apperror.ErrServiceUnavailable)
	})
}

func TestService_AddPersonalContest(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Then Reuses Contest", func(t *testing.T) {
		f := newFixture(t)
		f.judge.On("ContestProblems", 1901).Return(codeforces.KnownResult(codeforces.ContestProblems{
			ContestID: 1901, Name: "Educational Round 160", Problems: problems(1901, "A", "B", "C"),
		}))
		f.judge.On("Submissions", "tourist").Return(codeforces.KnownResult([]codeforces.Submission{
			accepted(1901, "A", 100),
		}))

		first, err := f.svc.AddPersonalContest(ctx, 1, 1901, 0)
		require.NoError(t, err)
		assert.Equal(t, "Educational Round 160", first.ContestName)
		assert.Equal(t, []string{"B"}, first.Added)

		second, err := f.svc.AddPersonalContest(ctx, 1, 1901, 5)
		require.NoError(t, err)
		assert.Equal(t, first.ContestID, second.ContestID)
		assert.Equal(t, []string{"C"}, second.Added)

		third, err := f.svc.AddPersonalContest(ctx, 1, 1901, 5)
		require.NoError(t, err)
		assert.Empty(t, third.Added)

		contests, err := f.svc.MyContests(ctx, 1)
		require.NoError(t, err)
		require.Len(t, contests, 1)
		assert.Len(t, contests[0].Problems, 2)
	})

	t.Run("Contest Not Found", func(t *testing.T) {
		f := newFixture(t)
		f.judge.On("ContestProblems", 99999).Return(codeforces.KnownResult(codeforces.ContestProblems{ContestID: 99999}))

		_, err := f.svc.AddPersonalContest(ctx, 1, 99999, 1)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("Missing Handle", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.AddPersonalContest(ctx, 3, 1901, 1)
		assert.ErrorIs(t, err, apperror.ErrValidation)
		f.judge.AssertNotCalled(t, "ContestProblems", 1901)
	})
}

func TestService_MarkSolved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.seedContest(t, 1, "Round", 1900, "A")
	entry := f.seedEntry(t, 1, c.ID, "A", "Pending")

	_, err := f.svc.MarkSolved(ctx, 2, entry.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = f.svc.MarkSolved(ctx, 1, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	got, err := f.svc.MarkSolved(ctx, 1, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, reconcile.StatusSolved, got.Status)
	require.NotNil(t, got.SolvedAt)
	assert.True(t, got.SolvedAt.Equal(testNow))

	f.clock.Advance(time.Hour)
	again, err := f.svc.MarkSolved(ctx, 1, entry.ID)
	require.NoError(t, err)
	assert.True(t, again.SolvedAt.Equal(testNow))
}

func TestService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted Submission Closes Entry", func(t *testing.T) {
		f := newFixture(t)
		c := f.seedContest(t, 1, "Round", 1900, "A", "B")
		a := f.seedEntry(t, 1, c.ID, "A", "Pending")
		b := f.seedEntry(t, 1, c.ID, "B", "Pending")
		f.judge.On("Submissions", "tourist").Return(codeforces.KnownResult([]codeforces.Submission{
			accepted(1900, "A", 100),
		}))

		res, err := f.svc.Verify(ctx, 1, a.ID)
		require.NoError(t, err)
		assert.True(t, res.Solved)
		assert.Equal(t, reconcile.StatusSolved, res.Entry.Status)

		res, err = f.svc.Verify(ctx, 1, b.ID)
		require.NoError(t, err)
		assert.False(t, res.Solved)
		assert.Equal(t, reconcile.StatusPending, res.Entry.Status)
	})

	t.Run("Unknown Submissions", func(t *testing.T) {
		f := newFixture(t)
		c := f.seedContest(t, 1, "Round", 1900, "A")
		a := f.seedEntry(t, 1, c.ID, "A", "Pending")
		f.judge.On("Submissions", "tourist").Return(codeforces.UnknownResult[[]codeforces.Submission](errors.New("503")))

		_, err := f.svc.Verify(ctx, 1, a.ID)
		assert.ErrorIs(t, err, apperror.ErrServiceUnavailable)

		entry, err := f.store.Entry(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusPending, entry.Status)
	})
}

func TestService_VerifyQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("Flips Accepted Entries", func(t *testing.T) {
		f := newFixture(t)
		c := f.seedContest(t, 1, "Round", 1900, "A", "B")
		f.seedEntry(t, 1, c.ID, "A", "Pending")
		f.seedEntry(t, 1, c.ID, "B", "Pending")
		f.judge.On("Submissions", "tourist").Return(codeforces.KnownResult([]codeforces.Submission{
			accepted(1900, "B", 100),
			{ContestID: 1900, ProblemIndex: "A", Verdict: "WRONG_ANSWER"},
		}))

		res, err := f.svc.VerifyQueue(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Checked)
		assert.Equal(t, 1, res.Solved)
		assert.False(t, res.Degraded)

		st, err := f.svc.Stats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), st.Solved)
	})

	t.Run("Empty Queue", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.svc.VerifyQueue(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, res.Checked)
		f.judge.AssertNotCalled(t, "Submissions", "tourist")
	})

	t.Run("Degraded", func(t *testing.T) {
		f := newFixture(t)
		c := f.seedContest(t, 1, "Round", 1900, "A")
		f.seedEntry(t, 1, c.ID, "A", "Pending")
		f.judge.On("Submissions", "tourist").Return(codeforces.UnknownResult[[]codeforces.Submission](errors.New("503")))

		res, err := f.svc.VerifyQueue(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.Zero(t, res.Solved)
	})
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.seedContest(t, 1, "Round", 1900, "A", "B", "C")
	f.seedEntry(t, 1, c.ID, "A", "Solved")
	f.seedEntry(t, 1, c.ID, "B", "Pending")
	f.seedEntry(t, 1, c.ID, "C", "Pending")

	st, err := f.svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.Total)
	assert.Equal(t, int64(2), st.Pending)
	assert.Equal(t, 33.33, st.SolveRate)

	empty, err := f.svc.Stats(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, empty.SolveRate)

	_, err = f.svc.Stats(ctx, 404)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_ParticipatedContests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var history []codeforces.RatingEvent
	for i := 0; i < 20; i++ {
		history = append(history, codeforces.RatingEvent{ContestID: 2000 - i, ContestName: "Round", Rank: i + 1, OldRating: 1500, NewRating: 1500 + i})
	}
	f.judge.On("RatingHistory", "tourist").Return(codeforces.KnownResult(history))

	out, err := f.svc.ParticipatedContests(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out, 15)
	assert.Equal(t, 2000, out[0].ContestID)
	assert.Equal(t, 14, out[14].RatingChange)

	none, err := f.svc.ParticipatedContests(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.judge.On("RatingHistory", "tourist").Return(codeforces.KnownResult([]codeforces.RatingEvent{
		{ContestID: 1900, ContestName: "Round 1900", RatingUpdateTimeSeconds: 2000},
	}))
	f.judge.On("Contests").Return(codeforces.KnownResult([]codeforces.Contest{
		{ID: 1900, Name: "Round 1900", StartTimeSeconds: 1000, DurationSeconds: 100},
	}))
	f.judge.On("Problems").Return(codeforces.KnownResult(problems(1900, "A", "B", "C")))
	subs := f.judge.On("Submissions", "tourist").Return(codeforces.KnownResult([]codeforces.Submission{}))

	plan, res, err := f.svc.Reconcile(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Summary.PendingCount)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.ContestsCreated)

	items, err := f.store.Queue(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].ProblemIndex)
	assert.Equal(t, "https://codeforces.com/contest/1900/problem/A", items[0].Link)

	// Running again changes nothing.
	plan, _, err = f.svc.Reconcile(ctx, 1, false)
	require.NoError(t, err)
	assert.True(t, plan.Empty())

	// A solves during the contest: the target moves to B.
	subs.Unset()
	f.judge.On("Submissions", "tourist").Return(codeforces.KnownResult([]codeforces.Submission{accepted(1900, "A", 1050)}))
	_, res, err = f.svc.Reconcile(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Solved)
	assert.Equal(t, 1, res.Added)

	items, err = f.store.Queue(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].ProblemIndex)

	entries, err := f.store.EntriesByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].SolvedAt.Equal(testNow))

	_, _, err = f.svc.Reconcile(ctx, 3, false)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
