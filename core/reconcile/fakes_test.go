package reconcile

import (
	"context"
	"errors"
	"sort"
	"time"

	"upsolve-tracker/core/codeforces"
)

type fakeSource struct {
	history     codeforces.Result[[]codeforces.RatingEvent]
	submissions codeforces.Result[[]codeforces.Submission]
	contests    codeforces.Result[[]codeforces.Contest]
	problems    codeforces.Result[[]codeforces.Problem]
}

func (f *fakeSource) RatingHistory(context.Context, string) codeforces.Result[[]codeforces.RatingEvent] {
	return f.history
}

func (f *fakeSource) Submissions(context.Context, string) codeforces.Result[[]codeforces.Submission] {
	return f.submissions
}

func (f *fakeSource) Contests(context.Context) codeforces.Result[[]codeforces.Contest] {
	return f.contests
}

func (f *fakeSource) Problems(context.Context) codeforces.Result[[]codeforces.Problem] {
	return f.problems
}

// memStore is an in-memory Store that applies writes like the gorm store does.
type memStore struct {
	entries  map[uint]*Entry
	contests map[uint]*InternalContest
	nextID   uint

	markCalls   []uint
	failLoading bool
}

func newMemStore() *memStore {
	return &memStore{entries: map[uint]*Entry{}, contests: map[uint]*InternalContest{}, nextID: 100}
}

func (m *memStore) addContest(owner uint, name string) uint {
	m.nextID++
	m.contests[m.nextID] = &InternalContest{ID: m.nextID, Name: name, OwnerID: owner}
	return m.nextID
}

func (m *memStore) addEntry(user, contestID uint, index string, status Status) uint {
	m.nextID++
	m.entries[m.nextID] = &Entry{ID: m.nextID, UserID: user, ContestID: contestID, ProblemIndex: index, Status: status}
	return m.nextID
}

func (m *memStore) EntriesByUser(_ context.Context, userID uint) ([]Entry, error) {
	if m.failLoading {
		return nil, errors.New("db down")
	}
	var out []Entry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		cp := *e
		cp.ContestName = m.contests[e.ContestID].Name
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) ContestsByOwner(_ context.Context, ownerID uint) ([]InternalContest, error) {
	var out []InternalContest
	for _, c := range m.contests {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) MarkSolved(_ context.Context, id uint, at time.Time) error {
	m.markCalls = append(m.markCalls, id)
	if e, ok := m.entries[id]; ok && e.Pending() {
		e.Status = StatusSolved
		e.SolvedAt = &at
	}
	return nil
}

func (m *memStore) FindOrCreateContest(_ context.Context, owner uint, name string) (InternalContest, bool, error) {
	ids := make([]uint, 0, len(m.contests))
	for id := range m.contests {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		c := m.contests[id]
		if c.OwnerID == owner && NormalizeContestName(c.Name) == NormalizeContestName(name) {
			return *c, false, nil
		}
	}
	id := m.addContest(owner, name)
	return *m.contests[id], true, nil
}

func (m *memStore) AppendProblems(_ context.Context, contestID uint, problems []ContestProblem) error {
	c := m.contests[contestID]
	for _, p := range problems {
		if !c.HasProblem(p.Order) {
			c.Problems = append(c.Problems, p)
		}
	}
	return nil
}

func (m *memStore) InsertEntries(_ context.Context, entries []Entry) (int, error) {
	inserted := 0
	for _, e := range entries {
		dup := false
		for _, existing := range m.entries {
			if existing.UserID == e.UserID && existing.ContestID == e.ContestID && existing.ProblemIndex == e.ProblemIndex {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		m.addEntry(e.UserID, e.ContestID, e.ProblemIndex, e.Status)
		inserted++
	}
	return inserted, nil
}

func (m *memStore) pendingByContest() map[string][]string {
	out := map[string][]string{}
	for _, e := range m.entries {
		if e.Pending() {
			name := NormalizeContestName(m.contests[e.ContestID].Name)
			out[name] = append(out[name], e.ProblemIndex)
		}
	}
	return out
}

// batchStore records batch calls on top of memStore.
type batchStore struct {
	*memStore
	batches [][]uint
}

func (b *batchStore) MarkSolvedBatch(ctx context.Context, ids []uint, at time.Time) error {
	b.batches = append(b.batches, ids)
	for _, id := range ids {
		if e, ok := b.entries[id]; ok && e.Pending() {
			e.Status = StatusSolved
			e.SolvedAt = &at
		}
	}
	return nil
}

func known[T any](v T) codeforces.Result[T] {
	return codeforces.KnownResult(v)
}

func unknown[T any]() codeforces.Result[T] {
	return codeforces.UnknownResult[T](errors.New("judge unreachable"))
}

func abc(contestID int) []codeforces.Problem {
	return []codeforces.Problem{
		{ContestID: contestID, Index: "A"},
		{ContestID: contestID, Index: "B"},
		{ContestID: contestID, Index: "C"},
	}
}

func acSub(contestID int, index string, at int64) codeforces.Submission {
	return codeforces.Submission{ContestID: contestID, ProblemIndex: index, Verdict: codeforces.VerdictOK, CreationTimeSeconds: at}
}
