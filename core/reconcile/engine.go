package reconcile

import (
	"slices"
	"strings"
	"time"

	"upsolve-tracker/core/codeforces"
)

// NormalizeContestName is the single join key between judge contests and local state.
func NormalizeContestName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildPlan computes the queue mutations for one user. It is pure: referenceTime
// stamps every inferred transition and nothing is read from the ambient clock.
func BuildPlan(s *Snapshot, referenceTime time.Time) *Plan {
	plan := &Plan{
		UserID:      s.UserID,
		Transitions: []Transition{},
		Additions:   []Addition{},
	}
	sum := &plan.Summary
	sum.ContestsInHistory = len(s.History.Value)

	for name, known := range map[string]bool{
		"history":     s.History.Known(),
		"submissions": s.Submissions.Known(),
		"contests":    s.Contests.Known(),
		"problems":    s.Problems.Known(),
	} {
		if !known {
			sum.Unknown = append(sum.Unknown, name)
		}
	}
	slices.Sort(sum.Unknown)
	sum.Degraded = len(sum.Unknown) > 0

	// Without the solve log every target would look unsolved.
	if !s.Submissions.Known() {
		return plan
	}

	timings := codeforces.ContestsByID(s.Contests.Value)
	catalog := codeforces.ProblemsByContest(s.Problems.Value)
	accepted := acceptedByContest(s.Submissions.Value)
	byName := groupEntries(s.Entries)
	owned := ownedContests(s.InternalContests)

	processed := make(map[string]bool)
	closed := make(map[uint]bool)

	closeEntry := func(e Entry, at time.Time, reason Reason) {
		if closed[e.ID] {
			return
		}
		closed[e.ID] = true
		plan.Transitions = append(plan.Transitions, Transition{
			EntryID:      e.ID,
			ContestName:  e.ContestName,
			ProblemIndex: e.ProblemIndex,
			SolvedAt:     at,
			Reason:       reason,
		})
	}

	for _, event := range s.History.Value {
		problems := catalog[event.ContestID]
		timing, ok := timings[event.ContestID]
		if len(problems) == 0 || !ok {
			sum.Skipped++
			continue
		}

		key := NormalizeContestName(timing.Name)
		if processed[key] {
			continue
		}
		processed[key] = true

		subs := accepted[event.ContestID]
		entries := byName[key]

		lastSolvedIdx := -1
		var lastSolvedTime int64
		if len(subs) > 0 {
			last := subs[len(subs)-1]
			lastSolvedTime = last.CreationTimeSeconds
			lastSolvedIdx = slices.IndexFunc(problems, func(p codeforces.Problem) bool {
				return p.Index == last.ProblemIndex
			})
		}

		if len(subs) > 0 && lastSolvedTime > timing.EndTimeSeconds() {
			sum.CompletedCount++
			solvedAt := time.Unix(lastSolvedTime, 0).UTC()
			for _, e := range entries {
				if e.Pending() {
					closeEntry(e, solvedAt, ReasonCompleted)
				}
			}
			continue
		}

		sum.PendingCount++

		target := ""
		if next := lastSolvedIdx + 1; next < len(problems) {
			idx := problems[next].Index
			if !slices.ContainsFunc(subs, func(sub codeforces.Submission) bool { return sub.ProblemIndex == idx }) {
				target = idx
			}
		}

		keeper := uint(0)
		for _, e := range entries {
			if !e.Pending() {
				continue
			}
			if target == "" || e.ProblemIndex != target {
				closeEntry(e, referenceTime, ReasonSuperseded)
				continue
			}
			if keeper == 0 || e.ID < keeper {
				keeper = e.ID
			}
		}
		for _, e := range entries {
			if e.Pending() && target != "" && e.ProblemIndex == target && e.ID != keeper {
				closeEntry(e, referenceTime, ReasonDuplicate)
			}
		}

		if target == "" || slices.ContainsFunc(entries, func(e Entry) bool { return e.ProblemIndex == target }) {
			continue
		}

		add := Addition{
			ContestName:       timing.Name,
			ContestKey:        key,
			ExternalContestID: event.ContestID,
			ProblemIndex:      target,
			Link:              codeforces.ProblemLink(event.ContestID, target),
		}
		if c, ok := owned[key]; ok {
			add.InternalContestID = c.ID
		}
		plan.Additions = append(plan.Additions, add)
	}

	// An unknown dataset means "not processed" is not evidence of absence.
	if !sum.Degraded {
		for _, e := range s.Entries {
			if e.Pending() && !processed[NormalizeContestName(e.ContestName)] {
				closeEntry(e, referenceTime, ReasonOrphaned)
			}
		}
	}

	sum.Added = len(plan.Additions)
	sum.Solved = len(plan.Transitions)
	return plan
}

// AcceptedIndices returns the problem indices of a contest with an accepted submission.
func AcceptedIndices(subs []codeforces.Submission, contestID int) map[string]bool {
	out := make(map[string]bool)
	for _, s := range subs {
		if s.ContestID == contestID && s.Accepted() {
			out[s.ProblemIndex] = true
		}
	}
	return out
}

// PickUnsolved walks problems in order and returns up to count of them that are
// neither solved nor already queued.
func PickUnsolved(problems []codeforces.Problem, solved, queued map[string]bool, count int) []codeforces.Problem {
	var picked []codeforces.Problem
	for _, p := range problems {
		if len(picked) >= count {
			break
		}
		if solved[p.Index] || queued[p.Index] {
			continue
		}
		picked = append(picked, p)
	}
	return picked
}

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

func acceptedByContest(subs []codeforces.Submission) map[int][]codeforces.Submission {
	out := make(map[int][]codeforces.Submission)
	for _, s := range subs {
		if s.Accepted() {
			out[s.ContestID] = append(out[s.ContestID], s)
		}
	}
	for id := range out {
		slices.SortStableFunc(out[id], func(a, b codeforces.Submission) int {
			switch {
			case a.CreationTimeSeconds < b.CreationTimeSeconds:
				return -1
			case a.CreationTimeSeconds > b.CreationTimeSeconds:
				return 1
			}
			return 0
		})
	}
	return out
}

func groupEntries(entries []Entry) map[string][]Entry {
	out := make(map[string][]Entry)
	for _, e := range entries {
		key := NormalizeContestName(e.ContestName)
		out[key] = append(out[key], e)
	}
	return out
}

// ownedContests keeps the lowest id per normalized name.
func ownedContests(contests []InternalContest) map[string]InternalContest {
	out := make(map[string]InternalContest)
	for _, c := range contests {
		key := NormalizeContestName(c.Name)
		if prev, ok := out[key]; !ok || c.ID < prev.ID {
			out[key] = c
		}
	}
	return out
}
