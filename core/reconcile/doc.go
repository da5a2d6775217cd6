// Package reconcile keeps a user's upsolve queue consistent with the judge.
//
// It merges three independently fetched datasets (rating history, submission log,
// and the global contest/problem catalog) with the persisted queue into "exactly one
// pending upsolve target per contest".
//
// # Pipeline
//
//  1. BuildSnapshot fetches the judge datasets and loads the queue concurrently.
//  2. BuildPlan computes transitions and additions. It is pure and takes the
//     reference time explicitly.
//  3. ApplyPlan writes the plan through a Store, batching transitions when the
//     store implements BatchSolver.
//
// # Per contest (most recent rating event first)
//
//   - Completed: the last accepted submission is after the contest window. Every
//     pending entry is closed at that submission's time.
//   - Required: the target is the problem after the last solved one, unless it was
//     itself solved. Other pending entries are closed at the reference time, and
//     the target is added when no entry covers it.
//
// Pending entries whose contest never appeared in the run are closed afterwards,
// unless a judge dataset was unknown. An unknown submission log yields an empty,
// degraded plan.
//
// Local contests are joined by NormalizeContestName, never by judge id.
package reconcile
