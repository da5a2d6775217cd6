// Package upsolve owns the per-student upsolve queue: internal contests, their
// problem slots and the queue entries that track each problem from Pending to
// Solved.
//
// The bulk operation delegates to core/reconcile. Everything else here is
// additive or a single-entry transition.
//
// # HTTP Endpoints
//
//   - GET /students/:userID/participated-contests : Last 15 rated contests.
//   - GET /students/:userID/contests : Internal contests with problems.
//   - GET /students/:userID/upsolve-queue : Pending entries, newest first.
//   - GET /students/:userID/stats : Queue totals and solve rate.
//   - POST /students/:userID/bulk-upsolve : Reconcile against the rating history.
//   - POST /students/:userID/smart-upsolve : Queue up to 3 unsolved problems of a contest.
//   - POST /students/:userID/add-personal-contest : Mirror a judge contest, queue up to 5.
//   - PUT /students/:userID/mark-solved/:statusID : Close an entry now.
//   - POST /students/:userID/verify-problem/:statusID : Close an entry if accepted.
//   - POST /students/:userID/verify-queue : Verify every pending entry.
//
// # Periodic Sync
//
// Worker runs the bulk reconciliation for every student with a handle on a
// gocron schedule. Runs never overlap.
package upsolve
