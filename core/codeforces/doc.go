// Package codeforces is a read-only client for the Codeforces public API.
//
// # Datasets
//
//   - RatingHistory: a user's rated contests, most recent first.
//   - Submissions: a user's full submission log.
//   - Contests: the global contest list, cached (default TTL 4h).
//   - Problems: the global problem catalog, cached (default TTL 10m).
//   - ContestProblems: one contest's name and problems, uncached.
//
// Every method returns a Result. A failed fetch (network, non-200, status other
// than "OK", decode error) becomes an Unknown result instead of an error, so callers
// can tell a confirmed empty list from missing data.
//
// # Caching
//
// The two global datasets live in Cache slots built once by NewCaches with an
// injected clockwork.Clock. Refreshes are collapsed with singleflight, and an expired
// value keeps being served (marked Stale) while the API is down. With WithSnapshots
// the last good copy is also written to object storage and read back on a cold start.
//
// # Usage
//
//	caches := codeforces.NewCaches(cfg.Codeforces, clockwork.NewRealClock())
//	cf := codeforces.NewClient(cfg.Codeforces, caches, log)
//	history := cf.RatingHistory(ctx, "tourist")
//	if !history.Known() {
//	    // judge unreachable
//	}
package codeforces
