// Package analysis reports how a Codeforces handle upsolves: for every rated
// contest, how many problems were accepted during the contest window and how
// many only afterwards. It reads the judge and stores nothing.
//
// # HTTP Endpoints
//
//   - GET /analysis/:handle : Upsolve analysis of a handle.
package analysis
