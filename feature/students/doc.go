// Package students manages the student profile: a display name and the
// Codeforces handle the upsolve queue is synchronized against.
//
// # HTTP Endpoints
//
//   - POST /students : Create a student.
//   - GET /students/:userID : Get a student.
//   - PUT /students/:userID/handle : Set the Codeforces handle.
package students
