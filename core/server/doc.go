// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only describes
// the listen port, the API key and the graceful shutdown window.
package server
