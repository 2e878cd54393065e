// Package server holds the HTTP server configuration.
//
// The main entry point (cmd/start.go) owns the Fiber application; this package
// only defines the listen port, the optional API key and the request timeouts,
// and validates them before the server starts.
package server
