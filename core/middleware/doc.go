// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: assigns every request a ray id, stored in locals and echoed in X-Ray-ID.
//   - auth: API key check on X-API-Key, disabled when no key is configured.
//   - ratelimit: per-client token buckets with optional Redis counters.
//
// They are registered globally in cmd/start.go, rayid first so every log line
// of a request carries its id.
package middleware
