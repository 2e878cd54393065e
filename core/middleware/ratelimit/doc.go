// Package ratelimit limits requests per client with token buckets
// (golang.org/x/time/rate) and optionally counts decisions in Redis so that
// several replicas report shared totals.
//
// Clients are identified by a configurable header, falling back to the
// remote IP. Idle limiters are dropped by RunCleanup.
package ratelimit
