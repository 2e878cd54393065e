// Package integrity provides system health checks for the availability service.
//
// # Checks Provided
//
//   - Schema: Validates that the scheduling tables ('client', 'poc', 'poc_schedules',
//     'poc_available_slots') have the columns and base types the availability models expect.
//   - Storage: Checks that the snapshot bucket exists and counts stored snapshots.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
package integrity
