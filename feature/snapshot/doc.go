// Package snapshot stores availability reports in object storage.
//
// Each export writes one JSON document to
// '<prefix>/poc-<id>/client-<id>/<UTC timestamp>-<id suffix>.json', so object names sort in
// time order. Exports run on demand (HTTP, 'snapshot' CLI) or on a cron schedule
// for the configured targets, after which older snapshots beyond 'keep' are pruned.
//
// Routes:
//   - GET  /snapshots/:clientId/:pocId
//   - GET  /snapshots/:clientId/:pocId/latest
//   - POST /snapshots/:clientId/:pocId
package snapshot
