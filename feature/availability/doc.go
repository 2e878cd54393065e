// Package availability computes the open appointment slots of a point of
// contact (POC).
//
// A POC's weekly schedule rules ('poc_schedules') carry the per-slot capacity for
// a weekday and time window. Date-specific slots ('poc_available_slots') carry how
// many appointments are already booked. Each upcoming slot is matched to the rule
// for its weekday whose window contains it, and slots with capacity left are
// returned in date and start-time order, numbered from 1.
//
// The four reads (slots, rules, client, POC) run concurrently through the
// Repository interface. GormRepository is the MySQL-backed implementation.
//
// Routes:
//   - GET /api/appointments/:clientId?pocId=N
//   - GET /api/appointments/:clientId/:pocId
package availability
