package availability

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that a lookup by id returned no row.
type NotFoundError struct {
	// Entity is "client" or "poc".
	Entity string
	ID     int64
	// ClientID scopes a poc lookup; zero for client lookups.
	ClientID int64
}

func (e *NotFoundError) Error() string {
	if e.ClientID != 0 {
		return fmt.Sprintf("%s %d not found for client %d", e.Entity, e.ID, e.ClientID)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RetrievalError wraps a data-access failure of one of the availability queries.
type RetrievalError struct {
	// Query names the failed retrieval: slots, schedules, client or poc.
	Query string
	Err   error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve %s: %v", e.Query, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
