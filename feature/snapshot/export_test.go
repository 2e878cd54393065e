package snapshot

import "time"

// SetNow replaces the service clock.
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// SetNewID replaces the object name suffix generator.
func (s *Service) SetNewID(newID func() string) {
	s.newID = newID
}
