package availability

import (
	"context"
	"time"

	"poc-availability/feature/availability/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service computes availability reports for a provider.
type Service struct {
	repo     Repository
	policy   MatchPolicy
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new availability service.
func NewService(repo Repository, cfg Config, logger *zap.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, _ := cfg.Location()
	policy, _ := ParseMatchPolicy(cfg.MatchPolicy)

	return &Service{
		repo:     repo,
		policy:   policy,
		location: loc,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Cutoff returns the current instant in the configured zone. Slots starting
// before it are not returned.
func (s *Service) Cutoff() time.Time {
	return s.now().In(s.location)
}

// GetAvailability returns the remaining capacity of every upcoming slot of
// pocID, along with the client and provider names.
func (s *Service) GetAvailability(ctx context.Context, pocID, clientID int64) (*models.AvailabilityReport, error) {
	cutoff := s.Cutoff()

	var (
		slots    []models.Slot
		rules    []models.ScheduleRule
		client   *models.Client
		provider *models.Provider
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if slots, err = s.repo.ListUpcomingSlots(gctx, pocID, cutoff); err != nil {
			return &RetrievalError{Query: "slots", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if rules, err = s.repo.ListScheduleRules(gctx, pocID); err != nil {
			return &RetrievalError{Query: "schedules", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if client, err = s.repo.GetClient(gctx, clientID); err != nil {
			return &RetrievalError{Query: "client", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if provider, err = s.repo.GetProvider(gctx, pocID, clientID); err != nil {
			return &RetrievalError{Query: "poc", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if client == nil {
		return nil, &NotFoundError{Entity: "client", ID: clientID}
	}
	if provider == nil {
		return nil, &NotFoundError{Entity: "poc", ID: pocID, ClientID: clientID}
	}

	out := Reconcile(slots, rules, s.policy)

	s.logger.Debug("Availability reconciled",
		zap.Int64("poc_id", pocID),
		zap.Int64("client_id", clientID),
		zap.Time("cutoff", cutoff),
		zap.Int("slots", len(slots)),
		zap.Int("rules", len(rules)),
		zap.Int("available", len(out.Details)),
		zap.Int("unmatched", out.Unmatched),
		zap.Int("full", out.Full),
		zap.Int("invalid_rules", out.InvalidRules),
	)

	return &models.AvailabilityReport{
		AppointmentDetails: out.Details,
		ClientName:         client.Name,
		PocName:            provider.Name,
		PocSpecialization:  provider.Specialization,
	}, nil
}
