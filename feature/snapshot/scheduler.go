package snapshot

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the export job on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	logger  *zap.Logger
	timeout time.Duration
}

// NewScheduler registers the export job for schedule. Each run is bounded by timeout.
func NewScheduler(service *Service, schedule string, timeout time.Duration, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		service: service,
		logger:  logger,
		timeout: timeout,
	}
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, err
	}
	return s, nil
}

// Run exports and prunes every target once.
func (s *Scheduler) Run() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	names, err := s.service.ExportAll(ctx)
	if err != nil {
		s.logger.Error("Snapshot export failed", zap.Error(err))
	}

	for _, t := range s.service.Targets() {
		removed, err := s.service.Prune(ctx, t)
		if err != nil {
			s.logger.Warn("Snapshot prune failed", zap.String("target", t.String()), zap.Error(err))
			continue
		}
		if removed > 0 {
			s.logger.Debug("Snapshots pruned", zap.String("target", t.String()), zap.Int("removed", removed))
		}
	}

	s.logger.Info("Snapshot job finished",
		zap.Int("exported", len(names)),
		zap.Int("targets", len(s.service.Targets())),
		zap.Duration("duration", time.Since(start)),
	)
}

// Start begins running the job in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler. The returned context is done once a running job finishes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
