package integrity

import (
	"context"
	"fmt"

	"poc-availability/core/storage"
	"poc-availability/feature/availability/models"
	"poc-availability/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	region string
	prefix string
	logger *zap.Logger
}

// NewService creates a new integrity service. Either db or client may be nil;
// the checks needing them then fail.
func NewService(db *gorm.DB, client storage.Client, storageCfg storage.Config, prefix string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: storageCfg.Bucket,
		region: storageCfg.Region,
		prefix: prefix,
		logger: logger,
	}
}

// CheckSchema compares the scheduling tables with the availability models.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	return checks.CheckSchema(ctx, s.db, models.All())
}

// CheckStorage inspects the snapshot bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.prefix)
}

// FixStorage creates the snapshot bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.logger)
}
