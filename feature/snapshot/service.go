package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"poc-availability/core/storage"
	"poc-availability/feature/availability/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNoSnapshot is returned when a target has never been exported.
var ErrNoSnapshot = errors.New("no snapshot found")

// objectTimeLayout sorts lexically in time order. Exports in the same
// instant are told apart by an id suffix.
const objectTimeLayout = "20060102T150405.000000000Z"

// Source produces the report a snapshot captures.
type Source interface {
	GetAvailability(ctx context.Context, pocID, clientID int64) (*models.AvailabilityReport, error)
}

// Snapshot is the stored document.
type Snapshot struct {
	PocID       int64                      `json:"pocId"`
	ClientID    int64                      `json:"clientId"`
	GeneratedAt time.Time                  `json:"generatedAt"`
	Report      *models.AvailabilityReport `json:"report"`
}

// Service exports availability reports to object storage.
type Service struct {
	source  Source
	client  storage.Client
	bucket  string
	region  string
	prefix  string
	keep    int
	targets []Target
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// NewService creates a snapshot service writing to bucket.
func NewService(source Source, client storage.Client, storageCfg storage.Config, cfg Config, logger *zap.Logger) (*Service, error) {
	targets, err := ParseTargets(cfg.Targets)
	if err != nil {
		return nil, err
	}
	return &Service{
		source:  source,
		client:  client,
		bucket:  storageCfg.Bucket,
		region:  storageCfg.Region,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		keep:    cfg.Keep,
		targets: targets,
		logger:  logger,
		now:     time.Now,
		newID:   shortID,
	}, nil
}

// Targets returns the configured export targets.
func (s *Service) Targets() []Target {
	return s.targets
}

func (s *Service) targetPrefix(t Target) string {
	return path.Join(s.prefix, fmt.Sprintf("poc-%d", t.PocID), fmt.Sprintf("client-%d", t.ClientID)) + "/"
}

// Export computes the target's report and writes it as a new object.
// It returns the object name.
func (s *Service) Export(ctx context.Context, t Target) (string, error) {
	report, err := s.source.GetAvailability(ctx, t.PocID, t.ClientID)
	if err != nil {
		return "", fmt.Errorf("failed to build report %s: %w", t, err)
	}

	generated := s.now().UTC()
	data, err := json.Marshal(Snapshot{
		PocID:       t.PocID,
		ClientID:    t.ClientID,
		GeneratedAt: generated,
		Report:      report,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot %s: %w", t, err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return "", err
	}

	name := s.targetPrefix(t) + generated.Format(objectTimeLayout) + "-" + s.newID() + ".json"
	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}

	s.logger.Info("Snapshot exported",
		zap.String("target", t.String()),
		zap.String("object", name),
		zap.Int("rows", len(report.AppointmentDetails)),
	)
	return name, nil
}

// ExportAll exports every configured target. A failing target does not stop
// the others; their errors are joined.
func (s *Service) ExportAll(ctx context.Context) ([]string, error) {
	var (
		names []string
		errs  []error
	)
	for _, t := range s.targets {
		name, err := s.Export(ctx, t)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		names = append(names, name)
	}
	return names, errors.Join(errs...)
}

// List returns the target's snapshot object names, oldest first.
func (s *Service) List(ctx context.Context, t Target) ([]string, error) {
	// Stops the listing goroutine when returning early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.targetPrefix(t)}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots %s: %w", t, obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			names = append(names, obj.Key)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Latest reads the newest snapshot of the target.
func (s *Service) Latest(ctx context.Context, t Target) (*Snapshot, error) {
	names, err := s.List(ctx, t)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoSnapshot
	}

	name := names[len(names)-1]
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", name, err)
	}
	defer obj.Close()

	var snap Snapshot
	if err := json.NewDecoder(obj).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return &snap, nil
}

// Prune removes all but the newest keep snapshots of the target and returns
// how many were removed.
func (s *Service) Prune(ctx context.Context, t Target) (int, error) {
	if s.keep <= 0 {
		return 0, nil
	}
	names, err := s.List(ctx, t)
	if err != nil {
		return 0, err
	}
	if len(names) <= s.keep {
		return 0, nil
	}

	stale := names[:len(names)-s.keep]
	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, name := range stale {
		objectsCh <- minio.ObjectInfo{Key: name}
	}
	close(objectsCh)

	var errs []error
	for rErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("failed to remove %s: %w", rErr.ObjectName, rErr.Err))
	}
	if len(errs) > 0 {
		return len(stale) - len(errs), errors.Join(errs...)
	}
	return len(stale), nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
