package availability

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the availability feature backed by db.
func NewFeature(db *gorm.DB, cfg Config, logger *zap.Logger) (*Feature, error) {
	if db == nil {
		return &Feature{}, nil
	}
	svc, err := NewService(NewGormRepository(db), cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Feature{service: svc, handler: NewHandler(svc, cfg.DefaultPocID)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "availability"
}

// IsEnabled reports whether a database is available to serve the feature.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}
