package upsolve

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the upsolve feature. It is disabled without a database.
func NewFeature(db *gorm.DB, judge Judge, students Students, clock clockwork.Clock, logger *zap.Logger) *Feature {
	svc := NewService(NewStore(db), judge, students, clock, logger)
	return &Feature{service: svc, handler: NewHandler(svc), enabled: db != nil}
}

// Service exposes the upsolve service to the CLI and the sync worker.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "upsolve"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
