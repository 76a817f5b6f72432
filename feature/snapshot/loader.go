package snapshot

import (
	"stock-counter/core/storage"
	"stock-counter/feature/product"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new snapshot feature.
func NewFeature(db *gorm.DB, client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	svc := NewService(product.NewService(db, logger), client, cfg, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
		enabled: db != nil && client != nil,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "snapshot"
}

// IsEnabled reports whether both the database and the storage client are available.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
