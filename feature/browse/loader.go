package browse

import (
	"bucketpath/feature/pathfs"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature bundles the browse service and handler for the loader.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new browse feature.
func NewFeature(client pathfs.BucketClient, logger *zap.Logger) *Feature {
	svc := NewService(client, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "browse"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
