package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the catalog service and handler into the loader.
type Feature struct {
	db         *gorm.DB
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewFeature creates the catalog feature.
func NewFeature(db *gorm.DB, reconciler *Reconciler, logger *zap.Logger) *Feature {
	return &Feature{db: db, reconciler: reconciler, logger: logger}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled reports whether the feature should load. The catalog is the
// service's reason to exist, so it is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the catalog routes.
func (f *Feature) Load(app fiber.Router) error {
	service := NewService(f.db, f.logger)
	handler := NewHandler(service, f.reconciler, f.logger)
	handler.RegisterRoutes(app)
	return nil
}
