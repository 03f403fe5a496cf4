package ingest

import (
	"catalog-manager/core/storage"
	"catalog-manager/core/upstream"
	"catalog-manager/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the ingest relays into the loader.
type Feature struct {
	reconciler  *catalog.Reconciler
	transcriber upstream.Transcriber
	processor   upstream.Processor
	store       storage.Client
	storageCfg  storage.Config
	logger      *zap.Logger
}

// NewFeature creates the ingest feature. store may be nil when the upload
// archive is disabled.
func NewFeature(reconciler *catalog.Reconciler, transcriber upstream.Transcriber, processor upstream.Processor, store storage.Client, storageCfg storage.Config, logger *zap.Logger) *Feature {
	return &Feature{
		reconciler:  reconciler,
		transcriber: transcriber,
		processor:   processor,
		store:       store,
		storageCfg:  storageCfg,
		logger:      logger,
	}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "ingest"
}

// IsEnabled reports whether the feature should load.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the ingest routes.
func (f *Feature) Load(app fiber.Router) error {
	service := NewService(f.reconciler, f.transcriber, f.processor, f.store, f.storageCfg, f.logger)
	handler := NewHandler(service, f.logger)
	handler.RegisterRoutes(app)
	return nil
}
