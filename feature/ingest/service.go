package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"catalog-manager/core/storage"
	"catalog-manager/core/upstream"
	"catalog-manager/feature/catalog"
	"catalog-manager/feature/catalog/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyResult is returned when the processing API answered successfully
// but carried no product bundles where some were required.
var ErrEmptyResult = errors.New("processing API returned no products")

// Service relays uploads and JSON payloads to the upstream APIs and feeds
// any returned bundles through the reconciler.
type Service struct {
	reconciler  *catalog.Reconciler
	transcriber upstream.Transcriber
	processor   upstream.Processor
	store       storage.Client
	storageCfg  storage.Config
	logger      *zap.Logger
}

// NewService creates a new ingest service. store may be nil when the upload
// archive is disabled.
func NewService(reconciler *catalog.Reconciler, transcriber upstream.Transcriber, processor upstream.Processor, store storage.Client, storageCfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		reconciler:  reconciler,
		transcriber: transcriber,
		processor:   processor,
		store:       store,
		storageCfg:  storageCfg,
		logger:      logger,
	}
}

// RelayResult reports what a relay produced. When the upstream answered with
// bundles, Products and Errors carry the per-bundle outcome; otherwise Raw
// holds the upstream body for pass-through.
type RelayResult struct {
	Message  string
	Products []models.Product
	Errors   []BundleError
	Raw      json.RawMessage
}

// BundleError is the per-element failure record of a batch.
type BundleError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// Transcribe archives the uploaded audio and relays it to the transcription
// API, returning the transcribed text.
func (s *Service) Transcribe(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	s.archive(ctx, filename, contentType, data)
	return s.transcriber.Transcribe(ctx, filename, bytes.NewReader(data))
}

// RelayJSON forwards a JSON payload verbatim to the processing API and
// stores any bundles it returns.
func (s *Service) RelayJSON(ctx context.Context, payload []byte) (*RelayResult, error) {
	resp, err := s.processor.ProcessJSON(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.storeBundles(ctx, resp)
}

// RelayFile forwards an uploaded file to the processing API and stores any
// bundles it returns.
func (s *Service) RelayFile(ctx context.Context, filename, contentType string, data []byte) (*RelayResult, error) {
	s.archive(ctx, filename, contentType, data)
	resp, err := s.processor.ProcessFile(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return s.storeBundles(ctx, resp)
}

// RelayOCR forwards an uploaded document to the OCR endpoint. Unlike the
// generic relay, an answer without bundles is an error here.
func (s *Service) RelayOCR(ctx context.Context, filename, contentType string, data []byte) (*RelayResult, error) {
	s.archive(ctx, filename, contentType, data)
	resp, err := s.processor.ProcessOCR(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrEmptyResult
	}
	return s.storeBundles(ctx, resp)
}

// FetchAndStore pulls the current product feed from the processing API and
// reconciles every bundle.
func (s *Service) FetchAndStore(ctx context.Context) (*RelayResult, error) {
	resp, err := s.processor.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return s.storeBundles(ctx, resp)
}

// storeBundles reconciles each bundle independently: a failing element is
// recorded and does not abort the rest of the batch.
func (s *Service) storeBundles(ctx context.Context, resp *upstream.ProcessResponse) (*RelayResult, error) {
	result := &RelayResult{Message: resp.Message}

	if len(resp.Items) == 0 {
		result.Raw = resp.Raw
		return result, nil
	}

	bundles, err := catalog.BundlesFromResponse(resp)
	if err != nil {
		return nil, err
	}

	result.Products = make([]models.Product, 0, len(bundles))
	for i, bundle := range bundles {
		product, err := s.reconciler.Reconcile(ctx, bundle)
		if err != nil {
			s.logger.Error("Bundle reconciliation failed", zap.Int("index", i), zap.Error(err))
			result.Errors = append(result.Errors, BundleError{Index: i, Error: err.Error()})
			continue
		}
		result.Products = append(result.Products, *product)
	}

	return result, nil
}

// archive writes the upload to the configured bucket. Best effort only: the
// relay is the contract, so archive failures are logged and swallowed.
func (s *Service) archive(ctx context.Context, filename, contentType string, data []byte) {
	if s.store == nil || !s.storageCfg.Enabled {
		return
	}

	objectName := s.storageCfg.Prefix + "/" + uuid.NewString() + "-" + filename
	if err := s.store.EnsureBucket(ctx, s.storageCfg.Bucket); err != nil {
		s.logger.Warn("Upload archive bucket unavailable", zap.Error(err))
		return
	}
	if _, err := s.store.Put(ctx, s.storageCfg.Bucket, objectName, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		s.logger.Warn("Failed to archive upload", zap.String("object", objectName), zap.Error(err))
		return
	}

	s.logger.Debug("Upload archived", zap.String("object", objectName))
}
