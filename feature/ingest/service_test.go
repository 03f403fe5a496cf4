package ingest_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"catalog-manager/core/database"
	"catalog-manager/core/storage"
	storagemocks "catalog-manager/core/storage/mocks"
	"catalog-manager/core/upstream"
	upstreammocks "catalog-manager/core/upstream/mocks"
	"catalog-manager/feature/catalog"
	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/ingest"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newTestService(t *testing.T, transcriber upstream.Transcriber, processor upstream.Processor, store storage.Client, storageCfg storage.Config) (*ingest.Service, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	logger := zap.NewNop()
	reconciler := catalog.NewReconciler(db, logger)
	return ingest.NewService(reconciler, transcriber, processor, store, storageCfg, logger), db
}

func TestTranscribe(t *testing.T) {
	transcriber := new(upstreammocks.Transcriber)
	transcriber.On("Transcribe", mock.Anything, "note.wav", mock.Anything).
		Return("hello world", nil)

	svc, _ := newTestService(t, transcriber, nil, nil, storage.Config{})

	text, err := svc.Transcribe(context.Background(), "note.wav", "audio/wav", []byte("audio"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	transcriber.AssertExpectations(t)
}

func TestTranscribeArchivesUpload(t *testing.T) {
	transcriber := new(upstreammocks.Transcriber)
	transcriber.On("Transcribe", mock.Anything, "note.wav", mock.Anything).
		Return("hi", nil)

	store := new(storagemocks.Client)
	store.On("EnsureBucket", mock.Anything, "catalog-uploads").Return(nil)
	store.On("Put", mock.Anything, "catalog-uploads",
		mock.MatchedBy(func(object string) bool {
			return strings.HasPrefix(object, "uploads/") && strings.HasSuffix(object, "-note.wav")
		}),
		"audio/wav", mock.Anything, int64(5)).
		Return(minio.UploadInfo{}, nil)

	cfg := storage.Config{Enabled: true, Bucket: "catalog-uploads", Prefix: "uploads"}
	svc, _ := newTestService(t, transcriber, nil, store, cfg)

	_, err := svc.Transcribe(context.Background(), "note.wav", "audio/wav", []byte("audio"))
	require.NoError(t, err)
	store.AssertExpectations(t)
}

// The archive is best effort: a broken bucket must not fail the relay.
func TestTranscribeArchiveFailureIgnored(t *testing.T) {
	transcriber := new(upstreammocks.Transcriber)
	transcriber.On("Transcribe", mock.Anything, "note.wav", mock.Anything).
		Return("hi", nil)

	store := new(storagemocks.Client)
	store.On("EnsureBucket", mock.Anything, "catalog-uploads").
		Return(errors.New("bucket unavailable"))

	cfg := storage.Config{Enabled: true, Bucket: "catalog-uploads", Prefix: "uploads"}
	svc, _ := newTestService(t, transcriber, nil, store, cfg)

	text, err := svc.Transcribe(context.Background(), "note.wav", "audio/wav", []byte("audio"))
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
}

func TestRelayJSONStoresBundles(t *testing.T) {
	processor := new(upstreammocks.Processor)
	processor.On("ProcessJSON", mock.Anything, mock.Anything).
		Return(&upstream.ProcessResponse{
			Message: "extracted",
			Items: []json.RawMessage{
				json.RawMessage(`{"product":{"sku":"R1","name":"Good"}}`),
				json.RawMessage(`{"product":{"name":"missing sku"}}`),
				json.RawMessage(`{"product":{"sku":"R2","name":"Also Good"}}`),
			},
		}, nil)

	svc, db := newTestService(t, nil, processor, nil, storage.Config{})

	result, err := svc.RelayJSON(context.Background(), []byte(`{"text":"..."}`))
	require.NoError(t, err)
	assert.Equal(t, "extracted", result.Message)

	// A failing element is recorded without discarding the rest of the batch.
	assert.Len(t, result.Products, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Index)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestRelayJSONPassThrough(t *testing.T) {
	raw := json.RawMessage(`{"message":"nothing to do"}`)
	processor := new(upstreammocks.Processor)
	processor.On("ProcessJSON", mock.Anything, mock.Anything).
		Return(&upstream.ProcessResponse{Message: "nothing to do", Raw: raw}, nil)

	svc, _ := newTestService(t, nil, processor, nil, storage.Config{})

	result, err := svc.RelayJSON(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Nil(t, result.Products)
	assert.Equal(t, raw, result.Raw)
}

func TestRelayJSONUpstreamError(t *testing.T) {
	processor := new(upstreammocks.Processor)
	processor.On("ProcessJSON", mock.Anything, mock.Anything).
		Return(nil, &upstream.Error{Service: "processing", StatusCode: 502})

	svc, _ := newTestService(t, nil, processor, nil, storage.Config{})

	_, err := svc.RelayJSON(context.Background(), []byte(`{}`))
	assert.Error(t, err)
}

func TestRelayFileStoresBundles(t *testing.T) {
	processor := new(upstreammocks.Processor)
	processor.On("ProcessFile", mock.Anything, "list.csv", mock.Anything).
		Return(&upstream.ProcessResponse{
			Items: []json.RawMessage{
				json.RawMessage(`{"product":{"sku":"F1","name":"From File"}}`),
			},
		}, nil)

	svc, db := newTestService(t, nil, processor, nil, storage.Config{})

	result, err := svc.RelayFile(context.Background(), "list.csv", "text/csv", []byte("sku,name"))
	require.NoError(t, err)
	assert.Len(t, result.Products, 1)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRelayOCRRequiresProducts(t *testing.T) {
	processor := new(upstreammocks.Processor)
	processor.On("ProcessOCR", mock.Anything, "scan.pdf", mock.Anything).
		Return(&upstream.ProcessResponse{Message: "no text found"}, nil)

	svc, _ := newTestService(t, nil, processor, nil, storage.Config{})

	_, err := svc.RelayOCR(context.Background(), "scan.pdf", "application/pdf", []byte("%PDF"))
	assert.True(t, errors.Is(err, ingest.ErrEmptyResult))
}

func TestFetchAndStore(t *testing.T) {
	processor := new(upstreammocks.Processor)
	processor.On("FetchCatalog", mock.Anything).
		Return(&upstream.ProcessResponse{
			Items: []json.RawMessage{
				json.RawMessage(`{"product":{"sku":"FC1","name":"Feed"},"brand":{"name":"FeedBrand"}}`),
			},
		}, nil)

	svc, db := newTestService(t, nil, processor, nil, storage.Config{})

	result, err := svc.FetchAndStore(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Products, 1)
	assert.Empty(t, result.Errors)

	var count int64
	db.Model(&models.Brand{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
