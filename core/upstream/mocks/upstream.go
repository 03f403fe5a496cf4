package mocks

import (
	"context"
	"io"

	"catalog-manager/core/upstream"

	"github.com/stretchr/testify/mock"
)

// Transcriber is a mock implementation of upstream.Transcriber
type Transcriber struct {
	mock.Mock
}

func (m *Transcriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	args := m.Called(ctx, filename, audio)
	return args.String(0), args.Error(1)
}

// Processor is a mock implementation of upstream.Processor
type Processor struct {
	mock.Mock
}

func (m *Processor) ProcessJSON(ctx context.Context, payload []byte) (*upstream.ProcessResponse, error) {
	args := m.Called(ctx, payload)
	if resp, ok := args.Get(0).(*upstream.ProcessResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Processor) ProcessFile(ctx context.Context, filename string, file io.Reader) (*upstream.ProcessResponse, error) {
	args := m.Called(ctx, filename, file)
	if resp, ok := args.Get(0).(*upstream.ProcessResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Processor) ProcessOCR(ctx context.Context, filename string, file io.Reader) (*upstream.ProcessResponse, error) {
	args := m.Called(ctx, filename, file)
	if resp, ok := args.Get(0).(*upstream.ProcessResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Processor) FetchCatalog(ctx context.Context) (*upstream.ProcessResponse, error) {
	args := m.Called(ctx)
	if resp, ok := args.Get(0).(*upstream.ProcessResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}
