package mocks

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) EnsureBucket(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func (m *Client) Put(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, objectSize int64) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, reader, objectSize)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}
