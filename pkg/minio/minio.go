package minio

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"ledgerly-api/config"
)

// Object holds a stored object's content and the metadata needed to serve it.
type Object struct {
	Reader      io.ReadCloser
	Size        int64
	ContentType string
}

// MinIO defines the object storage operations used for receipt attachments.
type MinIO interface {
	// Connect verifies connectivity and ensures the configured bucket exists.
	Connect(ctx context.Context) error

	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error

	// Close releases the client resources.
	Close() error

	// Upload stores an object under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Download retrieves an object by key. The caller owns the reader.
	Download(ctx context.Context, key string) (*Object, error)

	// Remove deletes an object by key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// implMinIO is the implementation of the MinIO interface.
type implMinIO struct {
	client *minio.Client
	cfg    config.MinIOConfig
	mu     sync.RWMutex
}

// NewMinIO creates a MinIO client from the given configuration.
func NewMinIO(cfg config.MinIOConfig) (MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &implMinIO{client: client, cfg: cfg}, nil
}

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists, err := m.client.BucketExists(ctx, m.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to reach MinIO: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.cfg.Bucket, minio.MakeBucketOptions{Region: m.cfg.Region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", m.cfg.Bucket, err)
		}
	}

	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, err := m.client.BucketExists(ctx, m.cfg.Bucket); err != nil {
		return fmt.Errorf("MinIO health check failed: %w", err)
	}

	return nil
}

func (m *implMinIO) Close() error {
	return nil
}

func (m *implMinIO) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.cfg.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return nil
}

func (m *implMinIO) Download(ctx context.Context, key string) (*Object, error) {
	obj, err := m.client.GetObject(ctx, m.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s: %w", key, err)
	}

	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	return &Object{Reader: obj, Size: stat.Size, ContentType: stat.ContentType}, nil
}

func (m *implMinIO) Remove(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.cfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}

	return nil
}
