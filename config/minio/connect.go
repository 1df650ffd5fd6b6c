package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ledgerly-api/config"
	miniopkg "ledgerly-api/pkg/minio"
)

const defaultConnectTimeout = 5 * time.Second

var (
	instance miniopkg.MinIO
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the shared MinIO client. The connection is a
// singleton; repeated calls return the existing client, and a failed
// attempt can be retried by calling Connect again.
func Connect(ctx context.Context, cfg config.MinIOConfig) (miniopkg.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		impl, implErr := miniopkg.NewMinIO(cfg)
		if implErr != nil {
			err = fmt.Errorf("failed to create MinIO client: %w", implErr)
			initErr = err
			return
		}

		if connectErr := impl.Connect(connectCtx); connectErr != nil {
			err = fmt.Errorf("failed to connect to MinIO: %w", connectErr)
			initErr = err
			return
		}

		instance = impl
	})

	return instance, err
}

// GetClient returns the singleton MinIO client.
// Panics if Connect has not been called successfully.
func GetClient() miniopkg.MinIO {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("MinIO client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the client and resets the singleton.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}

	if err := instance.Close(); err != nil {
		return fmt.Errorf("failed to close MinIO connection: %w", err)
	}

	instance = nil
	initErr = nil
	once = sync.Once{}
	return nil
}

// HealthCheck verifies the shared client can still reach the store.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MinIO client not initialized")
	}

	return instance.HealthCheck(ctx)
}
