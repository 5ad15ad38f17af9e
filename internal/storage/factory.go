package storage

import (
	"context"
	"fmt"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/config"
)

// NewStorageClient builds the storage client for the configured
// deployment mode: filesystem for local runs, GCS for cloud deployments.
func NewStorageClient(ctx context.Context, cfg *config.Config) (StorageClient, error) {
	switch cfg.DeploymentMode {
	case config.DeploymentLocal:
		dir := cfg.ReportsDir
		if dir == "" {
			dir = "reports"
		}
		client, err := NewLocalClient(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return client, nil

	case config.DeploymentGCS:
		client, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS storage: %w", err)
		}
		return client, nil
	}
	return nil, fmt.Errorf("unsupported deployment mode: %s", cfg.DeploymentMode)
}
