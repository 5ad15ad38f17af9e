package storage

import (
	"context"
	"time"
)

// StorageClient defines the interface for report storage operations
type StorageClient interface {
	// Close releases any resources held by the client
	Close() error

	// StoreFile stores file data under the report folder for the given timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile reads a stored file by its storage-relative path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// FileExists reports whether a file exists at the storage-relative path
	FileExists(ctx context.Context, filePath string) (bool, error)

	// ListReports returns report index paths, newest first, up to limit
	ListReports(ctx context.Context, limit int) ([]string, error)

	// GetLatestReport returns the path of the most recent report index
	GetLatestReport(ctx context.Context) (string, error)
}
