package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/storage"
)

// StorageOrchestrator moves a generated report from its staging
// directory into durable storage.
type StorageOrchestrator struct {
	storage storage.StorageClient
}

// NewStorageOrchestrator creates an orchestrator backed by the given client
func NewStorageOrchestrator(storageClient storage.StorageClient) *StorageOrchestrator {
	return &StorageOrchestrator{
		storage: storageClient,
	}
}

// StoreAllFiles writes the generated files into the staging directory
// alongside the chart PNGs already there, then pushes every staged file
// through the storage client. Local and GCS backends take the same path.
func (so *StorageOrchestrator) StoreAllFiles(ctx context.Context, stagingDir string, files *GeneratedFiles, timestamp time.Time) error {
	if files == nil {
		return fmt.Errorf("no generated files to store")
	}

	if err := so.writeFilesToStaging(stagingDir, files); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}

	if err := so.uploadStagedFiles(ctx, stagingDir, timestamp); err != nil {
		return fmt.Errorf("failed to store staged files: %w", err)
	}

	logger.Infof("All report files stored under %s", files.FolderPath)
	return nil
}

// writeFilesToStaging writes HTML, JSON and asset files to the staging directory
func (so *StorageOrchestrator) writeFilesToStaging(stagingDir string, files *GeneratedFiles) error {
	htmlPath := filepath.Join(stagingDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(files.HTMLContent), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	for filename, data := range files.JSONFiles {
		path := filepath.Join(stagingDir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write JSON file %s: %w", filename, err)
		}
	}

	for filename, data := range files.AssetFiles {
		path := filepath.Join(stagingDir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write asset file %s: %w", filename, err)
		}
	}

	return nil
}

// uploadStagedFiles pushes every regular file in the staging directory
// through the storage client
func (so *StorageOrchestrator) uploadStagedFiles(ctx context.Context, stagingDir string, timestamp time.Time) error {
	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return fmt.Errorf("failed to read staging directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(stagingDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read staged file %s: %w", entry.Name(), err)
		}

		if err := so.storage.StoreFile(ctx, data, entry.Name(), timestamp); err != nil {
			return fmt.Errorf("failed to store file %s: %w", entry.Name(), err)
		}
		logger.Debugf("Stored %s (%d bytes)", entry.Name(), len(data))
	}

	return nil
}
