package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalClient stores reports on the local filesystem under a root
// directory. Paths handed to callers are slash-separated and relative to
// the root, matching the object names the GCS client produces.
type LocalClient struct {
	root string
}

// NewLocalClient creates a filesystem-backed storage client rooted at dir
func NewLocalClient(dir string) (*LocalClient, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", dir, err)
	}
	return &LocalClient{root: dir}, nil
}

// Close implements StorageClient; local storage holds no resources
func (l *LocalClient) Close() error {
	return nil
}

// abs converts a storage-relative slash path to a filesystem path
func (l *LocalClient) abs(filePath string) string {
	return filepath.Join(l.root, filepath.FromSlash(filePath))
}

// StoreFile writes file data into the report folder for the timestamp
func (l *LocalClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	folder := l.abs(ReportFolder(timestamp))
	if err := os.MkdirAll(folder, 0755); err != nil {
		return fmt.Errorf("failed to create report folder %s: %w", folder, err)
	}

	target := filepath.Join(folder, filename)
	if err := os.WriteFile(target, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// GetFile reads a stored file by its storage-relative path
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(l.abs(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return data, nil
}

// FileExists reports whether a file exists at the storage-relative path
func (l *LocalClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	_, err := os.Stat(l.abs(filePath))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", filePath, err)
}

// ListReports returns report index paths, newest first, up to limit.
// A missing reports directory means no reports yet, not an error.
func (l *LocalClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	root := filepath.Join(l.root, "reports")
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var indexes []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || d.Name() != "index.html" {
			return nil
		}
		rel, err := filepath.Rel(l.root, p)
		if err != nil {
			return err
		}
		indexes = append(indexes, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reports directory: %w", err)
	}

	// Folder names encode the timestamp, so reverse lexical order is
	// newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(indexes)))
	if limit > 0 && len(indexes) > limit {
		indexes = indexes[:limit]
	}
	return indexes, nil
}

// GetLatestReport returns the path of the most recent report index
func (l *LocalClient) GetLatestReport(ctx context.Context) (string, error) {
	indexes, err := l.ListReports(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(indexes) == 0 {
		return "", fmt.Errorf("no reports found")
	}
	return indexes[0], nil
}
