package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/storage"
)

// MockStorageClient is an in-memory StorageClient for tests. Objects are
// keyed by their full storage path, mirroring the real backends.
type MockStorageClient struct {
	mu      sync.Mutex
	objects map[string][]byte

	// StoreErr, when set, is returned by every StoreFile call
	StoreErr error
}

var _ storage.StorageClient = (*MockStorageClient)(nil)

// NewMockStorageClient creates an empty in-memory storage client
func NewMockStorageClient() *MockStorageClient {
	return &MockStorageClient{
		objects: make(map[string][]byte),
	}
}

// Close is a no-op
func (m *MockStorageClient) Close() error {
	return nil
}

// StoreFile stores file data under the timestamped report folder path
func (m *MockStorageClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	if m.StoreErr != nil {
		return m.StoreErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	objectPath := storage.ReportFolder(timestamp) + "/" + filename
	buf := make([]byte, len(fileData))
	copy(buf, fileData)
	m.objects[objectPath] = buf
	return nil
}

// GetFile retrieves a stored object by its full path
func (m *MockStorageClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.objects[filePath]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	return data, nil
}

// FileExists reports whether an object exists at the given path
func (m *MockStorageClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.objects[filePath]
	return ok, nil
}

// ListReports returns stored report index pages, newest first
func (m *MockStorageClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var reports []string
	for path := range m.objects {
		if strings.HasSuffix(path, "/index.html") {
			reports = append(reports, path)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(reports)))
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

// GetLatestReport returns the path of the most recent report
func (m *MockStorageClient) GetLatestReport(ctx context.Context) (string, error) {
	reports, err := m.ListReports(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(reports) == 0 {
		return "", fmt.Errorf("no reports found")
	}
	return reports[0], nil
}

// Objects returns a sorted snapshot of all stored object paths
func (m *MockStorageClient) Objects() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.objects))
	for path := range m.objects {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
