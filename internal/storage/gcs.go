package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
)

// GCSClient stores reports as objects in a Google Cloud Storage bucket
type GCSClient struct {
	client *storage.Client
	bucket string
}

// NewGCSClient creates a storage client backed by the named bucket.
// Credentials come from the environment (service account or ADC).
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSClient{client: client, bucket: bucketName}, nil
}

// Close releases the underlying GCS connection
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// object returns a handle for the given object path in the report bucket
func (g *GCSClient) object(objectPath string) *storage.ObjectHandle {
	return g.client.Bucket(g.bucket).Object(objectPath)
}

// StoreFile uploads file data into the report folder for the timestamp
func (g *GCSClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	objectPath := ReportFolder(timestamp) + "/" + filename
	logger.Debugf("Uploading gs://%s/%s", g.bucket, objectPath)

	w := g.object(objectPath).NewWriter(ctx)
	w.ContentType = ContentType(filename)
	w.CacheControl = "public, max-age=3600"
	w.Metadata = map[string]string{
		"generated-at": timestamp.UTC().Format(time.RFC3339),
		"filename":     filename,
	}

	if _, err := w.Write(fileData); err != nil {
		w.Close()
		return fmt.Errorf("failed to upload %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize upload of %s: %w", objectPath, err)
	}
	return nil
}

// GetFile downloads an object by its path in the bucket
func (g *GCSClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	r, err := g.object(filePath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return data, nil
}

// FileExists reports whether an object exists in the bucket
func (g *GCSClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	_, err := g.object(filePath).Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", filePath, err)
}

// ListReports returns report index paths, newest first, up to limit
func (g *GCSClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: "reports/"})

	var indexes []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", err)
		}
		if strings.HasSuffix(attrs.Name, "/index.html") {
			indexes = append(indexes, attrs.Name)
		}
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
func (g *GCSClient) GetLatestReport(ctx context.Context) (string, error) {
	indexes, err := g.ListReports(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(indexes) == 0 {
		return "", fmt.Errorf("no reports found")
	}
	return indexes[0], nil
}
