package dataset

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// Fetcher downloads CSV sources over HTTP.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a fetcher with retry-friendly defaults.
func NewFetcher() *Fetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &Fetcher{client: client}
}

// FetchCSV downloads a CSV document and parses it into a Table.
func (f *Fetcher) FetchCSV(ctx context.Context, url string) (*models.Table, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch CSV from %s: %w", url, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("CSV source %s returned status %d", url, resp.StatusCode())
	}

	table, err := ParseCSV(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV from %s: %w", url, err)
	}
	return table, nil
}
