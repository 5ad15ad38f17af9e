package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewFetcher(t *testing.T) {
	fetcher := NewFetcher()
	if fetcher == nil {
		t.Fatal("NewFetcher returned nil")
	}
	if fetcher.client == nil {
		t.Error("HTTP client not initialized")
	}
}

func TestFetchCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("a,b\n1,2\n3,4\n"))
	}))
	defer server.Close()

	fetcher := NewFetcher()
	table, err := fetcher.FetchCSV(context.Background(), server.URL+"/data.csv")
	if err != nil {
		t.Fatalf("FetchCSV returned error: %v", err)
	}
	if table.NumRows() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.NumRows())
	}
}

func TestFetchCSVErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewFetcher()
	if _, err := fetcher.FetchCSV(context.Background(), server.URL+"/missing.csv"); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestFetchCSVCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewFetcher()
	_, err := fetcher.FetchCSV(ctx, "http://127.0.0.1:0/unreachable.csv")
	if err == nil {
		t.Error("Expected error due to cancelled context, got nil")
	}
}

func TestFetchCSVMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("a,b\n1,\"unterminated\n"))
	}))
	defer server.Close()

	fetcher := NewFetcher()
	_, err := fetcher.FetchCSV(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected parse error for malformed CSV")
	}
	if !strings.Contains(err.Error(), "failed to parse CSV") {
		t.Errorf("Expected parse failure message, got: %v", err)
	}
}
