package server

import (
	"net/http"
	"sync"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/config"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/reports"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/storage"
)

// Server wires the HTTP API to the dashboard service and storage
type Server struct {
	cfg     *config.Config
	service *reports.DashboardService
	storage storage.StorageClient

	// Serializes dashboard generation; concurrent requests are rejected
	generateMutex sync.Mutex
}

// NewServer wires the dashboard service and storage into a server
func NewServer(cfg *config.Config, storageClient storage.StorageClient) *Server {
	return &Server{
		cfg:     cfg,
		service: reports.NewDashboardService(cfg, storageClient),
		storage: storageClient,
	}
}

// SetupRoutes builds the route table for the dashboard API
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/generate", s.HandleGenerate)
	mux.HandleFunc("/validate", s.HandleValidate)
	mux.HandleFunc("/reports", s.HandleListReports)
	mux.HandleFunc("/files/", s.HandleFileProxy)

	// Root last: redirect to the latest dashboard (catch-all)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close releases the storage client
func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
