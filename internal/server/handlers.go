package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/config"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/datagen"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/storage"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/validation"
)

// HandleRoot redirects to the latest dashboard or serves the landing page
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	latest, err := s.storage.GetLatestReport(r.Context())
	if err != nil {
		logger.Debugf("No dashboards available yet: %v", err)
		s.serveInitialPage(w)
		return
	}

	logger.Debugf("Redirecting to latest dashboard: %s", latest)
	http.Redirect(w, r, "/files/"+latest, http.StatusFound)
}

// serveInitialPage shows the landing page before any dashboard exists
func (s *Server) serveInitialPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	w.Write(loadInitialPage())
}

// HandleHealth provides the health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"version":   config.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"storage": "ok",
			"config":  "ok",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleGenerate triggers dashboard generation for a hub (HTTP handler)
func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	hub := r.URL.Query().Get("hub")
	if hub == "" {
		hub = s.cfg.DefaultHub
	}
	if !datagen.IsHub(hub) {
		http.Error(w, fmt.Sprintf("Unknown hub airport: %s", hub), http.StatusBadRequest)
		return
	}

	// Try to acquire the mutex - if already locked, reject immediately
	if !s.generateMutex.TryLock() {
		logger.Warnf("Dashboard generation already in progress, rejecting new request")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Dashboard generation already in progress",
			"message": "Another generation is currently running. Please wait for it to complete before starting a new one.",
			"status":  "conflict",
		})
		return
	}
	defer s.generateMutex.Unlock()

	logger.Infof("Starting dashboard generation for hub %s...", hub)

	result, err := s.service.GenerateDashboard(r.Context(), hub)
	if err != nil {
		logger.Errorf("Dashboard generation failed: %v", err)
		http.Error(w, "Dashboard generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	logger.Infof("Dashboard generation completed successfully")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// HandleValidate runs the CSV validation suite over the data directory
func (s *Server) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	results := validation.ValidateDataDir(s.cfg.DataDir)

	response := map[string]interface{}{
		"dataDir":   s.cfg.DataDir,
		"results":   results,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleListReports lists recent dashboards
func (s *Server) HandleListReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Optional ?limit= parameter, capped to keep responses bounded.
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || parsedLimit != 1 {
			limit = 10
		}
		if limit > 100 {
			limit = 100 // Cap at 100
		}
	}

	reportList, err := s.storage.ListReports(r.Context(), limit)
	if err != nil {
		logger.Errorf("Failed to list reports: %v", err)
		http.Error(w, "Failed to list reports: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"reports":   reportList,
		"count":     len(reportList),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleFileProxy serves report files through the storage client
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}

	// Reject traversal attempts before touching storage.
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.storage.GetFile(r.Context(), filePath)
	if err != nil {
		logger.Debugf("Failed to get file %s from storage: %v", filePath, err)
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(filePath))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(fileData)
}
