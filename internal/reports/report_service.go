package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/config"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/dataset"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/datagen"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/storage"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/validation"
)

// DashboardService orchestrates the dashboard generation pipeline:
// load datasets, run analytics, validate source files, render all
// report files and push them to storage.
type DashboardService struct {
	cfg      *config.Config
	provider *dataset.Provider
	storage  storage.StorageClient
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(cfg *config.Config, storageClient storage.StorageClient) *DashboardService {
	return &DashboardService{
		cfg:      cfg,
		provider: dataset.NewProvider(cfg.DataDir, cfg.DataBaseURL),
		storage:  storageClient,
	}
}

// GenerateDashboard runs the complete generation pipeline for one hub
// and returns a result summary for API responses.
func (ds *DashboardService) GenerateDashboard(ctx context.Context, hub string) (map[string]interface{}, error) {
	if hub == "" {
		hub = ds.cfg.DefaultHub
	}
	if !datagen.IsHub(hub) {
		return nil, fmt.Errorf("unknown hub airport: %s", hub)
	}

	logger.Infof("Starting dashboard generation for hub %s...", hub)

	// Step 1: Load the three datasets
	flights := ds.provider.Flights(hub)
	enrollment := ds.provider.University(ctx)
	happiness := ds.provider.Happiness(ctx)
	logger.Infof("Datasets loaded: flights=%s enrollment=%s happiness=%s",
		flights.Origin, enrollment.Origin, happiness.Origin)

	// Step 2: Run analytics
	data, err := analytics.BuildDashboardData(hub, flights, enrollment, happiness)
	if err != nil {
		return nil, fmt.Errorf("analytics failed: %w", err)
	}

	// Step 3: Validate the source data files
	validationResults := validation.ValidateDataDir(ds.cfg.DataDir)

	// Step 4: Stage, generate and store all report files
	stagingDir := filepath.Join(os.TempDir(), fmt.Sprintf("dataflow_report_%d", time.Now().UnixNano()))
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	fileGenerator := NewFileGenerator(stagingDir)
	files, err := fileGenerator.GenerateAllFiles(ctx, data, validationResults)
	if err != nil {
		return nil, fmt.Errorf("failed to generate files: %w", err)
	}

	orchestrator := NewStorageOrchestrator(ds.storage)
	if err := orchestrator.StoreAllFiles(ctx, stagingDir, files, data.GeneratedAt); err != nil {
		return nil, fmt.Errorf("failed to store files: %w", err)
	}

	logger.Infof("Dashboard generation completed for hub %s (%d characters of HTML)", hub, len(files.HTMLContent))

	return map[string]interface{}{
		"status":     "success",
		"message":    fmt.Sprintf("Dashboard generated for hub %s", hub),
		"hub":        hub,
		"reportURL":  "/files/" + files.FolderPath + "/index.html",
		"folderPath": files.FolderPath,
		"timestamp":  data.GeneratedAt.Format(time.RFC3339),
		"datasets": map[string]string{
			"flights":    string(flights.Origin),
			"enrollment": string(enrollment.Origin),
			"happiness":  string(happiness.Origin),
		},
	}, nil
}
