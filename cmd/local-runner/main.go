package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/datagen"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/dataset"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/reports"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/validation"
)

// LocalRunner generates a dashboard without a server or remote storage
type LocalRunner struct {
	provider *dataset.Provider
	dataDir  string
}

func NewLocalRunner(dataDir, baseURL string) *LocalRunner {
	return &LocalRunner{
		provider: dataset.NewProvider(dataDir, baseURL),
		dataDir:  dataDir,
	}
}

func (lr *LocalRunner) GenerateTestDashboard(hub, outputDir string) error {
	ctx := context.Background()
	startTime := time.Now()

	log.Println("🚀 Starting local dashboard generation...")

	// Load the three datasets
	log.Printf("📡 Loading datasets from %s...", lr.dataDir)
	flights := lr.provider.Flights(hub)
	enrollment := lr.provider.University(ctx)
	happiness := lr.provider.Happiness(ctx)

	log.Printf("✅ Datasets loaded:")
	log.Printf("   Flights (%s): %d rows, origin=%s", hub, flights.Table.NumRows(), flights.Origin)
	log.Printf("   Enrollment: %d rows, origin=%s", enrollment.Table.NumRows(), enrollment.Origin)
	log.Printf("   Happiness: %d rows, origin=%s", happiness.Table.NumRows(), happiness.Origin)

	// Run analytics
	log.Println("📊 Running analytics...")
	data, err := analytics.BuildDashboardData(hub, flights, enrollment, happiness)
	if err != nil {
		return fmt.Errorf("analytics failed: %w", err)
	}

	// Validate source files
	log.Println("🔍 Validating data files...")
	validationResults := validation.ValidateDataDir(lr.dataDir)

	// Create timestamped directory for this run
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	reportDir := filepath.Join(outputDir, timestamp)
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	// Generate all dashboard files; chart PNGs land in reportDir
	log.Println("🎨 Generating dashboard files...")
	fileGenerator := reports.NewFileGenerator(reportDir)
	files, err := fileGenerator.GenerateAllFiles(ctx, data, validationResults)
	if err != nil {
		return fmt.Errorf("file generation failed: %w", err)
	}

	// Save numbered pipeline artifacts
	datasetsJSON, _ := json.MarshalIndent(datasetSummary(hub, flights, enrollment, happiness), "", "  ")
	datasetsPath := filepath.Join(reportDir, "01_datasets.json")
	if err := os.WriteFile(datasetsPath, datasetsJSON, 0644); err != nil {
		log.Printf("Failed to save dataset summary: %v", err)
	}

	analyticsPath := filepath.Join(reportDir, "02_analytics.json")
	if err := os.WriteFile(analyticsPath, files.JSONFiles["dashboard_data.json"], 0644); err != nil {
		log.Printf("Failed to save analytics data: %v", err)
	}

	validationPath := filepath.Join(reportDir, "03_validation.json")
	if err := os.WriteFile(validationPath, files.JSONFiles["validation_report.json"], 0644); err != nil {
		log.Printf("Failed to save validation report: %v", err)
	}

	htmlPath := filepath.Join(reportDir, "04_dashboard.html")
	if err := os.WriteFile(htmlPath, []byte(files.HTMLContent), 0644); err != nil {
		return fmt.Errorf("failed to save dashboard HTML: %w", err)
	}

	// Save explorer pages and markdown source alongside
	for filename, content := range files.AssetFiles {
		path := filepath.Join(reportDir, filename)
		if err := os.WriteFile(path, content, 0644); err != nil {
			log.Printf("Failed to save %s: %v", filename, err)
		}
	}

	duration := time.Since(startTime)
	log.Printf("🎉 Dashboard generation completed in %v", duration)
	log.Printf("📁 Report directory: %s", reportDir)
	log.Printf("📄 Files saved:")
	log.Printf("   - Dataset Summary: %s", datasetsPath)
	log.Printf("   - Analytics Data: %s", analyticsPath)
	log.Printf("   - Validation Report: %s", validationPath)
	log.Printf("   - Dashboard: %s", htmlPath)
	log.Printf("🌐 Open in browser: file://%s/%s", mustGetWD(), htmlPath)

	summary := map[string]interface{}{
		"status":      "success",
		"hub":         hub,
		"report_dir":  reportDir,
		"duration_ms": duration.Milliseconds(),
		"report_size": len(files.HTMLContent),
		"chart_files": len(files.ChartFiles),
		"timestamp":   data.GeneratedAt.Format(time.RFC3339),
		"data_summary": map[string]interface{}{
			"flight_rows":     flights.Table.NumRows(),
			"enrollment_rows": enrollment.Table.NumRows(),
			"happiness_rows":  happiness.Table.NumRows(),
			"destinations":    len(data.Routes.Destinations),
			"mean_happiness":  data.HappinessStats.MeanScore,
		},
	}

	summaryJSON, _ := json.MarshalIndent(summary, "", "  ")
	log.Printf("📊 Generation Summary:\n%s", summaryJSON)

	return nil
}

func datasetSummary(hub string, flights, enrollment, happiness *models.Dataset) map[string]interface{} {
	describe := func(d *models.Dataset) map[string]interface{} {
		return map[string]interface{}{
			"origin":      d.Origin,
			"rows":        d.Table.NumRows(),
			"source_path": d.SourcePath,
		}
	}
	return map[string]interface{}{
		"hub":        hub,
		"flights":    describe(flights),
		"enrollment": describe(enrollment),
		"happiness":  describe(happiness),
	}
}

func mustGetWD() string {
	wd, err := os.Getwd()
	if err != nil {
		return "/tmp"
	}
	return wd
}

func main() {
	hub := os.Getenv("HUB")
	if hub == "" {
		hub = "JFK"
	}
	if !datagen.IsHub(hub) {
		log.Fatalf("❌ Unknown hub airport: %s (known: JFK, ATL, MIA, BOS, PHL)", hub)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "local_test_output"
	}

	runner := NewLocalRunner(dataDir, os.Getenv("DATA_BASE_URL"))
	if err := runner.GenerateTestDashboard(hub, outputDir); err != nil {
		log.Fatalf("❌ Dashboard generation failed: %v", err)
	}
}
