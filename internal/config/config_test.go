package config

import (
	"context"
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(*Config)
	}{
		{
			name:        "defaults",
			envVars:     map[string]string{},
			expectError: false,
			validate: func(cfg *Config) {
				if cfg.Port != "8501" {
					t.Errorf("Expected default Port to be '8501', got '%s'", cfg.Port)
				}
				if cfg.DeploymentMode != DeploymentLocal {
					t.Errorf("Expected default DeploymentMode to be 'local', got '%s'", cfg.DeploymentMode)
				}
				if cfg.DataDir != "./data" {
					t.Errorf("Expected default DataDir to be './data', got '%s'", cfg.DataDir)
				}
				if cfg.DataBaseURL != "" {
					t.Errorf("Expected default DataBaseURL to be empty, got '%s'", cfg.DataBaseURL)
				}
				if cfg.DefaultHub != "JFK" {
					t.Errorf("Expected default DefaultHub to be 'JFK', got '%s'", cfg.DefaultHub)
				}
				if cfg.ReportsDir != "./reports" {
					t.Errorf("Expected default ReportsDir to be './reports', got '%s'", cfg.ReportsDir)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "auto" {
					t.Errorf("Expected default LogFormat to be 'auto', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name: "custom configuration values",
			envVars: map[string]string{
				"PORT":            "9000",
				"DEPLOYMENT_MODE": "gcs",
				"GCS_BUCKET":      "test-bucket",
				"DATA_DIR":        "/custom/data",
				"DATA_BASE_URL":   "https://data.example.com/csv",
				"DEFAULT_HUB":     "ATL",
				"REPORTS_DIR":     "/custom/reports",
				"LOG_LEVEL":       "debug",
				"LOG_FORMAT":      "json",
			},
			expectError: false,
			validate: func(cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("Expected Port to be '9000', got '%s'", cfg.Port)
				}
				if cfg.DeploymentMode != DeploymentGCS {
					t.Errorf("Expected DeploymentMode to be 'gcs', got '%s'", cfg.DeploymentMode)
				}
				if cfg.GCSBucket != "test-bucket" {
					t.Errorf("Expected GCSBucket to be 'test-bucket', got '%s'", cfg.GCSBucket)
				}
				if cfg.DataDir != "/custom/data" {
					t.Errorf("Expected DataDir to be '/custom/data', got '%s'", cfg.DataDir)
				}
				if cfg.DataBaseURL != "https://data.example.com/csv" {
					t.Errorf("Expected custom DataBaseURL, got '%s'", cfg.DataBaseURL)
				}
				if cfg.DefaultHub != "ATL" {
					t.Errorf("Expected DefaultHub to be 'ATL', got '%s'", cfg.DefaultHub)
				}
				if cfg.ReportsDir != "/custom/reports" {
					t.Errorf("Expected ReportsDir to be '/custom/reports', got '%s'", cfg.ReportsDir)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("Expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "json" {
					t.Errorf("Expected LogFormat to be 'json', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name: "gcs mode without bucket",
			envVars: map[string]string{
				"DEPLOYMENT_MODE": "gcs",
			},
			expectError: true,
		},
		{
			name: "unsupported deployment mode",
			envVars: map[string]string{
				"DEPLOYMENT_MODE": "s3",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load(context.Background())

			if tt.expectError && err == nil {
				t.Errorf("Expected error but got none")
				return
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
				return
			}

			if !tt.expectError && tt.validate != nil {
				tt.validate(cfg)
			}

			clearEnv()
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{"local without bucket", Config{DeploymentMode: DeploymentLocal}, false},
		{"gcs with bucket", Config{DeploymentMode: DeploymentGCS, GCSBucket: "b"}, false},
		{"gcs without bucket", Config{DeploymentMode: DeploymentGCS}, true},
		{"empty mode", Config{}, true},
		{"unknown mode", Config{DeploymentMode: "azure"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no validation error, got: %v", err)
			}
		})
	}
}

func TestLoadWithContext(t *testing.T) {
	// envconfig does not use the context for cancellation
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clearEnv()

	cfg, err := Load(ctx)
	if err != nil {
		t.Errorf("Expected no error with cancelled context, got: %v", err)
	}
	if cfg == nil {
		t.Error("Expected config to be loaded even with cancelled context")
	}

	clearEnv()
}

// clearEnv removes every configuration variable so defaults apply.
func clearEnv() {
	envVars := []string{
		"PORT", "DEPLOYMENT_MODE", "GCS_BUCKET", "DATA_DIR", "DATA_BASE_URL",
		"DEFAULT_HUB", "REPORTS_DIR", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, env := range envVars {
		os.Unsetenv(env)
	}
}
