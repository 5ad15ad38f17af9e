package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DeploymentMode selects where generated reports are stored.
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// Config holds all configuration for the dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8501"`

	// Deployment configuration
	DeploymentMode DeploymentMode `env:"DEPLOYMENT_MODE,default=local"`
	GCSBucket      string         `env:"GCS_BUCKET"`

	// Data source configuration
	DataDir     string `env:"DATA_DIR,default=./data"`
	DataBaseURL string `env:"DATA_BASE_URL"`
	DefaultHub  string `env:"DEFAULT_HUB,default=JFK"`

	// Local report storage
	ReportsDir string `env:"REPORTS_DIR,default=./reports"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=auto"`
}

// Load reads configuration from the environment and validates it
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the cross-field constraints that env tags cannot express.
func (c *Config) Validate() error {
	switch c.DeploymentMode {
	case DeploymentLocal:
	case DeploymentGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when DEPLOYMENT_MODE is %s", DeploymentGCS)
		}
	default:
		return fmt.Errorf("unsupported deployment mode: %s", c.DeploymentMode)
	}
	return nil
}
