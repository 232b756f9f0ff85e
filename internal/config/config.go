// Package config handles application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	CatalogDir     string `envconfig:"CATALOG_DIR" default:"./content/services"`
	ComparisonsDir string `envconfig:"COMPARISONS_DIR" default:"./content/comparisons"`
	DatabasePath   string `envconfig:"DATABASE_PATH" default:"./data/catalog.db"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	SiteURL        string `envconfig:"SITE_URL" default:"https://blum228.github.io/AIhub"`
	StrictFilters  bool   `envconfig:"STRICT_FILTERS" default:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.CatalogDir == "" {
		return nil, fmt.Errorf("CATALOG_DIR must not be empty")
	}
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must not be empty")
	}
	return &cfg, nil
}
