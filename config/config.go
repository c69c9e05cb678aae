package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Matching MatchingConfig
	Scrape   ScrapeConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds listings API and sync configuration
type CatalogConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	PageSize        int           `mapstructure:"page_size"`
	MaxRetries      int           `mapstructure:"max_retries"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	SnapshotPath    string        `mapstructure:"snapshot_path"`
}

// MatchingConfig holds fuzzy matching configuration.
// MinScore is the single source of truth for the acceptance threshold; the
// boosts apply only in the ranked-filter mode, on the 0-100 scale.
type MatchingConfig struct {
	MinScore      int  `mapstructure:"min_score"`
	ProducerBoost int  `mapstructure:"producer_boost"`
	YearBoost     int  `mapstructure:"year_boost"`
	EnableDebug   bool `mapstructure:"enable_debug"`
}

// ScrapeConfig holds remote scrape service configuration
type ScrapeConfig struct {
	ServiceURL string        `mapstructure:"service_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dramfinder/")

	// Environment variable settings
	v.SetEnvPrefix("DRAMFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*"})

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://services.baxus.co/api/search")
	v.SetDefault("catalog.page_size", 1000)
	v.SetDefault("catalog.max_retries", 3)
	v.SetDefault("catalog.refresh_interval", "24h")
	v.SetDefault("catalog.snapshot_path", "baxus_catalog.json")

	// Matching defaults
	v.SetDefault("matching.min_score", 75)
	v.SetDefault("matching.producer_boost", 10)
	v.SetDefault("matching.year_boost", 10)
	v.SetDefault("matching.enable_debug", false)

	// Scrape defaults
	v.SetDefault("scrape.service_url", "http://localhost:8000/scrape")
	v.SetDefault("scrape.timeout", "60s")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set DRAMFINDER_CATALOG_BASE_URL)")
	}

	if config.Catalog.PageSize <= 0 {
		return fmt.Errorf("catalog page size must be positive, got: %d", config.Catalog.PageSize)
	}

	if config.Catalog.MaxRetries <= 0 {
		return fmt.Errorf("catalog max retries must be positive, got: %d", config.Catalog.MaxRetries)
	}

	if config.Matching.MinScore < 0 || config.Matching.MinScore > 100 {
		return fmt.Errorf("matching min score must be in 0-100, got: %d", config.Matching.MinScore)
	}

	return nil
}
