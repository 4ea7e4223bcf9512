package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	YouTube     YouTubeConfig  `mapstructure:"youtube"`
	Catalog     CatalogConfig  `mapstructure:"catalog"`
	Refresh     RefreshConfig  `mapstructure:"refresh"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// YouTubeConfig contains YouTube Data API settings
type YouTubeConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxResults  int           `mapstructure:"max_results"`
	RateLimit   int           `mapstructure:"rate_limit"`
	UserAgent   string        `mapstructure:"user_agent"`
}

// CatalogConfig contains catalog read-path settings
type CatalogConfig struct {
	// Seed value for the cache_duration_minutes setting; the live value
	// is stored in the settings table and read on every staleness check.
	DefaultCacheDurationMinutes int `mapstructure:"default_cache_duration_minutes"`
	MinVideoDurationSeconds     int `mapstructure:"min_video_duration_seconds"`
}

// RefreshConfig contains coordinated refresh settings
type RefreshConfig struct {
	MaxConcurrentSyncs int           `mapstructure:"max_concurrent_syncs"`
	SyncTimeout        time.Duration `mapstructure:"sync_timeout"`
	BatchTimeout       time.Duration `mapstructure:"batch_timeout"`
	MaxLeaseAge        time.Duration `mapstructure:"max_lease_age"`
}
