package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("KIDDOS")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine, defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	apiKey := viper.GetString("youtube.api_key")
	if apiKey == "" || strings.HasPrefix(apiKey, "YOUR_") || apiKey == "changeme" {
		if isProduction {
			return fmt.Errorf("invalid YouTube API key: cannot use placeholder values in production")
		}
		fmt.Println("Warning: YouTube API key is missing or using a placeholder value")
	}

	// Auto-correct invalid refresh settings
	if viper.GetInt("refresh.max_concurrent_syncs") <= 0 {
		viper.Set("refresh.max_concurrent_syncs", 5)
	}
	if viper.GetInt("catalog.default_cache_duration_minutes") <= 0 {
		viper.Set("catalog.default_cache_duration_minutes", 360)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/kiddos.db")
	viper.SetDefault("database.log_queries", false)

	// YouTube Data API defaults
	viper.SetDefault("youtube.timeout", 10*time.Second)
	viper.SetDefault("youtube.max_results", 50)
	viper.SetDefault("youtube.rate_limit", 10)
	viper.SetDefault("youtube.user_agent", "KiddosAPI/1.0")

	// Catalog defaults
	viper.SetDefault("catalog.default_cache_duration_minutes", 360)
	viper.SetDefault("catalog.min_video_duration_seconds", 600)

	// Refresh defaults
	viper.SetDefault("refresh.max_concurrent_syncs", 5)
	viper.SetDefault("refresh.sync_timeout", 30*time.Second)
	viper.SetDefault("refresh.batch_timeout", 5*time.Minute)
	viper.SetDefault("refresh.max_lease_age", 10*time.Minute)
}
