// Package config loads application settings from a YAML file,
// environment variables, and built-in defaults, in that order of
// precedence (highest first: environment).
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

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("STROLLCAST")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing config file is fine; defaults and env vars apply
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

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
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

	backend := viper.GetString("cache.backend")
	if backend != "filesystem" && backend != "nats" {
		return fmt.Errorf("invalid cache backend: %q (must be filesystem or nats)", backend)
	}
	if backend == "nats" && viper.GetString("cache.nats_url") == "" {
		return fmt.Errorf("cache.nats_url is required when cache.backend is nats")
	}

	provider := viper.GetString("synthesis.provider")
	if provider != "elevenlabs" && provider != "openai" {
		return fmt.Errorf("invalid synthesis provider: %q", provider)
	}

	// Auto-correct a nonsensical job timeout
	if viper.GetDuration("assembly.job_timeout") <= 0 {
		viper.Set("assembly.job_timeout", 60*time.Minute)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Cache.Backend != "filesystem" && c.Cache.Backend != "nats" {
		return fmt.Errorf("invalid cache backend: %q (must be filesystem or nats)", c.Cache.Backend)
	}

	if c.Assembly.JobTimeout <= 0 {
		c.Assembly.JobTimeout = 60 * time.Minute
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Cache index database defaults
	viper.SetDefault("database.path", "./data/segments.db")
	viper.SetDefault("database.log_queries", false)

	// Assembly defaults
	viper.SetDefault("assembly.ffmpeg_path", "ffmpeg")
	viper.SetDefault("assembly.job_timeout", 60*time.Minute)
	viper.SetDefault("assembly.temp_dir", os.TempDir())

	// Synthesis defaults
	viper.SetDefault("synthesis.base_url", "http://localhost:8001")
	viper.SetDefault("synthesis.provider", "elevenlabs")
	viper.SetDefault("synthesis.timeout", 2*time.Minute)
	viper.SetDefault("synthesis.pause_duration", 2*time.Second)

	// Segment cache defaults
	viper.SetDefault("cache.namespace", "segments")
	viper.SetDefault("cache.backend", "filesystem")
	viper.SetDefault("cache.dir", "./cache")
	viper.SetDefault("cache.bucket", "segment-audio")

	// Download defaults
	viper.SetDefault("download.max_size", int64(500*1024*1024))
	viper.SetDefault("download.timeout", 5*time.Minute)
	viper.SetDefault("download.user_agent", "EpisodeAPI/1.0")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
