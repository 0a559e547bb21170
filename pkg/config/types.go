package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Assembly  AssemblyConfig  `mapstructure:"assembly"`
	Synthesis SynthesisConfig `mapstructure:"synthesis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Download  DownloadConfig  `mapstructure:"download"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains cache index database settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// AssemblyConfig contains episode assembly settings
type AssemblyConfig struct {
	FFmpegPath string        `mapstructure:"ffmpeg_path"`
	JobTimeout time.Duration `mapstructure:"job_timeout"`
	TempDir    string        `mapstructure:"temp_dir"`
}

// SynthesisConfig contains TTS backend settings
type SynthesisConfig struct {
	BaseURL       string            `mapstructure:"base_url"`
	Provider      string            `mapstructure:"provider"`
	Timeout       time.Duration     `mapstructure:"timeout"`
	Voices        map[string]string `mapstructure:"voices"`
	PauseDuration time.Duration     `mapstructure:"pause_duration"`
}

// CacheConfig contains segment cache settings
type CacheConfig struct {
	Namespace string `mapstructure:"namespace"`
	Backend   string `mapstructure:"backend"` // "filesystem" or "nats"
	Dir       string `mapstructure:"dir"`
	NatsURL   string `mapstructure:"nats_url"`
	Bucket    string `mapstructure:"bucket"`
}

// DownloadConfig contains segment transfer settings
type DownloadConfig struct {
	MaxSize   int64         `mapstructure:"max_size"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
