// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ExtractorConfig configures the primary (remote) intent extraction strategy.
// An empty APIKey disables the remote strategy entirely and is not an error:
// the deterministic fallback serves every request.
type ExtractorConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	Model      string `mapstructure:"model"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
	MaxRetries int    `mapstructure:"max_retries"`
}

func (e ExtractorConfig) RemoteEnabled() bool {
	return e.APIKey != ""
}

func (e ExtractorConfig) TimeoutDuration() time.Duration {
	if e.Timeout <= 0 {
		return 3 * time.Second
	}
	return time.Duration(e.Timeout) * time.Millisecond
}

type PipelineConfig struct {
	MaxResults           int     `mapstructure:"max_results"`
	SimilarityThreshold  float64 `mapstructure:"similarity_threshold"`
	PersonalizationLevel string  `mapstructure:"personalization_level"`
	HistoryLimit         int     `mapstructure:"history_limit"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	if cfg.Pipeline.MaxResults <= 0 {
		return fmt.Errorf("pipeline.max_results must be positive, got %d", cfg.Pipeline.MaxResults)
	}
	if cfg.Pipeline.SimilarityThreshold < 0 || cfg.Pipeline.SimilarityThreshold >= 1 {
		return fmt.Errorf("pipeline.similarity_threshold must be in [0,1), got %f", cfg.Pipeline.SimilarityThreshold)
	}
	switch cfg.Pipeline.PersonalizationLevel {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("pipeline.personalization_level must be low|medium|high, got %q", cfg.Pipeline.PersonalizationLevel)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "layout-engine"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "dev"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}
	if cfg.Extractor.BaseURL == "" {
		cfg.Extractor.BaseURL = "https://api.layout-intent.dev"
	}
	if cfg.Extractor.Timeout == 0 {
		cfg.Extractor.Timeout = 3000
	}
	if cfg.Extractor.MaxRetries == 0 {
		cfg.Extractor.MaxRetries = 2
	}
	if cfg.Pipeline.MaxResults == 0 {
		cfg.Pipeline.MaxResults = 5
	}
	if cfg.Pipeline.SimilarityThreshold == 0 {
		cfg.Pipeline.SimilarityThreshold = 0.3
	}
	if cfg.Pipeline.PersonalizationLevel == "" {
		cfg.Pipeline.PersonalizationLevel = "medium"
	}
	if cfg.Pipeline.HistoryLimit == 0 {
		cfg.Pipeline.HistoryLimit = 100
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
