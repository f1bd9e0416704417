package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Discovery  DiscoveryConfig  `yaml:"discovery" json:"discovery" jsonschema:"description=Feed discovery configuration"`
	Parser     ParserConfig     `yaml:"parser" json:"parser" jsonschema:"description=Feed parser configuration"`
	Refresh    RefreshConfig    `yaml:"refresh" json:"refresh" jsonschema:"description=Article refresh configuration"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full-text extraction configuration"`
}

// ServerConfig holds http api settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedhawk.db?mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// DiscoveryConfig holds feed discovery settings
type DiscoveryConfig struct {
	ProbeTimeout time.Duration `yaml:"probe_timeout" json:"probe_timeout" jsonschema:"default=5s,description=Timeout of a single HEAD probe"`
	PageTimeout  time.Duration `yaml:"page_timeout" json:"page_timeout" jsonschema:"default=10s,description=Timeout of an html page fetch"`
	MaxResults   int           `yaml:"max_results" json:"max_results" jsonschema:"default=50,minimum=1,description=Maximum search results"`
	MaxWorkers   int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=8,minimum=1,description=Concurrent discovery strategies"`
	Catalog      string        `yaml:"catalog" json:"catalog" jsonschema:"description=Path to a catalog yaml replacing the embedded one"`
}

// ParserConfig holds feed fetch settings
type ParserConfig struct {
	ConnectTimeout time.Duration `yaml:"connect_timeout" json:"connect_timeout" jsonschema:"default=10s,description=Connect timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout" json:"read_timeout" jsonschema:"default=15s,description=Read timeout"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=FeedHawk RSS Reader 1.0,description=User agent for outgoing requests"`
}

// RefreshConfig holds settings of article ingestion
type RefreshConfig struct {
	Enabled     bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Refresh all active sources in background"`
	Interval    time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Background refresh interval"`
	MaxWorkers  int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,minimum=1,description=Feeds parsed concurrently"`
	MaxArticles int           `yaml:"max_articles" json:"max_articles" jsonschema:"default=50,minimum=1,description=Maximum articles stored per refresh run"`
	MaxErrors   int           `yaml:"max_errors" json:"max_errors" jsonschema:"default=10,minimum=1,description=Consecutive refresh failures before a source is deactivated"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full-text extraction of new articles"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent extractions"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=FeedHawk RSS Reader 1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to replace feed content"`
}

// GetServerConfig returns server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Config{Refresh: RefreshConfig{Enabled: true}}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finalize(&cfg)
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg, _ := finalize(&Config{Refresh: RefreshConfig{Enabled: true}})
	return cfg
}

func finalize(cfg *Config) (*Config, error) {
	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedhawk.db?mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// discovery
	if cfg.Discovery.ProbeTimeout == 0 {
		cfg.Discovery.ProbeTimeout = 5 * time.Second
	}
	if cfg.Discovery.PageTimeout == 0 {
		cfg.Discovery.PageTimeout = 10 * time.Second
	}
	if cfg.Discovery.MaxResults == 0 {
		cfg.Discovery.MaxResults = 50
	}
	if cfg.Discovery.MaxWorkers == 0 {
		cfg.Discovery.MaxWorkers = 8
	}

	// parser
	if cfg.Parser.ConnectTimeout == 0 {
		cfg.Parser.ConnectTimeout = 10 * time.Second
	}
	if cfg.Parser.ReadTimeout == 0 {
		cfg.Parser.ReadTimeout = 15 * time.Second
	}
	if cfg.Parser.UserAgent == "" {
		cfg.Parser.UserAgent = "FeedHawk RSS Reader 1.0"
	}

	// refresh
	if cfg.Refresh.Interval == 0 {
		cfg.Refresh.Interval = 30 * time.Minute
	}
	if cfg.Refresh.MaxWorkers == 0 {
		cfg.Refresh.MaxWorkers = 5
	}
	if cfg.Refresh.MaxArticles == 0 {
		cfg.Refresh.MaxArticles = 50
	}
	if cfg.Refresh.MaxErrors == 0 {
		cfg.Refresh.MaxErrors = 10
	}

	// extraction
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.MaxConcurrent == 0 {
		cfg.Extraction.MaxConcurrent = 5
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = cfg.Parser.UserAgent
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Discovery.ProbeTimeout < 100*time.Millisecond {
		return fmt.Errorf("discovery.probe_timeout must be at least 100ms")
	}
	if cfg.Discovery.MaxResults < 1 {
		return fmt.Errorf("discovery.max_results must be at least 1")
	}
	if cfg.Discovery.MaxWorkers < 1 {
		return fmt.Errorf("discovery.max_workers must be at least 1")
	}
	if cfg.Refresh.MaxWorkers < 1 {
		return fmt.Errorf("refresh.max_workers must be at least 1")
	}
	if cfg.Refresh.MaxArticles < 1 {
		return fmt.Errorf("refresh.max_articles must be at least 1")
	}
	if cfg.Refresh.MaxErrors < 1 {
		return fmt.Errorf("refresh.max_errors must be at least 1")
	}
	if cfg.Refresh.Enabled && cfg.Refresh.Interval < time.Minute {
		return fmt.Errorf("refresh.interval must be at least 1 minute")
	}
	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction min_text_length must be non-negative")
		}
	}
	return nil
}
