// Package config provides configuration management for the crawler.
// It defines configuration structures and default values for crawling parameters.
package config

import (
	"net/url"
	"time"
)

// MaxPagesCeiling is the largest page budget a single run may request.
const MaxPagesCeiling = 100

// MaxDelay is the longest allowed pause between page visits.
const MaxDelay = 2 * time.Second

// CrawlConfig holds crawler configuration
type CrawlConfig struct {
	// Basic crawling parameters
	SeedURL         string        `mapstructure:"seed_url" yaml:"seed_url"`                 // Starting URL for the crawl
	MaxPages        int           `mapstructure:"max_pages" yaml:"max_pages"`               // Hard cap on distinct visited URLs (1-100)
	RequestDelay    time.Duration `mapstructure:"request_delay" yaml:"request_delay"`       // Pause after every visit attempt
	RequestTimeout  time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`   // HTTP request timeout
	UserAgent       string        `mapstructure:"user_agent" yaml:"user_agent"`             // HTTP User-Agent header
	IncludeExternal bool          `mapstructure:"include_external" yaml:"include_external"` // Follow links outside the seed's host

	// Report output
	OutputPath   string `mapstructure:"output_path" yaml:"output_path"`     // CSV report path (empty = no CSV)
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"` // SQLite report path (empty = no database)

	// Logging
	LogLevel string `mapstructure:"log_level" yaml:"log_level"` // debug, info, warn, error
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`   // Log file path (empty = console only)
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *CrawlConfig {
	return &CrawlConfig{
		MaxPages:       10,
		RequestDelay:   500 * time.Millisecond,
		RequestTimeout: 10 * time.Second,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		LogLevel:       "info",
	}
}

// Validate checks if the configuration is valid
func (c *CrawlConfig) Validate() error {
	if c.SeedURL == "" {
		return ErrMissingSeedURL
	}

	u, err := url.Parse(c.SeedURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidSeedURL
	}

	if c.MaxPages < 1 || c.MaxPages > MaxPagesCeiling {
		return ErrInvalidMaxPages
	}

	if c.RequestDelay < 0 || c.RequestDelay > MaxDelay {
		return ErrInvalidDelay
	}

	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}

// SeedHost returns the host of the seed URL. It is only meaningful
// after Validate has succeeded.
func (c *CrawlConfig) SeedHost() string {
	u, err := url.Parse(c.SeedURL)
	if err != nil {
		return ""
	}
	return u.Host
}
