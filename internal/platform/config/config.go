// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Storage    StorageConfig    `koanf:"storage"`
	Taxonomies []TaxonomyConfig `koanf:"taxonomies"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RequestTimeout bounds each API request; zero disables the deadline.
	RequestTimeout time.Duration   `koanf:"request_timeout"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig throttles API requests with a token bucket shared by all
// clients. An RPS of zero disables throttling.
type RateLimitConfig struct {
	RPS   float64 `koanf:"rps"`
	Burst int     `koanf:"burst"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StorageConfig selects where fieldsets, blueprints, and terms are kept.
type StorageConfig struct {
	// Driver is "memory" or "flatfile". The memory driver loses everything
	// on restart and is meant for development and tests.
	Driver string `koanf:"driver"`
	// Path is the flat-file root directory; unused by the memory driver.
	Path string `koanf:"path"`
	// Entries seeds the memory driver's entry references so term entry
	// counts are non-zero. The flatfile driver reads references from disk
	// and rejects this setting.
	Entries []EntryConfig `koanf:"entries"`
}

// EntryConfig is one entry and the terms it references, keyed by taxonomy
// handle.
type EntryConfig struct {
	ID    string              `koanf:"id"`
	Terms map[string][]string `koanf:"terms"`
}

// TaxonomyConfig declares a taxonomy registered at startup.
type TaxonomyConfig struct {
	Handle string `koanf:"handle"`
	Title  string `koanf:"title"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
