package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Storage.validate(),
		validateTaxonomies(c.Taxonomies),
		validateEntries(c.Storage, c.Taxonomies),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if s.RateLimit.RPS < 0 {
		errs = append(errs, errors.New("server.rate_limit.rps must not be negative"))
	}
	if s.RateLimit.RPS > 0 && s.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("server.rate_limit.burst must be at least 1 when rps is set, got %d", s.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverFlatFile:
		if s.Path == "" {
			return errors.New("storage.path must not be empty when driver is flatfile")
		}
		return nil
	default:
		return fmt.Errorf("storage.driver must be one of: memory, flatfile; got %q", s.Driver)
	}
}

func validateTaxonomies(taxonomies []TaxonomyConfig) error {
	var errs []error

	seen := make(map[string]bool, len(taxonomies))
	for i, tax := range taxonomies {
		switch {
		case tax.Handle == "":
			errs = append(errs, fmt.Errorf("taxonomies[%d].handle must not be empty", i))
		case strings.ContainsAny(tax.Handle, `/\:`):
			errs = append(errs, fmt.Errorf("taxonomies[%d].handle must not contain '/', '\\' or ':', got %q", i, tax.Handle))
		case seen[tax.Handle]:
			errs = append(errs, fmt.Errorf("taxonomies[%d].handle %q is declared twice", i, tax.Handle))
		}
		seen[tax.Handle] = true
	}

	return errors.Join(errs...)
}

func validateEntries(s StorageConfig, taxonomies []TaxonomyConfig) error {
	if len(s.Entries) == 0 {
		return nil
	}
	if s.Driver != DriverMemory {
		return fmt.Errorf("storage.entries is only supported by the memory driver, got %q", s.Driver)
	}

	declared := make(map[string]bool, len(taxonomies))
	for _, tax := range taxonomies {
		declared[tax.Handle] = true
	}

	var errs []error
	seen := make(map[string]bool, len(s.Entries))
	for i, entry := range s.Entries {
		switch {
		case entry.ID == "":
			errs = append(errs, fmt.Errorf("storage.entries[%d].id must not be empty", i))
		case seen[entry.ID]:
			errs = append(errs, fmt.Errorf("storage.entries[%d].id %q is declared twice", i, entry.ID))
		}
		seen[entry.ID] = true

		for _, handle := range slices.Sorted(maps.Keys(entry.Terms)) {
			if !declared[handle] {
				errs = append(errs, fmt.Errorf("storage.entries[%d].terms references unknown taxonomy %q", i, handle))
			}
		}
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
