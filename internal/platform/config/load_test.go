package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Storage.Driver != config.DriverFlatFile {
		t.Errorf("Storage.Driver = %q, want %q", cfg.Storage.Driver, config.DriverFlatFile)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Telemetry.ServiceName != "content-blueprints" {
		t.Errorf("Telemetry.ServiceName = %q, want \"content-blueprints\" (from base)", cfg.Telemetry.ServiceName)
	}
	if len(cfg.Taxonomies) != 2 {
		t.Fatalf("len(Taxonomies) = %d, want 2 (from base)", len(cfg.Taxonomies))
	}
	if cfg.Taxonomies[0].Handle != "tags" || cfg.Taxonomies[0].Title != "Tags" {
		t.Errorf("Taxonomies[0] = %+v, want {Handle:tags Title:Tags}", cfg.Taxonomies[0])
	}
	if cfg.Taxonomies[1].Handle != "categories" {
		t.Errorf("Taxonomies[1].Handle = %q, want \"categories\"", cfg.Taxonomies[1].Handle)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideStorageDriver(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORAGE_DRIVER", "memory")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.Driver != config.DriverMemory {
		t.Errorf("Storage.Driver = %q, want %q (env override)", cfg.Storage.Driver, config.DriverMemory)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "log:\n  level: warn\n")
	writeFile(t, dir, "test.yaml", "storage:\n  driver: memory\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from base)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (default)", cfg.Log.Format)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s (default)", cfg.Server.ReadTimeout)
	}
	if len(cfg.Taxonomies) != 0 {
		t.Errorf("len(Taxonomies) = %d, want 0", len(cfg.Taxonomies))
	}
}

func TestLoad_StorageEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "taxonomies:\n  - handle: tags\n")
	writeFile(t, dir, "test.yaml", `storage:
  driver: memory
  entries:
    - id: hello-world
      terms:
        tags: [go, yaml]
    - id: release-notes
      terms:
        tags: [go]
`)

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(cfg.Storage.Entries) != 2 {
		t.Fatalf("len(Storage.Entries) = %d, want 2", len(cfg.Storage.Entries))
	}
	first := cfg.Storage.Entries[0]
	if first.ID != "hello-world" {
		t.Errorf("Entries[0].ID = %q, want \"hello-world\"", first.ID)
	}
	if got := first.Terms["tags"]; len(got) != 2 || got[0] != "go" || got[1] != "yaml" {
		t.Errorf("Entries[0].Terms[tags] = %v, want [go yaml]", got)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_RateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		limit   config.RateLimitConfig
		wantErr bool
	}{
		{name: "disabled", limit: config.RateLimitConfig{}, wantErr: false},
		{name: "enabled", limit: config.RateLimitConfig{RPS: 50, Burst: 10}, wantErr: false},
		{name: "negative rps", limit: config.RateLimitConfig{RPS: -1, Burst: 1}, wantErr: true},
		{name: "zero burst", limit: config.RateLimitConfig{RPS: 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			cfg.Server.RateLimit = tt.limit

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Storage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		storage config.StorageConfig
		wantErr bool
	}{
		{name: "memory without path", storage: config.StorageConfig{Driver: "memory"}},
		{name: "flatfile with path", storage: config.StorageConfig{Driver: "flatfile", Path: "content"}},
		{name: "flatfile without path", storage: config.StorageConfig{Driver: "flatfile"}, wantErr: true},
		{name: "unknown driver", storage: config.StorageConfig{Driver: "surreal"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			cfg.Storage = tt.storage

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Taxonomies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		taxonomies []config.TaxonomyConfig
		wantErr    bool
	}{
		{name: "none", taxonomies: nil},
		{name: "distinct", taxonomies: []config.TaxonomyConfig{{Handle: "tags"}, {Handle: "topics"}}},
		{name: "empty handle", taxonomies: []config.TaxonomyConfig{{Title: "Tags"}}, wantErr: true},
		{name: "slash in handle", taxonomies: []config.TaxonomyConfig{{Handle: "a/b"}}, wantErr: true},
		{name: "duplicate", taxonomies: []config.TaxonomyConfig{{Handle: "tags"}, {Handle: "tags"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			cfg.Taxonomies = tt.taxonomies

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_StorageEntries(t *testing.T) {
	t.Parallel()

	tagged := func(id string) config.EntryConfig {
		return config.EntryConfig{ID: id, Terms: map[string][]string{"tags": {"go"}}}
	}

	tests := []struct {
		name    string
		driver  string
		entries []config.EntryConfig
		wantErr string
	}{
		{name: "none", driver: "memory"},
		{name: "memory with entries", driver: "memory", entries: []config.EntryConfig{tagged("a"), tagged("b")}},
		{name: "flatfile rejects entries", driver: "flatfile", entries: []config.EntryConfig{tagged("a")}, wantErr: "only supported by the memory driver"},
		{name: "empty id", driver: "memory", entries: []config.EntryConfig{tagged("")}, wantErr: "id must not be empty"},
		{name: "duplicate id", driver: "memory", entries: []config.EntryConfig{tagged("a"), tagged("a")}, wantErr: "declared twice"},
		{
			name:    "unknown taxonomy",
			driver:  "memory",
			entries: []config.EntryConfig{{ID: "a", Terms: map[string][]string{"topics": {"go"}}}},
			wantErr: `unknown taxonomy "topics"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			cfg.Storage = config.StorageConfig{Driver: tt.driver, Path: "content", Entries: tt.entries}

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 5 * time.Second,
			RateLimit:      config.RateLimitConfig{Burst: 1},
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Storage: config.StorageConfig{
			Driver: "memory",
		},
		Taxonomies: []config.TaxonomyConfig{{Handle: "tags"}},
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}
