package config

const (
	defaultServerPort = 8080

	// Storage drivers.
	DriverMemory   = "memory"
	DriverFlatFile = "flatfile"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "5s",
		"server.rate_limit.rps":   0,
		"server.rate_limit.burst": 1,

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "content-blueprints",

		"storage.driver": DriverMemory,
		"storage.path":   "content",
	}
}
