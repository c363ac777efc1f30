package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

const (
	statusOK       = "ok"
	statusFailing  = "failing"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// checkResult is one entry of the readiness report.
type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// readinessResponse reports the storage backend and taxonomy registry checks.
type readinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]checkResult `json:"checks"`
}

// HealthHandler serves /health/live and /health/ready.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process is alive if it can answer.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 otherwise. Failing checks are logged at warn level.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	resp := readinessResponse{Status: statusReady, Checks: make(map[string]checkResult)}
	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			resp.Checks[name] = checkResult{Status: statusOK}
			continue
		}
		resp.Status = statusNotReady
		resp.Checks[name] = checkResult{Status: statusFailing, Error: err.Error()}
		logger.WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.String("error", err.Error()),
		)
	}

	code := http.StatusOK
	if resp.Status == statusNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
