package handlers

import (
	"log/slog"
	"net/http"
)

// HealthHandler serves health check requests
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler creates a new handler for health checks
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// HealthResponse is the health check body
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}
