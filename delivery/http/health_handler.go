package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/shivam970806/VMS/pkg/api"
	"github.com/shivam970806/VMS/pkg/logger"
)

// HealthCheck pings one dependency
type HealthCheck func(ctx context.Context) error

// HealthHandler handles HTTP requests for health check operations
type HealthHandler struct {
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Checks are keyed by dependency name
	Checks map[string]HealthCheck
	// Timeout bounds every check
	Timeout time.Duration
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(appLogger logger.LoggerInterface, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		Logger:  appLogger,
		API:     api.New(),
		Checks:  checks,
		Timeout: 2 * time.Second,
	}
}

// HealthCheckHandler reports the service status and each dependency.
// Returns 503 when any dependency fails.
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	h.Logger.InfoContext(ctx, "Health check endpoint called")

	names := make([]string, 0, len(h.Checks))
	for name := range h.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	dependencies := make(map[string]string, len(names))
	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, h.Timeout)
		err := h.Checks[name](checkCtx)
		cancel()

		if err != nil {
			h.Logger.WarnContext(ctx, "Health check failed", "dependency", name, "error", err)
			dependencies[name] = "unhealthy"
			healthy = false
			continue
		}
		dependencies[name] = "healthy"
	}

	if !healthy {
		h.API.Error(ctx, w, http.StatusServiceUnavailable, &api.Error{
			Code:    "SERVICE_UNAVAILABLE",
			Message: "One or more dependencies are unavailable",
		})
		return
	}

	h.API.Success(ctx, w, map[string]any{
		"status":       "healthy",
		"message":      "Service is running",
		"dependencies": dependencies,
	})
}
