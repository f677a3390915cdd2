package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-signup/pkg/response"
)

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

// HealthHandler fails the probe when a required check fails. Optional
// checks only downgrade the status to "degraded".
type HealthHandler struct {
	Checks   map[string]Check
	Optional map[string]Check
	Timeout  time.Duration
}

func NewHealthHandler(required, optional map[string]Check) *HealthHandler {
	return &HealthHandler{Checks: required, Optional: optional, Timeout: 2 * time.Second}
}

// Healthz GET /api/healthz
func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	if failed := runChecks(ctx, h.Checks); len(failed) > 0 {
		response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", failed)
		return
	}
	if degraded := runChecks(ctx, h.Optional); len(degraded) > 0 {
		response.Success(c, http.StatusOK, gin.H{"status": "degraded", "degraded": degraded}, "degraded", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "healthy", nil)
}

func runChecks(ctx context.Context, checks map[string]Check) map[string]string {
	failed := map[string]string{}
	for name, check := range checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			failed[name] = err.Error()
		}
	}
	return failed
}
