package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/merchstore/merchstore/pkg/database"
	"github.com/merchstore/merchstore/pkg/logger"
	"github.com/merchstore/merchstore/pkg/response"
)

// HealthController serves the liveness/readiness probe.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check handles GET /health. It answers 200 only when the database responds
// to a ping, so load balancers stop routing to an instance that cannot
// serve requests.
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := database.Health(ctx); err != nil {
		logger.WithCtx(r.Context()).Warn("health check failed", "error", err)
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "up",
	})
}
