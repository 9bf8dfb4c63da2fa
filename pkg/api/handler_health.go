package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/promsight/promsight/pkg/database"
	"github.com/promsight/promsight/pkg/monitor"
	"github.com/promsight/promsight/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database"`
	Workers    []monitor.WorkerHealth `json:"workers,omitempty"`
	Prometheus string                 `json:"prometheus,omitempty"`
}

// healthHandler reports database connectivity, worker state, and metrics
// backend reachability. Only the database is load-bearing for the status
// code; a broken Prometheus degrades but does not fail the probe.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := &HealthResponse{Status: healthStatusHealthy, Version: version.GitCommit}

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = healthStatusUnhealthy
	}

	if s.scheduler != nil {
		resp.Workers = s.scheduler.Health()
	}

	if s.prom != nil {
		if _, err := s.prom.ActiveJobs(ctx); err != nil {
			resp.Prometheus = healthStatusUnhealthy
			if resp.Status == healthStatusHealthy {
				resp.Status = healthStatusDegraded
			}
		} else {
			resp.Prometheus = healthStatusHealthy
		}
	}

	status := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
