// Package api serves the read and configuration surface over HTTP: health,
// self-telemetry, tenant-scoped queries over stored analysis records, target
// CRUD, and notification-channel configuration.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/promsight/promsight/pkg/chatcache"
	"github.com/promsight/promsight/pkg/database"
	"github.com/promsight/promsight/pkg/metrics"
	"github.com/promsight/promsight/pkg/monitor"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	db            *database.Client
	targets       *services.TargetService
	queries       *services.QueryService
	notifications *services.NotificationService
	chat          *chatcache.Cache
	metrics       *metrics.Metrics
	logger        *slog.Logger

	// Optional collaborators, attached by main when present.
	scheduler *monitor.Scheduler
	prom      *promquery.Client

	router     *gin.Engine
	httpServer *http.Server
}

// NewServer wires the router. metrics may be nil to disable the /metrics
// endpoint's service counters.
func NewServer(
	db *database.Client,
	targets *services.TargetService,
	queries *services.QueryService,
	notifications *services.NotificationService,
	chat *chatcache.Cache,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Server {
	s := &Server{
		db:            db,
		targets:       targets,
		queries:       queries,
		notifications: notifications,
		chat:          chat,
		metrics:       m,
		logger:        logger.With("component", "api"),
	}
	s.router = s.buildRouter()
	return s
}

// SetScheduler attaches the tenant scheduler for worker health reporting.
func (s *Server) SetScheduler(sched *monitor.Scheduler) {
	s.scheduler = sched
}

// SetPromClient attaches the metrics backend client for reachability checks.
func (s *Server) SetPromClient(prom *promquery.Client) {
	s.prom = prom
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders(), requestMetrics(s.metrics))

	router.GET("/healthz", s.healthHandler)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/targets", s.createTargetHandler)
		v1.GET("/targets", s.listTargetsHandler)
		v1.GET("/targets/:id", s.getTargetHandler)
		v1.PATCH("/targets/:id", s.updateTargetHandler)
		v1.DELETE("/targets/:id", s.deleteTargetHandler)

		v1.GET("/incidents", s.listIncidentsHandler)
		v1.GET("/incidents/:id", s.getIncidentHandler)
		v1.GET("/anomalies", s.listAnomaliesHandler)
		v1.GET("/batches", s.listBatchesHandler)
		v1.GET("/rca", s.listRCAHandler)
		v1.GET("/stats", s.statsHandler)

		v1.GET("/notifications", s.listNotificationsHandler)
		v1.PUT("/notifications", s.upsertNotificationHandler)

		v1.POST("/chat/sessions", s.createChatSessionHandler)
		v1.GET("/chat/sessions/:id", s.getChatSessionHandler)
	}

	return router
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
