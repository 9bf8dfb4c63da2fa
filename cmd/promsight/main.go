// PromSight server: runs the per-tenant batch analysis workers, the
// retention loop, and the HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/promsight/promsight/pkg/api"
	"github.com/promsight/promsight/pkg/chatcache"
	"github.com/promsight/promsight/pkg/cleanup"
	"github.com/promsight/promsight/pkg/config"
	"github.com/promsight/promsight/pkg/database"
	"github.com/promsight/promsight/pkg/llm"
	"github.com/promsight/promsight/pkg/metrics"
	"github.com/promsight/promsight/pkg/monitor"
	"github.com/promsight/promsight/pkg/notify"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/services"
	"github.com/promsight/promsight/pkg/timeutil"
	"github.com/promsight/promsight/pkg/tracing"
	"github.com/promsight/promsight/pkg/version"
)

const chatJanitorInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger config may itself be broken, fall back to the default.
		config.LogConfig{}.NewLogger().Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger()

	logger.Info("Starting PromSight",
		"version", version.GitCommit,
		"addr", cfg.Server.Addr,
		"batch_interval_minutes", cfg.Batch.IntervalMinutes)

	ctx := context.Background()

	// Database.
	dbClient, err := database.NewClient(ctx, database.Config{
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// Shared clients.
	tracer := tracing.New(ctx, cfg.Tracing.Enabled(), logger)
	defer tracer.Flush(ctx)

	promClient, err := promquery.NewClient(cfg.Prometheus.URL, logger)
	if err != nil {
		logger.Error("Failed to build Prometheus client", "url", cfg.Prometheus.URL, "error", err)
		os.Exit(1)
	}

	var primary, secondary llm.Provider
	if cfg.LLM.HasPrimary() {
		primary = llm.NewOpenAIProvider(cfg.LLM.PrimaryAPIKey, cfg.LLM.PrimaryBaseURL, cfg.LLM.PrimaryModel)
	}
	if cfg.LLM.HasSecondary() {
		secondary = llm.NewOllamaProvider(cfg.LLM.SecondaryURL, cfg.LLM.SecondaryModel)
	}
	gateway := llm.NewGateway(logger, primary, secondary)

	// Services.
	targetService := services.NewTargetService(dbClient.Client)
	ledgerService := services.NewLedgerService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client, logger)
	queryService := services.NewQueryService(dbClient.Client)
	notificationService := services.NewNotificationService(dbClient.Client)
	retentionService := services.NewRetentionService(dbClient.Client)
	logger.Info("Services initialized")

	m := metrics.New()

	emailSender := notify.NewEmailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, logger)
	notifier := notify.NewService(notificationService, notify.NewSlackSender(logger), emailSender, logger)
	notifier.SetRecorder(m)

	// Batch scheduler.
	tz := timeutil.NewTimezone(cfg.Batch.TimezoneLabel, cfg.Batch.TimezoneOffset)
	scheduler := monitor.NewScheduler(targetService, monitor.Config{
		IntervalMinutes:    cfg.Batch.IntervalMinutes,
		MaxMetrics:         cfg.Batch.MaxMetrics,
		MetricsPerInstance: cfg.Batch.MetricsPerInstance,
		SessionPrefix:      cfg.Batch.SessionPrefix,
		ErrorBackoff:       cfg.Batch.ErrorBackoff,
		Timezone:           tz,
	}, monitor.Deps{
		Source:   promClient,
		Gateway:  gateway,
		Ledger:   ledgerService,
		Runs:     runService,
		Notifier: notifier,
		Tracer:   tracer,
		Recorder: m,
		Logger:   logger,
	}, cfg.Scheduler.RefreshInterval, logger)
	scheduler.Start(ctx)

	// Retention loop.
	retention := cleanup.NewService(retentionService, cfg.Retention.MaxRecords, cfg.Retention.Interval, logger)
	retention.Start(ctx)

	// Chat session cache janitor.
	chatCache := chatcache.NewCache(chatcache.DefaultTTL, logger)
	chatCache.StartJanitor(ctx, chatJanitorInterval)

	// HTTP server.
	httpServer := api.NewServer(dbClient, targetService, queryService, notificationService, chatCache, m, logger)
	httpServer.SetScheduler(scheduler)
	httpServer.SetPromClient(promClient)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	logger.Info("PromSight started successfully")

	// Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: workers first (an in-flight LLM call may take up
	// to the per-provider timeout), then the rest.
	done := make(chan struct{})
	go func() {
		scheduler.Stop()
		close(done)
	}()
	shutdownCtx, cancel := context.WithTimeout(ctx, 150*time.Second)
	defer cancel()
	select {
	case <-done:
		logger.Info("Batch workers stopped gracefully")
	case <-shutdownCtx.Done():
		logger.Warn("Worker shutdown timeout exceeded")
	}

	retention.Stop()
	chatCache.StopJanitor()

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("Shutdown complete")
}
