// Package cleanup enforces the retention cap on the append-only
// collections produced by batch runs.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/promsight/promsight/pkg/services"
)

// Trimmer removes records beyond the retention cap.
type Trimmer interface {
	TrimAll(ctx context.Context, max int) (*services.TrimResult, error)
}

// Service periodically trims every collection down to the newest
// MaxRecords entries. Trimming is idempotent and safe to run from
// multiple replicas.
type Service struct {
	trimmer    Trimmer
	maxRecords int
	interval   time.Duration
	logger     *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service over the given trimmer.
func NewService(trimmer Trimmer, maxRecords int, interval time.Duration, logger *slog.Logger) *Service {
	return &Service{
		trimmer:    trimmer,
		maxRecords: maxRecords,
		interval:   interval,
		logger:     logger.With("component", "cleanup"),
	}
}

// Start launches the background retention loop. The first trim runs
// immediately.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention service started",
		"max_records", s.maxRecords,
		"interval", s.interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.trim(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.trim(ctx)
		}
	}
}

func (s *Service) trim(ctx context.Context) {
	result, err := s.trimmer.TrimAll(ctx, s.maxRecords)
	if err != nil {
		s.logger.Error("Retention trim failed", "error", err)
		return
	}
	if result.Total() > 0 {
		s.logger.Info("Retention trimmed records",
			"batches", result.Batches,
			"incidents", result.Incidents,
			"anomalies", result.Anomalies,
			"rca", result.RCA,
			"windows", result.Windows)
	}
}
