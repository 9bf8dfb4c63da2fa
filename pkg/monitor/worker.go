// Package monitor runs the per-tenant batch analysis loop and the scheduler
// that reconciles the set of running workers against the tenants with
// enabled scrape targets.
package monitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/promsight/promsight/pkg/analysis"
	"github.com/promsight/promsight/pkg/llm"
	"github.com/promsight/promsight/pkg/notify"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/services"
	"github.com/promsight/promsight/pkg/timeutil"
	"github.com/promsight/promsight/pkg/tracing"
)

// batchTraceName is the root span covering one analysed window.
const batchTraceName = "Batch Monitoring"

// Outcome is the terminal state of one worker tick. Only Done writes a
// ledger entry.
type Outcome int

const (
	// Skip means the window was already processed (or a concurrent
	// replica won the ledger insert).
	Skip Outcome = iota
	// Empty means the tenant had no samples for the window. The ledger
	// is left untouched so a later backfill can still analyse it.
	Empty
	// Fail means the tick aborted (backend, LLM, parse, or critical
	// store error). The ledger is left untouched; the next aligned
	// bucket retries.
	Fail
	// Done means the run was analysed, persisted, and marked processed.
	Done
)

func (o Outcome) String() string {
	switch o {
	case Skip:
		return "skip"
	case Empty:
		return "empty"
	case Fail:
		return "fail"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// MetricsSource fetches the current samples for one tenant.
type MetricsSource interface {
	FetchForTenant(ctx context.Context, userID string) []promquery.Sample
}

// Analyzer sends a prompt through the LLM gateway, nesting provider
// attempts under the tick's trace.
type Analyzer interface {
	Ask(ctx context.Context, prompt string, trace *tracing.Trace, sessionID string) llm.Result
}

// TraceStarter opens the root trace covering one batch window. Satisfied by
// *tracing.Tracer. Optional; nil disables tracing.
type TraceStarter interface {
	StartTrace(name, sessionID string, metadata map[string]interface{}) *tracing.Trace
}

// Ledger guards windows against double processing.
type Ledger interface {
	IsProcessed(ctx context.Context, userID string, w timeutil.Window, tz timeutil.Timezone) (bool, error)
	MarkProcessed(ctx context.Context, input services.MarkProcessedInput) error
}

// RunStore persists the records derived from one run.
type RunStore interface {
	StoreRun(ctx context.Context, input services.StoreRunInput) (*services.StoreRunResult, error)
}

// Notifier dispatches incident alerts to the tenant's enabled channels.
type Notifier interface {
	SendAlerts(ctx context.Context, userID string, alert notify.Alert)
}

// Recorder counts tick outcomes, gateway calls, and running workers.
// Optional; a nil Recorder disables instrumentation.
type Recorder interface {
	ObserveTick(outcome string)
	ObserveLLM(provider, outcome string)
	SetActiveWorkers(n int)
}

// Config carries the batch parameters shared by all workers.
type Config struct {
	IntervalMinutes    int
	MaxMetrics         int
	MetricsPerInstance int
	SessionPrefix      string
	ErrorBackoff       time.Duration
	Timezone           timeutil.Timezone
}

// Deps bundles the collaborators a worker needs.
type Deps struct {
	Source   MetricsSource
	Gateway  Analyzer
	Ledger   Ledger
	Runs     RunStore
	Notifier Notifier
	Tracer   TraceStarter
	Recorder Recorder
	Logger   *slog.Logger
}

// WorkerHealth is a snapshot of a worker's last tick.
type WorkerHealth struct {
	UserID      string    `json:"user_id"`
	LastOutcome string    `json:"last_outcome"`
	LastTick    time.Time `json:"last_tick,omitempty"`
}

// Worker runs the batch loop for a single tenant. Ticks are strictly
// serial: the loop never starts tick n+1 before tick n terminates.
type Worker struct {
	userID string
	cfg    Config
	deps   Deps
	logger *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu          sync.RWMutex
	lastOutcome Outcome
	lastTick    time.Time
	ticked      bool
}

// NewWorker builds a worker for one tenant.
func NewWorker(userID string, cfg Config, deps Deps) *Worker {
	return &Worker{
		userID: userID,
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger.With("component", "monitor", "user_id", userID),
		stopCh: make(chan struct{}),
	}
}

// Start launches the worker loop. The loop sleeps until the next aligned
// bucket before its first tick, so a bucket already underway at startup is
// skipped for this process.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Batch worker started", "interval_minutes", w.cfg.IntervalMinutes)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Stop signals the worker to stop and waits for the loop to exit. An
// in-flight tick finishes first.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
	w.logger.Info("Batch worker stopped")
}

// Health returns the worker's last tick outcome.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	h := WorkerHealth{UserID: w.userID}
	if w.ticked {
		h.LastOutcome = w.lastOutcome.String()
		h.LastTick = w.lastTick
	}
	return h
}

func (w *Worker) run(ctx context.Context) {
	for {
		now := w.cfg.Timezone.Now()
		next := timeutil.NextBucketStart(now, w.cfg.IntervalMinutes)
		if !w.sleep(ctx, next.Sub(now)) {
			return
		}

		outcome, err := w.Tick(ctx, w.cfg.Timezone.Now())
		w.record(outcome)
		if w.deps.Recorder != nil {
			w.deps.Recorder.ObserveTick(outcome.String())
		}
		if err != nil {
			w.logger.Error("Batch tick failed", "outcome", outcome.String(), "error", err)
			if !w.sleep(ctx, w.cfg.ErrorBackoff) {
				return
			}
			continue
		}
		w.logger.Info("Batch tick finished", "outcome", outcome.String())
	}
}

// sleep waits for d, returning false when the worker is stopped or the
// context is cancelled first.
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-w.stopCh:
		return false
	case <-ctx.Done():
		return false
	}
}

// Tick executes the state machine for the window containing now:
// guard, fetch, prompt, analyse, persist, notify, mark. Only Done marks
// the window processed; Empty and Fail leave the ledger untouched so the
// next aligned bucket can retry.
func (w *Worker) Tick(ctx context.Context, now time.Time) (Outcome, error) {
	window := timeutil.CurrentWindow(now, w.cfg.IntervalMinutes)
	sessionID := timeutil.SessionID(window, w.cfg.SessionPrefix, w.userID)
	tz := w.cfg.Timezone

	logger := w.logger.With("session_id", sessionID,
		"window_start", tz.Format(window.Start),
		"window_end", tz.Format(window.End))
	logger.Info("Running batch window")

	processed, err := w.deps.Ledger.IsProcessed(ctx, w.userID, window, tz)
	if err != nil {
		return Fail, err
	}
	if processed {
		logger.Info("Window already processed, skipping")
		return Skip, nil
	}

	var trace *tracing.Trace
	if w.deps.Tracer != nil {
		trace = w.deps.Tracer.StartTrace(batchTraceName, sessionID, map[string]interface{}{
			"user_id":      w.userID,
			"window_start": window.Start.Format(time.RFC3339),
			"window_end":   window.End.Format(time.RFC3339),
			"timezone":     tz.Label,
		})
	}

	outcome, err := w.analyse(ctx, trace, logger, window, sessionID)
	output := map[string]interface{}{"outcome": outcome.String()}
	if err != nil {
		output["error"] = err.Error()
	}
	trace.End(output)
	return outcome, err
}

// analyse runs the traced part of a tick: fetch, prompt, LLM call, persist,
// notify, mark.
func (w *Worker) analyse(ctx context.Context, trace *tracing.Trace, logger *slog.Logger, window timeutil.Window, sessionID string) (Outcome, error) {
	tz := w.cfg.Timezone

	samples := w.deps.Source.FetchForTenant(ctx, w.userID)
	if len(samples) == 0 {
		logger.Warn("No metrics for window, skipping without marking")
		return Empty, nil
	}
	logger.Info("Fetched metrics", "count", len(samples))

	prompt, included := BuildPrompt(samples, window, tz, PromptLimits{
		MaxMetrics:         w.cfg.MaxMetrics,
		MetricsPerInstance: w.cfg.MetricsPerInstance,
	})

	logger.Info("Calling LLM", "metrics_count", len(samples), "metrics_included", included)
	result := w.deps.Gateway.Ask(ctx, prompt, trace, sessionID)
	if w.deps.Recorder != nil {
		w.deps.Recorder.ObserveLLM(result.Provider, result.Kind.String())
	}
	if result.Kind != llm.Ok {
		err := result.Err
		if err == nil {
			err = errors.New("no provider available")
		}
		return Fail, err
	}

	parsed := analysis.Parse(result.Text)
	if parsed.Empty() {
		return Fail, errors.New("analysis response contained no incident")
	}
	logger.Info("Analysis complete",
		"title", parsed.Incident.Title,
		"severity", parsed.Incident.Severity,
		"anomalies", len(parsed.Anomalies),
		"provider", result.Provider)

	stored, err := w.deps.Runs.StoreRun(ctx, services.StoreRunInput{
		UserID:      w.userID,
		Window:      window,
		Timezone:    tz,
		SessionID:   sessionID,
		Samples:     samples,
		Analysis:    parsed,
		RawAnalysis: analysis.ParseRaw(result.Text),
	})
	if err != nil {
		return Fail, err
	}

	w.deps.Notifier.SendAlerts(ctx, w.userID, notify.Alert{
		Incident:     parsed.Incident,
		AnomalyCount: stored.AnomalyCount,
		Window:       window,
		Timezone:     tz,
		SessionID:    sessionID,
	})

	err = w.deps.Ledger.MarkProcessed(ctx, services.MarkProcessedInput{
		UserID:     w.userID,
		Window:     window,
		Timezone:   tz,
		SessionID:  sessionID,
		IncidentID: stored.IncidentID,
	})
	if errors.Is(err, services.ErrDuplicateWindow) {
		logger.Info("Concurrent replica marked the window first")
		return Skip, nil
	}
	if err != nil {
		return Fail, err
	}

	logger.Info("Batch window complete", "incident_id", stored.IncidentID)
	return Done, nil
}

func (w *Worker) record(o Outcome) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastOutcome = o
	w.lastTick = w.cfg.Timezone.Now()
	w.ticked = true
}
