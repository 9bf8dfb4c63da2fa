package monitor

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// TenantSource lists the tenants that currently have enabled targets.
type TenantSource interface {
	ActiveUserIDs(ctx context.Context) ([]string, error)
}

// Scheduler keeps one running worker per tenant with enabled targets,
// reconciling the worker map against the store on a fixed interval.
type Scheduler struct {
	tenants   TenantSource
	newWorker func(userID string) *Worker
	refresh   time.Duration
	backoff   time.Duration
	recorder  Recorder
	logger    *slog.Logger

	mu      sync.Mutex
	workers map[string]*Worker

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler builds a scheduler that creates workers from cfg and deps.
func NewScheduler(tenants TenantSource, cfg Config, deps Deps, refresh time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		tenants:   tenants,
		newWorker: func(userID string) *Worker { return NewWorker(userID, cfg, deps) },
		refresh:   refresh,
		backoff:   cfg.ErrorBackoff,
		recorder:  deps.Recorder,
		logger:    logger.With("component", "scheduler"),
		workers:   map[string]*Worker{},
		stopCh:    make(chan struct{}),
	}
}

// Start reconciles once immediately and then launches the refresh loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Tenant scheduler started", "refresh_interval", s.refresh)
	if err := s.Reconcile(ctx); err != nil {
		s.logger.Error("Initial reconciliation failed", "error", err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop halts reconciliation and shuts down every worker, waiting for each
// in-flight tick to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()

	s.mu.Lock()
	workers := make([]*Worker, 0, len(s.workers))
	for _, w := range s.workers {
		workers = append(workers, w)
	}
	s.workers = map[string]*Worker{}
	s.mu.Unlock()

	for _, w := range workers {
		w.Stop()
	}
	s.logger.Info("Tenant scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	for {
		wait := s.refresh
		if err := s.waitOrStop(ctx, wait); err != nil {
			return
		}
		if err := s.Reconcile(ctx); err != nil {
			s.logger.Error("Reconciliation failed, backing off", "error", err)
			if s.waitOrStop(ctx, s.backoff) != nil {
				return
			}
		}
	}
}

func (s *Scheduler) waitOrStop(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-s.stopCh:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reconcile starts workers for tenants that gained enabled targets and
// stops workers for tenants that lost them.
func (s *Scheduler) Reconcile(ctx context.Context) error {
	userIDs, err := s.tenants.ActiveUserIDs(ctx)
	if err != nil {
		return err
	}
	active := map[string]bool{}
	for _, id := range userIDs {
		active[id] = true
	}

	s.mu.Lock()
	var toStart []string
	for id := range active {
		if _, ok := s.workers[id]; !ok {
			toStart = append(toStart, id)
		}
	}
	var toStop []*Worker
	for id, w := range s.workers {
		if !active[id] {
			toStop = append(toStop, w)
			delete(s.workers, id)
		}
	}
	for _, id := range toStart {
		w := s.newWorker(id)
		s.workers[id] = w
		w.Start(ctx)
		s.logger.Info("Started batch worker", "user_id", id)
	}
	running := len(s.workers)
	s.mu.Unlock()

	if s.recorder != nil {
		s.recorder.SetActiveWorkers(running)
	}

	// Stop outside the lock; Stop waits for the worker's current tick.
	for _, w := range toStop {
		w.Stop()
		s.logger.Info("Stopped batch worker", "user_id", w.userID)
	}
	return nil
}

// ActiveTenants returns the tenants with a running worker, sorted.
func (s *Scheduler) ActiveTenants() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.workers))
	for id := range s.workers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Health reports the last tick outcome of every running worker.
func (s *Scheduler) Health() []WorkerHealth {
	s.mu.Lock()
	defer s.mu.Unlock()
	health := make([]WorkerHealth, 0, len(s.workers))
	for _, w := range s.workers {
		health = append(health, w.Health())
	}
	sort.Slice(health, func(i, j int) bool { return health[i].UserID < health[j].UserID })
	return health
}
