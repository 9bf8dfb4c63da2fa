package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTenants struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (f *fakeTenants) set(ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = ids
}

func (f *fakeTenants) ActiveUserIDs(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ids, f.err
}

func newTestScheduler(tenants TenantSource) *Scheduler {
	deps := Deps{
		Source:   &fakeSource{},
		Gateway:  &fakeGateway{},
		Ledger:   &fakeLedger{},
		Runs:     &fakeStore{},
		Notifier: &fakeNotifier{},
		Logger:   testLogger(),
	}
	// A long refresh keeps the loop quiet so tests drive Reconcile directly.
	return NewScheduler(tenants, testConfig(), deps, time.Hour, testLogger())
}

func TestScheduler_ReconcileTracksActiveTenants(t *testing.T) {
	tenants := &fakeTenants{}
	tenants.set("a", "b")
	s := newTestScheduler(tenants)
	ctx := context.Background()

	require.NoError(t, s.Reconcile(ctx))
	assert.Equal(t, []string{"a", "b"}, s.ActiveTenants())

	// a loses its targets, c gains one.
	tenants.set("b", "c")
	require.NoError(t, s.Reconcile(ctx))
	assert.Equal(t, []string{"b", "c"}, s.ActiveTenants())

	// Empty set drains everything.
	tenants.set()
	require.NoError(t, s.Reconcile(ctx))
	assert.Empty(t, s.ActiveTenants())

	s.Stop()
}

func TestScheduler_ReconcileKeepsExistingWorkers(t *testing.T) {
	tenants := &fakeTenants{}
	tenants.set("a")
	s := newTestScheduler(tenants)
	ctx := context.Background()

	require.NoError(t, s.Reconcile(ctx))
	s.mu.Lock()
	before := s.workers["a"]
	s.mu.Unlock()

	require.NoError(t, s.Reconcile(ctx))
	s.mu.Lock()
	after := s.workers["a"]
	s.mu.Unlock()

	assert.Same(t, before, after, "a steady tenant keeps its worker")
	s.Stop()
}

func TestScheduler_ReconcileError(t *testing.T) {
	tenants := &fakeTenants{err: errors.New("store down")}
	s := newTestScheduler(tenants)

	err := s.Reconcile(context.Background())
	require.Error(t, err)
	assert.Empty(t, s.ActiveTenants())
	s.Stop()
}

func TestScheduler_StartStop(t *testing.T) {
	tenants := &fakeTenants{}
	tenants.set("a", "b")
	s := newTestScheduler(tenants)

	s.Start(context.Background())
	assert.Equal(t, []string{"a", "b"}, s.ActiveTenants())

	health := s.Health()
	require.Len(t, health, 2)
	assert.Equal(t, "a", health[0].UserID)

	s.Stop()
	assert.Empty(t, s.ActiveTenants())
}
