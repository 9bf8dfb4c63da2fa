package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promsight/promsight/pkg/timeutil"
	testdb "github.com/promsight/promsight/test/database"
)

func testWindow() timeutil.Window {
	start := time.Date(2026, 1, 29, 3, 15, 0, 0, time.UTC)
	return timeutil.Window{Start: start, End: start.Add(5 * time.Minute)}
}

func TestLedgerService_MarkAndCheck(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLedgerService(client.Client)
	ctx := context.Background()
	w := testWindow()

	processed, err := service.IsProcessed(ctx, "u1", w, timeutil.IST)
	require.NoError(t, err)
	assert.False(t, processed)

	err = service.MarkProcessed(ctx, MarkProcessedInput{
		UserID:    "u1",
		Window:    w,
		Timezone:  timeutil.IST,
		SessionID: timeutil.SessionID(w, "batch", "u1"),
	})
	require.NoError(t, err)

	processed, err = service.IsProcessed(ctx, "u1", w, timeutil.IST)
	require.NoError(t, err)
	assert.True(t, processed)

	// Same window for another tenant is independent.
	processed, err = service.IsProcessed(ctx, "u2", w, timeutil.IST)
	require.NoError(t, err)
	assert.False(t, processed)
}

func TestLedgerService_DuplicateInsertFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLedgerService(client.Client)
	ctx := context.Background()
	w := testWindow()

	input := MarkProcessedInput{
		UserID:    "u1",
		Window:    w,
		Timezone:  timeutil.IST,
		SessionID: "s1",
	}
	require.NoError(t, service.MarkProcessed(ctx, input))
	assert.ErrorIs(t, service.MarkProcessed(ctx, input), ErrDuplicateWindow)
}

// Two replicas race on the same window; exactly one insert wins and the
// loser observes ErrDuplicateWindow.
func TestLedgerService_ConcurrentReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	serviceA := NewLedgerService(shared.NewClient(t).Client)
	serviceB := NewLedgerService(shared.NewClient(t).Client)
	ctx := context.Background()
	w := testWindow()

	input := MarkProcessedInput{
		UserID:    "u1",
		Window:    w,
		Timezone:  timeutil.IST,
		SessionID: "s1",
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, svc := range []*LedgerService{serviceA, serviceB} {
		wg.Add(1)
		go func(i int, svc *LedgerService) {
			defer wg.Done()
			errs[i] = svc.MarkProcessed(ctx, input)
		}(i, svc)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateWindow)
		}
	}
	assert.Equal(t, 1, winners)

	processed, err := serviceB.IsProcessed(ctx, "u1", w, timeutil.IST)
	require.NoError(t, err)
	assert.True(t, processed)
}
