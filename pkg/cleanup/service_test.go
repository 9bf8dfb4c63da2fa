package cleanup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promsight/promsight/pkg/services"
)

type fakeTrimmer struct {
	mu    sync.Mutex
	calls int
	max   int
	err   error
}

func (f *fakeTrimmer) TrimAll(_ context.Context, max int) (*services.TrimResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.max = max
	if f.err != nil {
		return nil, f.err
	}
	return &services.TrimResult{Batches: 2}, nil
}

func (f *fakeTrimmer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_TrimsImmediatelyOnStart(t *testing.T) {
	trimmer := &fakeTrimmer{}
	s := NewService(trimmer, 1000, time.Hour, testLogger())

	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool { return trimmer.count() == 1 },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, 1000, trimmer.max)
}

func TestService_SurvivesTrimErrors(t *testing.T) {
	trimmer := &fakeTrimmer{err: errors.New("store down")}
	s := NewService(trimmer, 1000, 20*time.Millisecond, testLogger())

	s.Start(context.Background())
	defer s.Stop()

	// The loop keeps ticking after failures.
	require.Eventually(t, func() bool { return trimmer.count() >= 3 },
		time.Second, 10*time.Millisecond)
}

func TestService_StopIsIdempotent(t *testing.T) {
	s := NewService(&fakeTrimmer{}, 1000, time.Hour, testLogger())

	// Stop before Start is a no-op.
	s.Stop()

	s.Start(context.Background())
	s.Stop()
	s.Stop()
}
