package chatcache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(ttl time.Duration) *Cache {
	return NewCache(ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCache_CreateGetTouch(t *testing.T) {
	c := testCache(0)

	s := c.Create()
	require.NotEmpty(t, s.ID)

	got, ok := c.Get(s.ID)
	require.True(t, ok)
	assert.Zero(t, got.MessageCount)

	c.Touch(s.ID, 42)
	c.Touch(s.ID, 8)

	got, ok = c.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, 2, got.MessageCount)
	assert.Equal(t, 50, got.TotalTokens)

	// Unknown ids are ignored.
	c.Touch("nope", 1)
	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestCache_SweepRemovesIdleSessions(t *testing.T) {
	c := testCache(time.Hour)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	stale := c.Create()
	clock = clock.Add(2 * time.Hour)
	fresh := c.Create()

	removed := c.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get(stale.ID)
	assert.False(t, ok)
	_, ok = c.Get(fresh.ID)
	assert.True(t, ok)
}

func TestCache_JanitorLifecycle(t *testing.T) {
	c := testCache(time.Nanosecond)
	c.Create()

	c.StartJanitor(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return c.Len() == 0 },
		time.Second, 5*time.Millisecond)

	c.StopJanitor()
	// Stop twice is a no-op.
	c.StopJanitor()
}
