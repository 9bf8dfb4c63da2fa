package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorToInterval(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		minutes  int
		expected time.Time
	}{
		{
			name:     "snaps to 30 minute bucket",
			in:       time.Date(2026, 1, 29, 3, 43, 17, 500, time.UTC),
			minutes:  30,
			expected: time.Date(2026, 1, 29, 3, 30, 0, 0, time.UTC),
		},
		{
			name:     "already aligned",
			in:       time.Date(2026, 1, 29, 3, 30, 0, 0, time.UTC),
			minutes:  30,
			expected: time.Date(2026, 1, 29, 3, 30, 0, 0, time.UTC),
		},
		{
			name:     "one minute interval zeroes seconds",
			in:       time.Date(2026, 1, 29, 3, 16, 45, 0, time.UTC),
			minutes:  1,
			expected: time.Date(2026, 1, 29, 3, 16, 0, 0, time.UTC),
		},
		{
			name:     "non-positive interval truncates to minute",
			in:       time.Date(2026, 1, 29, 3, 16, 45, 0, time.UTC),
			minutes:  0,
			expected: time.Date(2026, 1, 29, 3, 16, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FloorToInterval(tt.in, tt.minutes))
		})
	}
}

func TestCurrentWindowProperties(t *testing.T) {
	intervals := []int{1, 2, 5, 15, 30, 60}
	base := time.Date(2026, 3, 7, 0, 0, 0, 0, IST.Location)

	for _, m := range intervals {
		for i := 0; i < 100; i++ {
			now := base.Add(time.Duration(i*7) * time.Minute).Add(time.Duration(i) * time.Second)
			w := CurrentWindow(now, m)

			assert.Zero(t, w.Start.Minute()%m, "start minute must be a multiple of interval")
			assert.Zero(t, w.Start.Second())
			assert.Equal(t, time.Duration(m)*time.Minute, w.Interval())
			assert.False(t, now.Before(w.Start), "now must be inside the window")
			assert.True(t, now.Before(w.End))
		}
	}
}

func TestNextBucketStart(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 15, 30, 0, IST.Location)
	next := NextBucketStart(now, 30)
	assert.Equal(t, time.Date(2026, 1, 2, 12, 30, 0, 0, IST.Location), next)

	// Exactly on a bucket boundary still moves to the following bucket.
	aligned := time.Date(2026, 1, 2, 12, 30, 0, 0, IST.Location)
	assert.Equal(t, time.Date(2026, 1, 2, 13, 0, 0, 0, IST.Location), NextBucketStart(aligned, 30))
}

func TestSessionIDDeterministic(t *testing.T) {
	w := CurrentWindow(time.Date(2026, 1, 29, 3, 16, 0, 0, time.UTC), 1)

	id1 := SessionID(w, "batch", "u1")
	id2 := SessionID(w, "batch", "u1")
	require.Equal(t, id1, id2, "same inputs must yield byte-identical ids")
	assert.Equal(t, "batch:202601290316-202601290317_user_u1", id1)

	// Different tenant, different id.
	assert.NotEqual(t, id1, SessionID(w, "batch", "u2"))
}

func TestTimezoneFormat(t *testing.T) {
	ts := time.Date(2025, 1, 2, 12, 0, 0, 0, IST.Location)
	assert.Equal(t, "2025-01-02 12:00:00 IST", IST.Format(ts))

	// UTC instants are converted into the civil zone before formatting.
	utc := time.Date(2025, 1, 2, 6, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-02 12:00:00 IST", IST.Format(utc))
}
