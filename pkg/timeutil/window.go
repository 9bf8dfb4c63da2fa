// Package timeutil provides the civil-timezone clock, bucket-aligned window
// math, and deterministic session ids used to correlate all records of a
// single batch run.
package timeutil

import (
	"fmt"
	"time"
)

// Timezone is the single civil timezone all scheduling and record
// formatting uses. Offset is relative to UTC.
type Timezone struct {
	Label    string
	Location *time.Location
}

// NewTimezone builds a fixed-offset civil timezone.
func NewTimezone(label string, offset time.Duration) Timezone {
	return Timezone{
		Label:    label,
		Location: time.FixedZone(label, int(offset/time.Second)),
	}
}

// IST is the default deployment timezone (UTC+05:30).
var IST = NewTimezone("IST", 5*time.Hour+30*time.Minute)

// Now returns the current time in the civil timezone.
func (z Timezone) Now() time.Time {
	return time.Now().In(z.Location)
}

// Format renders t in the civil timezone with the zone label suffixed.
// This is the canonical string form stored alongside every timestamp and
// used as the ledger guard key.
func (z Timezone) Format(t time.Time) string {
	return t.In(z.Location).Format("2006-01-02 15:04:05") + " " + z.Label
}

// Window is a half-open civil-time interval [Start, End) whose start is
// aligned to a multiple of the batch interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// Interval returns the window length.
func (w Window) Interval() time.Duration {
	return w.End.Sub(w.Start)
}

// FloorToInterval returns t with seconds and sub-seconds zeroed and the
// minute snapped down to the nearest multiple of m minutes.
func FloorToInterval(t time.Time, m int) time.Time {
	if m <= 0 {
		return t.Truncate(time.Minute)
	}
	bucket := (t.Minute() / m) * m
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), bucket, 0, 0, t.Location())
}

// CurrentWindow computes the bucket-aligned window containing t for an
// m-minute interval.
func CurrentWindow(t time.Time, m int) Window {
	start := FloorToInterval(t, m)
	return Window{Start: start, End: start.Add(time.Duration(m) * time.Minute)}
}

// NextBucketStart returns the start of the first bucket strictly after t.
// Workers sleep until this instant between ticks; a bucket whose start has
// already passed is skipped for this process.
func NextBucketStart(t time.Time, m int) time.Time {
	return FloorToInterval(t, m).Add(time.Duration(m) * time.Minute)
}

// SessionID derives the deterministic correlation key for one tenant window.
// The same window always yields the same id for the same tenant, so stored
// records and tracing spans of a run can be joined on it.
func SessionID(w Window, prefix, userID string) string {
	return fmt.Sprintf("%s:%s-%s_user_%s",
		prefix,
		w.Start.Format("200601021504"),
		w.End.Format("200601021504"),
		userID)
}
