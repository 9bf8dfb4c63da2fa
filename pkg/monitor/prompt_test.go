package monitor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promsight/promsight/pkg/analysis"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/timeutil"
)

func promptWindow() timeutil.Window {
	start := time.Date(2025, 1, 2, 12, 0, 0, 0, timeutil.IST.Location)
	return timeutil.Window{Start: start, End: start.Add(30 * time.Minute)}
}

func TestBuildPrompt_Structure(t *testing.T) {
	samples := []promquery.Sample{
		{Name: "mem_used", Value: 88.0, Instance: "b.example:9100"},
		{Name: "cpu_usage", Value: 97.0, Instance: "b.example:9100"},
		{Name: "disk_free", Value: 12.5, Instance: "a.example:9100"},
	}

	prompt, included := BuildPrompt(samples, promptWindow(), timeutil.IST,
		PromptLimits{MaxMetrics: 600, MetricsPerInstance: 200})

	assert.Equal(t, 3, included)
	assert.True(t, strings.HasPrefix(prompt, "You are an expert SRE analyzing Prometheus metrics."))
	assert.Contains(t, prompt, "BATCH WINDOW (IST): 2025-01-02 12:00:00 IST -> 2025-01-02 12:30:00 IST (30 min)")
	assert.Contains(t, prompt, "METRICS (3/3 included):")
	assert.Contains(t, prompt, analysis.SchemaTemplate)
	assert.True(t, strings.HasSuffix(prompt, "RETURN ONLY JSON:"))

	// Instances sorted lexicographically, metrics sorted by name within.
	a := strings.Index(prompt, "### Instance: a.example:9100")
	b := strings.Index(prompt, "### Instance: b.example:9100")
	require.Greater(t, a, -1)
	require.Greater(t, b, -1)
	assert.Less(t, a, b)
	assert.Less(t, strings.Index(prompt, "cpu_usage: 97"), strings.Index(prompt, "mem_used: 88"))
	assert.Contains(t, prompt, "disk_free: 12.5")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	samples := []promquery.Sample{
		{Name: "cpu", Value: 1.0, Instance: "a:9100"},
		{Name: "mem", Value: 2.0, Instance: "b:9100"},
	}
	reversed := []promquery.Sample{samples[1], samples[0]}

	p1, _ := BuildPrompt(samples, promptWindow(), timeutil.IST, PromptLimits{MaxMetrics: 600, MetricsPerInstance: 200})
	p2, _ := BuildPrompt(reversed, promptWindow(), timeutil.IST, PromptLimits{MaxMetrics: 600, MetricsPerInstance: 200})
	assert.Equal(t, p1, p2, "input order must not change the prompt")
}

func TestBuildPrompt_PerInstanceCap(t *testing.T) {
	var samples []promquery.Sample
	for i := 0; i < 5; i++ {
		samples = append(samples, promquery.Sample{
			Name:     fmt.Sprintf("metric_%02d", i),
			Value:    float64(i),
			Instance: "a:9100",
		})
	}

	prompt, included := BuildPrompt(samples, promptWindow(), timeutil.IST,
		PromptLimits{MaxMetrics: 600, MetricsPerInstance: 2})

	assert.Equal(t, 2, included)
	assert.Contains(t, prompt, "METRICS (2/5 included):")
	assert.Contains(t, prompt, "metric_00")
	assert.Contains(t, prompt, "metric_01")
	assert.NotContains(t, prompt, "metric_02")
	assert.NotContains(t, prompt, "capped", "per-instance trimming is not a total cap")
}

func TestBuildPrompt_TotalCapMarker(t *testing.T) {
	samples := []promquery.Sample{
		{Name: "a1", Value: 1.0, Instance: "a:9100"},
		{Name: "a2", Value: 2.0, Instance: "a:9100"},
		{Name: "b1", Value: 3.0, Instance: "b:9100"},
	}

	prompt, included := BuildPrompt(samples, promptWindow(), timeutil.IST,
		PromptLimits{MaxMetrics: 2, MetricsPerInstance: 200})

	assert.Equal(t, 2, included)
	assert.Contains(t, prompt, "... (capped at 2)")
	assert.NotContains(t, prompt, "b1: 3")
}

func TestBuildPrompt_MissingInstanceGrouping(t *testing.T) {
	samples := []promquery.Sample{{Name: "cpu", Value: "NaN", Instance: ""}}

	prompt, included := BuildPrompt(samples, promptWindow(), timeutil.IST,
		PromptLimits{MaxMetrics: 600, MetricsPerInstance: 200})

	assert.Equal(t, 1, included)
	assert.Contains(t, prompt, "### Instance: unknown")
	// Non-numeric values pass through as their raw string form.
	assert.Contains(t, prompt, "cpu: NaN")
}
