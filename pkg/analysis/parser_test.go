package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWellFormedResponse(t *testing.T) {
	text := `Here is my analysis:
{
  "incident": {
    "title": "CPU saturation on web tier",
    "severity": "high",
    "confidence": 0.85,
    "summary": "Sustained CPU above 95%",
    "root_cause": "Runaway worker process",
    "contributing_factors": ["deploy at 11:55"],
    "blast_radius": "web tier",
    "evidence": [{"metric": "cpu", "instance": "10.0.0.1:9100", "value": 97, "why_it_matters": "saturated"}],
    "fix_plan": {"immediate": ["restart worker"], "next_24h": [], "prevention": ["add limit"]}
  },
  "anomalies": [{"metric": "cpu", "instance": "10.0.0.1:9100", "observed": 97, "expected": "< 80", "symptom": "saturation", "cluster": "cpu"}],
  "clusters": [{"name": "cpu", "theme": "saturation", "anomaly_indexes": [0]}]
}
Hope this helps.`

	a := Parse(text)
	require.False(t, a.Empty())
	assert.Equal(t, "CPU saturation on web tier", a.Incident.Title)
	assert.Equal(t, SeverityHigh, a.Incident.Severity)
	assert.InDelta(t, 0.85, a.Incident.Confidence, 1e-9)
	require.Len(t, a.Anomalies, 1)
	assert.Equal(t, "10.0.0.1:9100", a.Anomalies[0].Instance)
	require.Len(t, a.Clusters, 1)
	assert.Equal(t, []int{0}, a.Clusters[0].AnomalyIndexes)
}

func TestParseMarkdownFencedResponse(t *testing.T) {
	text := "```json\n{\"incident\":{\"title\":\"t\",\"severity\":\"medium\",\"summary\":\"s\"}}\n```"
	a := Parse(text)
	assert.Equal(t, "t", a.Incident.Title)
	assert.Equal(t, SeverityMedium, a.Incident.Severity)
}

func TestParseNoBraces(t *testing.T) {
	a := Parse("no braces")
	assert.True(t, a.Empty())

	m := ParseRaw("no braces")
	assert.Empty(t, m)
}

func TestParseTrailingProseWithSecondObject(t *testing.T) {
	// First-to-last brace span is not valid JSON; the first balanced
	// object must still be recovered.
	m := ParseRaw(`prose {"a":1}  more {"b":2}`)
	require.NotEmpty(t, m)
	assert.EqualValues(t, 1, m["a"])
}

func TestParseInvalidJSON(t *testing.T) {
	a := Parse(`{"incident": {"title": }`)
	assert.True(t, a.Empty())
}

func TestParseAppliesDefaults(t *testing.T) {
	a := Parse(`{"incident":{"summary":"something odd","severity":"catastrophic","confidence":3.5}}`)
	require.False(t, a.Empty())
	assert.Equal(t, SeverityLow, a.Incident.Severity, "unknown severity falls back to low")
	assert.Equal(t, 1.0, a.Incident.Confidence, "confidence clamped to [0,1]")
	assert.Equal(t, "Batch Analysis", a.Incident.Title)
	assert.NotNil(t, a.Anomalies)
	assert.NotNil(t, a.Clusters)
	assert.NotNil(t, a.Incident.FixPlan.Immediate)
}
