package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promsight/promsight/ent/anomaly"
	"github.com/promsight/promsight/pkg/analysis"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/timeutil"
	testdb "github.com/promsight/promsight/test/database"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleAnalysis() analysis.Analysis {
	return analysis.Parse(`{
		"incident": {
			"title": "CPU saturation",
			"severity": "high",
			"confidence": 0.8,
			"summary": "cpu pegged",
			"root_cause": "runaway process",
			"blast_radius": "web tier",
			"evidence": [{"metric": "cpu", "instance": "10.0.0.1:9100", "value": 99, "why_it_matters": "pegged"}],
			"fix_plan": {"immediate": ["restart"], "next_24h": [], "prevention": []}
		},
		"anomalies": [
			{"metric": "cpu", "instance": "10.0.0.1:9100", "observed": 99, "expected": "< 80", "symptom": "saturation", "cluster": "cpu"},
			{"metric": "mem", "instance": "all nodes", "observed": 91, "expected": "< 85", "symptom": "pressure", "cluster": "mem"}
		],
		"clusters": [{"name": "cpu", "theme": "saturation", "anomaly_indexes": [0]}]
	}`)
}

func sampleInput() StoreRunInput {
	w := testWindow()
	a := sampleAnalysis()
	return StoreRunInput{
		UserID:    "u1",
		Window:    w,
		Timezone:  timeutil.IST,
		SessionID: timeutil.SessionID(w, "batch", "u1"),
		Samples: []promquery.Sample{
			{Name: "cpu", Value: 99.0, Instance: "10.0.0.1:9100", UserID: "u1"},
			{Name: "mem", Value: 91.0, Instance: "10.0.0.2:9100", UserID: "u1"},
		},
		Analysis:    a,
		RawAnalysis: map[string]interface{}{"incident": map[string]interface{}{"title": "CPU saturation"}},
	}
}

func TestRunService_StoreRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, discardLogger())
	ctx := context.Background()

	result, err := service.StoreRun(ctx, sampleInput())
	require.NoError(t, err)
	assert.NotEmpty(t, result.BatchID)
	assert.NotEmpty(t, result.IncidentID)
	assert.Equal(t, "10.0.0.1:9100", result.PrimaryInstance)
	assert.Equal(t, 2, result.AnomalyCount)

	batch, err := client.MetricsBatch.Get(ctx, result.BatchID)
	require.NoError(t, err)
	assert.Equal(t, "u1", batch.UserID)
	assert.Equal(t, 2, batch.MetricsCount)
	assert.Equal(t, "10.0.0.1:9100", batch.PrimaryInstance)
	assert.Equal(t, "10.0.0.1", batch.IP)
	assert.Equal(t, 9100, batch.Port)
	assert.Contains(t, batch.WindowStartStr, "IST")

	inc, err := client.Incident.Get(ctx, result.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, result.BatchID, inc.BatchID)
	assert.Equal(t, "CPU saturation", inc.Title)
	assert.EqualValues(t, "high", inc.Severity)
	assert.InDelta(t, 0.8, inc.Confidence, 1e-9)
	require.Len(t, inc.Evidence, 1)
	assert.Equal(t, batch.SessionID, inc.SessionID)
}

// Anomalies whose instance is a free-form phrase inherit the incident's
// primary instance, with ip/port kept consistent.
func TestRunService_BogusInstanceFallsBackToPrimary(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, discardLogger())
	ctx := context.Background()

	result, err := service.StoreRun(ctx, sampleInput())
	require.NoError(t, err)

	anomalies, err := client.Anomaly.Query().
		Where(anomaly.IncidentIDEQ(result.IncidentID)).
		Order(anomaly.ByMetric()).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, anomalies, 2)

	// "cpu" kept its own valid instance.
	assert.Equal(t, "10.0.0.1:9100", anomalies[0].Instance)
	// "mem" reported "all nodes" and was rewritten.
	assert.Equal(t, result.PrimaryInstance, anomalies[1].Instance)
	assert.Equal(t, "10.0.0.1", anomalies[1].IP)
	assert.Equal(t, 9100, anomalies[1].Port)
	assert.InDelta(t, 91, anomalies[1].Observed, 1e-9)
}

func TestRunService_StoresRCACopy(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, discardLogger())
	ctx := context.Background()

	result, err := service.StoreRun(ctx, sampleInput())
	require.NoError(t, err)

	records, err := NewQueryService(client.Client).ListRCA(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, result.BatchID, records[0].BatchID)
	assert.Equal(t, result.IncidentID, records[0].IncidentID)
	assert.Equal(t, "cpu pegged", records[0].Summary)
	assert.Equal(t, "runaway process", records[0].Cause)
	assert.Equal(t, []string{"restart"}, records[0].Fix)
	assert.Equal(t, "10.0.0.1:9100", records[0].Instance)
}

func TestRunService_RawAnalysisRoundTrips(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, discardLogger())
	ctx := context.Background()

	result, err := service.StoreRun(ctx, sampleInput())
	require.NoError(t, err)

	inc, err := client.Incident.Get(ctx, result.IncidentID)
	require.NoError(t, err)

	raw, err := json.Marshal(inc.RawAnalysis)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "CPU saturation")
}
