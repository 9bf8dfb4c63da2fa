package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/promsight/promsight/test/database"
)

func TestQueryService_Incidents(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client, discardLogger())
	queries := NewQueryService(client.Client)
	ctx := context.Background()

	result, err := runs.StoreRun(ctx, sampleInput())
	require.NoError(t, err)

	otherInput := sampleInput()
	otherInput.UserID = "u2"
	_, err = runs.StoreRun(ctx, otherInput)
	require.NoError(t, err)

	t.Run("lists only the tenant's incidents", func(t *testing.T) {
		incidents, err := queries.ListIncidents(ctx, "u1", IncidentFilter{})
		require.NoError(t, err)
		require.Len(t, incidents, 1)
		assert.Equal(t, result.IncidentID, incidents[0].ID)
	})

	t.Run("filters by severity", func(t *testing.T) {
		incidents, err := queries.ListIncidents(ctx, "u1", IncidentFilter{Severity: "high"})
		require.NoError(t, err)
		assert.Len(t, incidents, 1)

		incidents, err = queries.ListIncidents(ctx, "u1", IncidentFilter{Severity: "critical"})
		require.NoError(t, err)
		assert.Empty(t, incidents)
	})

	t.Run("full-text search over summary and root cause", func(t *testing.T) {
		incidents, err := queries.ListIncidents(ctx, "u1", IncidentFilter{Search: "runaway"})
		require.NoError(t, err)
		assert.Len(t, incidents, 1)

		incidents, err = queries.ListIncidents(ctx, "u1", IncidentFilter{Search: "disk"})
		require.NoError(t, err)
		assert.Empty(t, incidents)
	})

	t.Run("get is tenant scoped", func(t *testing.T) {
		_, err := queries.GetIncident(ctx, "u2", result.IncidentID)
		assert.ErrorIs(t, err, ErrNotFound)

		inc, err := queries.GetIncident(ctx, "u1", result.IncidentID)
		require.NoError(t, err)
		assert.Equal(t, "CPU saturation", inc.Title)
	})
}

func TestQueryService_AnomaliesAndStats(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client, discardLogger())
	queries := NewQueryService(client.Client)
	ctx := context.Background()

	result, err := runs.StoreRun(ctx, sampleInput())
	require.NoError(t, err)

	anomalies, err := queries.ListAnomalies(ctx, "u1", AnomalyFilter{IncidentID: result.IncidentID})
	require.NoError(t, err)
	assert.Len(t, anomalies, 2)

	anomalies, err = queries.ListAnomalies(ctx, "u1", AnomalyFilter{IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Len(t, anomalies, 2, "rewritten anomaly shares the primary ip")

	batches, err := queries.ListBatches(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, batches, 1)

	stats, err := queries.TenantStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &Stats{Batches: 1, Incidents: 1, Anomalies: 2, RCA: 1}, stats)
}
