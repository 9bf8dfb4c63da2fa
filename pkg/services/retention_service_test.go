package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promsight/promsight/ent"
	"github.com/promsight/promsight/ent/metricsbatch"
	"github.com/promsight/promsight/pkg/timeutil"
	testdb "github.com/promsight/promsight/test/database"
)

func seedBatches(t *testing.T, client *ent.Client, n int) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		err := client.MetricsBatch.Create().
			SetID(fmt.Sprintf("b%03d", i)).
			SetUserID("u1").
			SetWindowStart(ts).
			SetWindowEnd(ts.Add(5 * time.Minute)).
			SetCollectedAt(ts).
			SetWindowStartStr(timeutil.IST.Format(ts)).
			SetWindowEndStr(timeutil.IST.Format(ts.Add(5 * time.Minute))).
			SetCollectedAtStr(timeutil.IST.Format(ts)).
			SetTimezone("IST").
			SetMetrics([]map[string]interface{}{}).
			SetMetricsCount(0).
			SetSessionID(fmt.Sprintf("s%03d", i)).
			Exec(ctx)
		require.NoError(t, err)
	}
}

func TestRetentionService_KeepsNewest(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRetentionService(client.Client)
	ctx := context.Background()

	seedBatches(t, client.Client, 10)

	result, err := service.TrimAll(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Batches)
	assert.Equal(t, 6, result.Total())

	remaining, err := client.MetricsBatch.Query().
		Order(ent.Asc(metricsbatch.FieldCollectedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 4)
	// The four newest survive.
	assert.Equal(t, "b006", remaining[0].ID)
	assert.Equal(t, "b009", remaining[3].ID)
}

func TestRetentionService_NoopUnderCap(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRetentionService(client.Client)
	ctx := context.Background()

	seedBatches(t, client.Client, 3)

	result, err := service.TrimAll(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())

	n, err := client.MetricsBatch.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
