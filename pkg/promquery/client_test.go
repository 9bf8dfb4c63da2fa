package promquery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, testLogger())
	require.NoError(t, err)
	return c, srv
}

func vectorResponse(results string) string {
	return fmt.Sprintf(`{"status":"success","data":{"resultType":"vector","result":[%s]}}`, results)
}

func TestFetchForTenant(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotQuery = r.Form.Get("query")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, vectorResponse(`
			{"metric":{"__name__":"cpu_usage","instance":"10.0.0.1:9100","user_id":"u1"},"value":[1756000000,"97.5"]},
			{"metric":{"__name__":"prometheus_tsdb_head_series","instance":"10.0.0.1:9100","user_id":"u1"},"value":[1756000000,"12"]},
			{"metric":{"__name__":"go_goroutines","instance":"10.0.0.1:9100","user_id":"u1"},"value":[1756000000,"40"]},
			{"metric":{"__name__":"disk_free","user_id":"u1"},"value":[1756000000,"11"]}`))
	})

	samples := c.FetchForTenant(context.Background(), "u1")
	assert.Equal(t, `{user_id="u1"}`, gotQuery)

	// Backend self-telemetry is filtered out.
	require.Len(t, samples, 2)
	assert.Equal(t, "cpu_usage", samples[0].Name)
	assert.Equal(t, float64(97.5), samples[0].Value)
	assert.Equal(t, "10.0.0.1:9100", samples[0].Instance)
	assert.Equal(t, "u1", samples[0].UserID)

	// Missing instance label degrades to "unknown".
	assert.Equal(t, "disk_free", samples[1].Name)
	assert.Equal(t, "unknown", samples[1].Instance)
}

func TestFetchForTenantBackendError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	samples := c.FetchForTenant(context.Background(), "u1")
	assert.Empty(t, samples)
	assert.NotNil(t, samples, "callers range over the result without nil checks")
}

func TestFetchForTenantNonNumericValue(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, vectorResponse(`{"metric":{"__name__":"up","instance":"a:1","user_id":"u1"},"value":[1756000000,"NaN"]}`))
	})

	samples := c.FetchForTenant(context.Background(), "u1")
	require.Len(t, samples, 1)
	assert.Equal(t, "NaN", samples[0].Value, "non-finite values are kept as strings")
}

func TestFetchForInstance(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotQuery = r.Form.Get("query")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, vectorResponse(``))
	})

	c.FetchForInstance(context.Background(), "10.0.0.7", 9100)
	assert.Equal(t, `{instance="10.0.0.7:9100"}`, gotQuery)
}

func TestActiveJobs(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","data":{"activeTargets":[
			{"labels":{"job":"node"},"health":"up","scrapeUrl":"","lastError":"","discoveredLabels":{}},
			{"labels":{"job":"node"},"health":"up","scrapeUrl":"","lastError":"","discoveredLabels":{}},
			{"labels":{"job":"down-job"},"health":"down","scrapeUrl":"","lastError":"","discoveredLabels":{}}
		],"droppedTargets":[]}}`)
	})

	jobs, err := c.ActiveJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"node"}, jobs)
}

func TestAsMaps(t *testing.T) {
	maps := AsMaps([]Sample{{Name: "cpu", Value: 1.0, Instance: "a:1", UserID: "u1"}})
	require.Len(t, maps, 1)
	assert.Equal(t, "cpu", maps[0]["name"])
	assert.Equal(t, "a:1", maps[0]["instance"])
}
