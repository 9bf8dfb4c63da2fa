package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promsight/promsight/pkg/analysis"
	"github.com/promsight/promsight/pkg/chatcache"
	"github.com/promsight/promsight/pkg/database"
	"github.com/promsight/promsight/pkg/metrics"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/services"
	"github.com/promsight/promsight/pkg/timeutil"
	testdb "github.com/promsight/promsight/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	db := testdb.NewTestClient(t)
	s := NewServer(
		db,
		services.NewTargetService(db.Client),
		services.NewQueryService(db.Client),
		services.NewNotificationService(db.Client),
		chatcache.NewCache(0, testLogger()),
		metrics.New(),
		testLogger(),
	)
	return s, db
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func seedRun(t *testing.T, db *database.Client, userID string) *services.StoreRunResult {
	t.Helper()
	start := time.Date(2026, 1, 29, 3, 0, 0, 0, time.UTC)
	w := timeutil.Window{Start: start, End: start.Add(30 * time.Minute)}
	parsed := analysis.Parse(`{
		"incident": {
			"title": "CPU saturation",
			"severity": "high",
			"confidence": 0.8,
			"summary": "cpu pegged",
			"root_cause": "runaway process",
			"evidence": [{"metric": "cpu", "instance": "10.0.0.1:9100", "value": 97, "why_it_matters": "pegged"}],
			"fix_plan": {"immediate": ["restart"], "next_24h": [], "prevention": []}
		},
		"anomalies": [{"metric": "cpu", "instance": "10.0.0.1:9100", "observed": 97, "expected": "< 80", "symptom": "saturation", "cluster": "cpu"}],
		"clusters": []
	}`)

	result, err := services.NewRunService(db.Client, testLogger()).StoreRun(context.Background(), services.StoreRunInput{
		UserID:    userID,
		Window:    w,
		Timezone:  timeutil.IST,
		SessionID: timeutil.SessionID(w, "batch", userID),
		Samples: []promquery.Sample{
			{Name: "cpu", Value: 97.0, Instance: "10.0.0.1:9100", UserID: userID},
		},
		Analysis:    parsed,
		RawAnalysis: map[string]interface{}{"incident": map[string]interface{}{"title": "CPU saturation"}},
	})
	require.NoError(t, err)
	return result
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	require.NotNil(t, resp.Database)
	assert.Equal(t, "healthy", resp.Database.Status)
}

func TestTargetCRUD(t *testing.T) {
	s, _ := newTestServer(t)

	create := CreateTargetRequest{
		UserID:   "u1",
		Name:     "node exporter",
		Endpoint: "10.0.0.4:9100",
	}
	rec := doJSON(t, s, http.MethodPost, "/api/v1/targets", create)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID      string `json:"id"`
		Enabled bool   `json:"enabled"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.True(t, created.Enabled)

	t.Run("duplicate endpoint conflicts", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/targets", create)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad endpoint is rejected", func(t *testing.T) {
		bad := create
		bad.Endpoint = "all windows servers"
		rec := doJSON(t, s, http.MethodPost, "/api/v1/targets", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list requires user_id", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/targets", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list is tenant scoped", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/targets?user_id=u1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var targets []json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &targets))
		assert.Len(t, targets, 1)

		rec = doJSON(t, s, http.MethodGet, "/api/v1/targets?user_id=u2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &targets))
		assert.Empty(t, targets)
	})

	t.Run("patch disables", func(t *testing.T) {
		enabled := false
		rec := doJSON(t, s, http.MethodPatch, "/api/v1/targets/"+created.ID+"?user_id=u1",
			UpdateTargetRequest{Enabled: &enabled})
		require.Equal(t, http.StatusOK, rec.Code)
		var updated struct {
			Enabled bool `json:"enabled"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.False(t, updated.Enabled)
	})

	t.Run("cross-tenant access is a 404", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/targets/"+created.ID+"?user_id=u2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodDelete, "/api/v1/targets/"+created.ID+"?user_id=u1", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, s, http.MethodGet, "/api/v1/targets/"+created.ID+"?user_id=u1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestQueryEndpoints(t *testing.T) {
	s, db := newTestServer(t)
	result := seedRun(t, db, "u1")

	t.Run("incidents are tenant scoped", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/incidents?user_id=u1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var incidents []json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &incidents))
		assert.Len(t, incidents, 1)

		rec = doJSON(t, s, http.MethodGet, "/api/v1/incidents?user_id=u2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &incidents))
		assert.Empty(t, incidents)
	})

	t.Run("severity filter", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/incidents?user_id=u1&severity=critical", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var incidents []json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &incidents))
		assert.Empty(t, incidents)
	})

	t.Run("incident by id", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/incidents/"+result.IncidentID+"?user_id=u1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "CPU saturation")

		rec = doJSON(t, s, http.MethodGet, "/api/v1/incidents/"+result.IncidentID+"?user_id=u2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anomalies batches rca", func(t *testing.T) {
		for _, path := range []string{"/api/v1/anomalies", "/api/v1/batches", "/api/v1/rca"} {
			rec := doJSON(t, s, http.MethodGet, path+"?user_id=u1", nil)
			require.Equal(t, http.StatusOK, rec.Code, path)
			var rows []json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
			assert.Len(t, rows, 1, path)
		}
	})

	t.Run("stats", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/stats?user_id=u1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var stats services.Stats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, services.Stats{Batches: 1, Incidents: 1, Anomalies: 1, RCA: 1}, stats)
	})
}

func TestNotificationEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/v1/notifications", UpsertNotificationRequest{
		UserID:     "u1",
		Channel:    "slack",
		Enabled:    true,
		WebhookURL: "https://hooks.example.com/T/B/x",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("invalid channel", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPut, "/api/v1/notifications", UpsertNotificationRequest{
			UserID:  "u1",
			Channel: "pager",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/notifications?user_id=u1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var rows []json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		assert.Len(t, rows, 1)
	})
}

func TestChatSessionEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var session struct {
		ID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.ID)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/chat/sessions/"+session.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/chat/sessions/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	// Generate one counted request first.
	doJSON(t, s, http.MethodGet, "/healthz", nil)

	rec := doJSON(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "promsight_http_requests_total")
}
