package monitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promsight/promsight/pkg/llm"
	"github.com/promsight/promsight/pkg/notify"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/services"
	"github.com/promsight/promsight/pkg/timeutil"
	"github.com/promsight/promsight/pkg/tracing"
)

const validAnalysisJSON = `{
	"incident": {
		"title": "CPU saturation",
		"severity": "high",
		"confidence": 0.8,
		"summary": "cpu pegged",
		"root_cause": "runaway process",
		"blast_radius": "web tier",
		"evidence": [{"metric": "cpu", "instance": "10.0.0.1:9100", "value": 97, "why_it_matters": "pegged"}],
		"fix_plan": {"immediate": ["restart"], "next_24h": [], "prevention": []}
	},
	"anomalies": [
		{"metric": "cpu", "instance": "10.0.0.1:9100", "observed": 97, "expected": "< 80", "symptom": "saturation", "cluster": "cpu"},
		{"metric": "mem", "instance": "10.0.0.1:9100", "observed": 88, "expected": "< 85", "symptom": "pressure", "cluster": "mem"}
	],
	"clusters": [{"name": "cpu", "theme": "saturation", "anomaly_indexes": [0, 1]}]
}`

type fakeSource struct {
	samples []promquery.Sample
	calls   int
	userIDs []string
}

func (f *fakeSource) FetchForTenant(_ context.Context, userID string) []promquery.Sample {
	f.calls++
	f.userIDs = append(f.userIDs, userID)
	return f.samples
}

type fakeGateway struct {
	result     llm.Result
	calls      int
	lastPrompt string
	lastTrace  *tracing.Trace
}

func (f *fakeGateway) Ask(_ context.Context, prompt string, trace *tracing.Trace, _ string) llm.Result {
	f.calls++
	f.lastPrompt = prompt
	f.lastTrace = trace
	return f.result
}

type fakeTracer struct {
	names      []string
	sessionIDs []string
	metadata   []map[string]interface{}
}

func (f *fakeTracer) StartTrace(name, sessionID string, metadata map[string]interface{}) *tracing.Trace {
	f.names = append(f.names, name)
	f.sessionIDs = append(f.sessionIDs, sessionID)
	f.metadata = append(f.metadata, metadata)
	return &tracing.Trace{}
}

type fakeLedger struct {
	processed bool
	checkErr  error
	markErr   error
	marks     []services.MarkProcessedInput
}

func (f *fakeLedger) IsProcessed(context.Context, string, timeutil.Window, timeutil.Timezone) (bool, error) {
	return f.processed, f.checkErr
}

func (f *fakeLedger) MarkProcessed(_ context.Context, input services.MarkProcessedInput) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marks = append(f.marks, input)
	return nil
}

type fakeStore struct {
	result *services.StoreRunResult
	err    error
	inputs []services.StoreRunInput
}

func (f *fakeStore) StoreRun(_ context.Context, input services.StoreRunInput) (*services.StoreRunResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, input)
	return f.result, nil
}

type fakeNotifier struct {
	alerts  []notify.Alert
	userIDs []string
}

func (f *fakeNotifier) SendAlerts(_ context.Context, userID string, alert notify.Alert) {
	f.userIDs = append(f.userIDs, userID)
	f.alerts = append(f.alerts, alert)
}

type workerFixture struct {
	source   *fakeSource
	gateway  *fakeGateway
	ledger   *fakeLedger
	store    *fakeStore
	notifier *fakeNotifier
	worker   *Worker
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	return Config{
		IntervalMinutes:    30,
		MaxMetrics:         600,
		MetricsPerInstance: 200,
		SessionPrefix:      "batch",
		ErrorBackoff:       time.Minute,
		Timezone:           timeutil.IST,
	}
}

func newFixture(t *testing.T) *workerFixture {
	t.Helper()
	f := &workerFixture{
		source: &fakeSource{samples: []promquery.Sample{
			{Name: "cpu", Value: 97.0, Instance: "10.0.0.1:9100", UserID: "u1"},
			{Name: "mem", Value: 88.0, Instance: "10.0.0.1:9100", UserID: "u1"},
		}},
		gateway:  &fakeGateway{result: llm.Result{Kind: llm.Ok, Text: validAnalysisJSON, Provider: "primary"}},
		ledger:   &fakeLedger{},
		store:    &fakeStore{result: &services.StoreRunResult{BatchID: "b1", IncidentID: "inc1", PrimaryInstance: "10.0.0.1:9100", AnomalyCount: 2}},
		notifier: &fakeNotifier{},
	}
	f.worker = NewWorker("u1", testConfig(), Deps{
		Source:   f.source,
		Gateway:  f.gateway,
		Ledger:   f.ledger,
		Runs:     f.store,
		Notifier: f.notifier,
		Logger:   testLogger(),
	})
	return f
}

func tickAt() time.Time {
	return time.Date(2025, 1, 2, 12, 15, 0, 0, timeutil.IST.Location)
}

func TestWorker_TickHappyPath(t *testing.T) {
	f := newFixture(t)

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.NoError(t, err)
	assert.Equal(t, Done, outcome)

	require.Len(t, f.store.inputs, 1)
	input := f.store.inputs[0]
	assert.Equal(t, "u1", input.UserID)
	assert.Equal(t, "batch:202501021200-202501021230_user_u1", input.SessionID)
	assert.Len(t, input.Samples, 2)
	assert.Equal(t, "high", input.Analysis.Incident.Severity)
	assert.NotEmpty(t, input.RawAnalysis)

	require.Len(t, f.notifier.alerts, 1)
	alert := f.notifier.alerts[0]
	assert.Equal(t, []string{"u1"}, f.notifier.userIDs)
	assert.Contains(t, alert.Subject(), "[HIGH]")
	assert.Equal(t, 2, alert.AnomalyCount)
	assert.Equal(t, input.SessionID, alert.SessionID)

	require.Len(t, f.ledger.marks, 1)
	assert.Equal(t, "inc1", f.ledger.marks[0].IncidentID)
	assert.Equal(t, input.SessionID, f.ledger.marks[0].SessionID)

	assert.Contains(t, f.gateway.lastPrompt, "cpu: 97")
	assert.Contains(t, f.gateway.lastPrompt, "BATCH WINDOW (IST): 2025-01-02 12:00:00 IST -> 2025-01-02 12:30:00 IST (30 min)")
}

// A window already in the ledger ends the tick before any fetch or LLM call.
func TestWorker_TickSkipsProcessedWindow(t *testing.T) {
	f := newFixture(t)
	f.ledger.processed = true

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.NoError(t, err)
	assert.Equal(t, Skip, outcome)

	assert.Zero(t, f.source.calls)
	assert.Zero(t, f.gateway.calls)
	assert.Empty(t, f.store.inputs)
	assert.Empty(t, f.notifier.alerts)
	assert.Empty(t, f.ledger.marks)
}

// An empty fetch ends the tick without a ledger entry so the window can
// still be analysed if samples appear later.
func TestWorker_TickEmptyFetch(t *testing.T) {
	f := newFixture(t)
	f.source.samples = nil

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.NoError(t, err)
	assert.Equal(t, Empty, outcome)

	assert.Zero(t, f.gateway.calls)
	assert.Empty(t, f.ledger.marks)
	assert.Empty(t, f.notifier.alerts)
}

func TestWorker_TickLLMFailure(t *testing.T) {
	f := newFixture(t)
	f.gateway.result = llm.Result{Kind: llm.Transient, Err: errors.New("503")}

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.Error(t, err)
	assert.Equal(t, Fail, outcome)
	assert.Empty(t, f.store.inputs)
	assert.Empty(t, f.ledger.marks)
}

func TestWorker_TickMalformedResponse(t *testing.T) {
	f := newFixture(t)
	f.gateway.result = llm.Result{Kind: llm.Ok, Text: "sorry, no JSON today", Provider: "primary"}

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.Error(t, err)
	assert.Equal(t, Fail, outcome)
	assert.Empty(t, f.store.inputs)
	assert.Empty(t, f.ledger.marks)
}

func TestWorker_TickStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.err = errors.New("connection reset")

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.Error(t, err)
	assert.Equal(t, Fail, outcome)
	assert.Empty(t, f.notifier.alerts)
	assert.Empty(t, f.ledger.marks)
}

// When a concurrent replica wins the ledger insert, the tick downgrades to
// Skip instead of failing.
func TestWorker_TickConcurrentDuplicate(t *testing.T) {
	f := newFixture(t)
	f.ledger.markErr = services.ErrDuplicateWindow

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.NoError(t, err)
	assert.Equal(t, Skip, outcome)
}

// Every tick that passes the ledger guard runs under a root trace, with the
// provider attempts nested beneath it.
func TestWorker_TickOpensRootTrace(t *testing.T) {
	f := newFixture(t)
	tracer := &fakeTracer{}
	f.worker.deps.Tracer = tracer

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.NoError(t, err)
	assert.Equal(t, Done, outcome)

	require.Len(t, tracer.names, 1)
	assert.Equal(t, "Batch Monitoring", tracer.names[0])
	assert.Equal(t, "batch:202501021200-202501021230_user_u1", tracer.sessionIDs[0])
	assert.Equal(t, "u1", tracer.metadata[0]["user_id"])
	assert.NotNil(t, f.gateway.lastTrace)
}

// Empty windows are traced too, so a tenant with no samples is still
// visible in the tracing backend.
func TestWorker_TickTracesEmptyWindow(t *testing.T) {
	f := newFixture(t)
	f.source.samples = nil
	tracer := &fakeTracer{}
	f.worker.deps.Tracer = tracer

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.NoError(t, err)
	assert.Equal(t, Empty, outcome)
	assert.Len(t, tracer.names, 1)
}

// An already-processed window ends before the trace opens.
func TestWorker_TickNoTraceWhenGuardSkips(t *testing.T) {
	f := newFixture(t)
	f.ledger.processed = true
	tracer := &fakeTracer{}
	f.worker.deps.Tracer = tracer

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.NoError(t, err)
	assert.Equal(t, Skip, outcome)
	assert.Empty(t, tracer.names)
}

type scriptedProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return "test-model" }

func (p *scriptedProvider) Generate(context.Context, string) (string, int, error) {
	p.calls++
	return p.text, 10, p.err
}

// With the primary provider down, the tick still completes through the
// secondary and the run is persisted.
func TestWorker_TickFallsBackToSecondary(t *testing.T) {
	f := newFixture(t)
	primary := &scriptedProvider{name: "primary", err: errors.New("503 service unavailable")}
	secondary := &scriptedProvider{name: "secondary", text: validAnalysisJSON}
	f.worker.deps.Tracer = tracing.New(context.Background(), false, testLogger())
	f.worker.deps.Gateway = llm.NewGateway(testLogger(), primary, secondary)

	outcome, err := f.worker.Tick(context.Background(), tickAt())
	require.NoError(t, err)
	assert.Equal(t, Done, outcome)

	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
	require.Len(t, f.ledger.marks, 1)
	require.Len(t, f.notifier.alerts, 1)
}

func TestWorker_StartStop(t *testing.T) {
	f := newFixture(t)

	f.worker.Start(context.Background())
	f.worker.Stop()

	// The loop was still sleeping towards the next aligned bucket.
	assert.Zero(t, f.source.calls)
	h := f.worker.Health()
	assert.Equal(t, "u1", h.UserID)
	assert.Empty(t, h.LastOutcome)
}
