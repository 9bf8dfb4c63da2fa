package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name   string
	text   string
	tokens int
	err    error
	calls  int
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return "fake-model" }

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, int, error) {
	f.calls++
	if f.err != nil {
		return "", 0, f.err
	}
	return f.text, f.tokens, nil
}

func testGateway(providers ...Provider) *Gateway {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGateway(logger, providers...)
}

func TestAskPrefersPrimary(t *testing.T) {
	primary := &fakeProvider{name: "primary", text: "from primary", tokens: 42}
	secondary := &fakeProvider{name: "secondary", text: "from secondary", tokens: 7}

	res := testGateway(primary, secondary).Ask(context.Background(), "p", nil, "s1")
	require.Equal(t, Ok, res.Kind)
	assert.Equal(t, "from primary", res.Text)
	assert.Equal(t, 42, res.Tokens)
	assert.Equal(t, "primary", res.Provider)
	assert.Equal(t, 0, secondary.calls, "secondary must not be called when primary answers")
}

func TestAskFallsBackToSecondary(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("HTTP 503")}
	secondary := &fakeProvider{name: "secondary", text: "rescued", tokens: 9}

	res := testGateway(primary, secondary).Ask(context.Background(), "p", nil, "s1")
	require.Equal(t, Ok, res.Kind)
	assert.Equal(t, "rescued", res.Text)
	assert.Equal(t, "secondary", res.Provider)
	assert.Equal(t, 1, primary.calls)
}

func TestAskAllProvidersFail(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("timeout")}
	secondary := &fakeProvider{name: "secondary", err: errors.New("connection refused")}

	res := testGateway(primary, secondary).Ask(context.Background(), "p", nil, "s1")
	assert.Equal(t, Transient, res.Kind)
	assert.ErrorContains(t, res.Err, "connection refused")
}

func TestAskNoProviders(t *testing.T) {
	res := testGateway().Ask(context.Background(), "p", nil, "s1")
	assert.Equal(t, Unavailable, res.Kind)

	// Nil entries are skipped, not dereferenced.
	res = testGateway(nil, nil).Ask(context.Background(), "p", nil, "s1")
	assert.Equal(t, Unavailable, res.Kind)
}

func TestAskEstimatesTokensWhenUnreported(t *testing.T) {
	primary := &fakeProvider{name: "primary", text: "three word reply"}

	res := testGateway(primary).Ask(context.Background(), "two words", nil, "s1")
	require.Equal(t, Ok, res.Kind)
	assert.Equal(t, EstimateTokens("two words", "three word reply"), res.Tokens)
}

func TestEstimateTokens(t *testing.T) {
	// 5 words total, times 1.3, rounded up.
	assert.Equal(t, 7, EstimateTokens("two words", "three word reply"))
	assert.Equal(t, 0, EstimateTokens("", ""))
	assert.Equal(t, 2, EstimateTokens("one", ""))
}

func TestOllamaProviderGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":"{\"incident\":{}}","prompt_eval_count":100,"eval_count":20,"done":true}`)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	text, tokens, err := p.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"incident":{}}`, text)
	assert.Equal(t, 120, tokens)
}

func TestOllamaProviderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	_, _, err := p.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "HTTP 404")
}
