package tracing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledTracerIsInert(t *testing.T) {
	tr := New(context.Background(), false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.False(t, tr.Enabled())

	// Every call on a disabled tracer must be a no-op, not a panic.
	trace := tr.StartTrace("batch-analysis", "batch:202601010000-202601010005_user_u1", nil)
	gen := trace.StartGeneration("llama3", "prompt", nil)
	gen.End("output", Usage{Input: 10, Output: 5, Total: 15}, nil)
	trace.End("done")
	tr.Flush(context.Background())
}

func TestNilTraceHandles(t *testing.T) {
	var trace *Trace
	var gen *Generation

	gen2 := trace.StartGeneration("m", "p", nil)
	assert.NotNil(t, gen2)
	gen.End("", Usage{}, nil)
	trace.End(nil)
}
