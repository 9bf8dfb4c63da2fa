// Package tracing provides optional Langfuse tracing for LLM calls. Every
// method is safe to call on a disabled tracer, so callers never branch on
// whether tracing is configured.
package tracing

import (
	"context"
	"log/slog"
	"time"

	"github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

// Tracer records LLM traces when enabled. The zero value and a nil Tracer
// are both inert.
type Tracer struct {
	client *langfuse.Langfuse
	logger *slog.Logger
}

// New creates a tracer. When enabled is false the tracer is inert. The
// Langfuse client reads its credentials from LANGFUSE_PUBLIC_KEY,
// LANGFUSE_SECRET_KEY and LANGFUSE_HOST.
func New(ctx context.Context, enabled bool, logger *slog.Logger) *Tracer {
	t := &Tracer{logger: logger.With("component", "tracing")}
	if !enabled {
		t.logger.Info("Tracing disabled")
		return t
	}
	t.client = langfuse.New(ctx)
	t.logger.Info("Tracing enabled")
	return t
}

// Enabled reports whether traces are being recorded.
func (t *Tracer) Enabled() bool {
	return t != nil && t.client != nil
}

// Trace is one root trace, usually one LLM call path.
type Trace struct {
	tracer *Tracer
	trace  *model.Trace
}

// StartTrace opens a root trace carrying the session id. Returns an inert
// trace when the tracer is disabled or the backend rejects the trace.
func (t *Tracer) StartTrace(name, sessionID string, metadata map[string]interface{}) *Trace {
	if !t.Enabled() {
		return &Trace{}
	}

	tr, err := t.client.Trace(&model.Trace{
		Name:      name,
		SessionID: sessionID,
		Metadata:  model.M(metadata),
	})
	if err != nil {
		t.logger.Warn("Failed to start trace", "name", name, "error", err)
		return &Trace{}
	}
	return &Trace{tracer: t, trace: tr}
}

// Generation is a nested observation holding one model invocation.
type Generation struct {
	tracer *Tracer
	gen    *model.Generation
}

// Usage is the token usage attached to a finished generation.
type Usage struct {
	Input  int
	Output int
	Total  int
}

// StartGeneration opens a generation child under the trace with the prompt
// as input.
func (tr *Trace) StartGeneration(modelName, input string, metadata map[string]interface{}) *Generation {
	if tr == nil || tr.tracer == nil || !tr.tracer.Enabled() {
		return &Generation{}
	}

	now := time.Now()
	g, err := tr.tracer.client.Generation(&model.Generation{
		TraceID:   tr.trace.ID,
		Name:      "llm-generation",
		Model:     modelName,
		Input:     input,
		StartTime: &now,
		Metadata:  model.M(metadata),
	}, nil)
	if err != nil {
		tr.tracer.logger.Warn("Failed to start generation", "error", err)
		return &Generation{}
	}
	return &Generation{tracer: tr.tracer, gen: g}
}

// End closes the generation with its output and token usage.
func (g *Generation) End(output string, usage Usage, metadata map[string]interface{}) {
	if g == nil || g.tracer == nil || g.gen == nil {
		return
	}

	now := time.Now()
	g.gen.EndTime = &now
	g.gen.Output = output
	g.gen.Usage = model.Usage{
		Input:  usage.Input,
		Output: usage.Output,
		Total:  usage.Total,
	}
	if metadata != nil {
		g.gen.Metadata = model.M(metadata)
	}
	if _, err := g.tracer.client.GenerationEnd(g.gen); err != nil {
		g.tracer.logger.Warn("Failed to end generation", "error", err)
	}
}

// End closes the root trace with its final output.
func (tr *Trace) End(output interface{}) {
	if tr == nil || tr.tracer == nil || tr.trace == nil {
		return
	}

	tr.trace.Output = output
	if _, err := tr.tracer.client.Trace(tr.trace); err != nil {
		tr.tracer.logger.Warn("Failed to end trace", "error", err)
	}
}

// Flush blocks until buffered traces have been delivered. Called once during
// shutdown.
func (t *Tracer) Flush(ctx context.Context) {
	if !t.Enabled() {
		return
	}
	t.client.Flush(ctx)
}
