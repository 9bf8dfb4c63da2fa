// Package llm routes analysis prompts to a primary model provider with a
// single fallback to a secondary provider, reporting the outcome as a tagged
// Result.
package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/promsight/promsight/pkg/tracing"
)

// attemptTimeout bounds each provider call.
const attemptTimeout = 120 * time.Second

// Gateway tries providers in fixed order until one answers.
type Gateway struct {
	providers []Provider
	logger    *slog.Logger
}

// NewGateway builds a gateway over the given providers, in priority order.
// Nil providers are skipped so callers can pass optional entries directly.
func NewGateway(logger *slog.Logger, providers ...Provider) *Gateway {
	active := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &Gateway{
		providers: active,
		logger:    logger.With("component", "llm"),
	}
}

// Ask sends the prompt to the first provider that answers. Each attempt is
// recorded as a generation nested under the caller's trace; token usage
// comes from the provider when reported, otherwise it is estimated. trace
// may be nil when the caller does not trace.
func (g *Gateway) Ask(ctx context.Context, prompt string, trace *tracing.Trace, sessionID string) Result {
	if len(g.providers) == 0 {
		g.logger.Error("No LLM providers configured")
		return Result{Kind: Unavailable}
	}

	var lastErr error
	for _, p := range g.providers {
		text, tokens, err := g.attempt(ctx, trace, p, prompt, sessionID)
		if err != nil {
			g.logger.Warn("Provider attempt failed",
				"provider", p.Name(),
				"model", p.Model(),
				"error", err)
			lastErr = err
			continue
		}

		g.logger.Info("LLM call succeeded",
			"provider", p.Name(),
			"model", p.Model(),
			"tokens", tokens,
			"session_id", sessionID)
		return Result{Kind: Ok, Text: text, Tokens: tokens, Provider: p.Name()}
	}

	return Result{Kind: Transient, Err: lastErr}
}

func (g *Gateway) attempt(ctx context.Context, trace *tracing.Trace, p Provider, prompt, sessionID string) (string, int, error) {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	gen := trace.StartGeneration(p.Model(), prompt, map[string]interface{}{
		"provider":   p.Name(),
		"timeout":    attemptTimeout.String(),
		"session_id": sessionID,
	})

	start := time.Now()
	text, tokens, err := p.Generate(ctx, prompt)
	latency := time.Since(start)

	if err != nil {
		gen.End("", tracing.Usage{}, map[string]interface{}{
			"provider":   p.Name(),
			"error":      err.Error(),
			"latency_ms": latency.Milliseconds(),
		})
		return "", 0, err
	}

	if tokens == 0 {
		tokens = EstimateTokens(prompt, text)
	}
	gen.End(text, tracing.Usage{Total: tokens}, map[string]interface{}{
		"provider":   p.Name(),
		"latency_ms": latency.Milliseconds(),
	})
	return text, tokens, nil
}
