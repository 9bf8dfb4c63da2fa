// Package promquery reads tenant-scoped series from a Prometheus-compatible
// backend using instant queries.
package promquery

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/prometheus/client_golang/api"
	promv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// Self-telemetry of the metrics backend is never useful analysis input.
var internalPrefixes = []string{"prometheus_", "go_", "scrape_", "promhttp_"}

const (
	queryTimeout   = 30 * time.Second
	targetsTimeout = 10 * time.Second
)

// Sample is one series value at collection time. Value is a float64 when the
// backend returned a finite number and the raw string otherwise.
type Sample struct {
	Name     string `json:"name"`
	Value    any    `json:"value"`
	Instance string `json:"instance"`
	UserID   string `json:"user_id"`
}

// AsMaps converts samples to the generic shape persisted on a batch record.
func AsMaps(samples []Sample) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(samples))
	for _, s := range samples {
		out = append(out, map[string]interface{}{
			"name":     s.Name,
			"value":    s.Value,
			"instance": s.Instance,
			"user_id":  s.UserID,
		})
	}
	return out
}

// Client wraps the Prometheus HTTP API for tenant-scoped collection.
type Client struct {
	api    promv1.API
	logger *slog.Logger
}

// NewClient builds a client for the backend at baseURL.
func NewClient(baseURL string, logger *slog.Logger) (*Client, error) {
	c, err := api.NewClient(api.Config{Address: baseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus client: %w", err)
	}
	return &Client{
		api:    promv1.NewAPI(c),
		logger: logger.With("component", "promquery"),
	}, nil
}

// FetchForTenant returns all current series carrying the tenant's user_id
// label. Backend errors degrade to an empty result so a flaky scrape never
// aborts the caller's cycle.
func (c *Client) FetchForTenant(ctx context.Context, userID string) []Sample {
	return c.fetch(ctx, fmt.Sprintf(`{user_id=%q}`, userID))
}

// FetchForInstance returns all current series for one scrape endpoint.
func (c *Client) FetchForInstance(ctx context.Context, ip string, port int) []Sample {
	return c.fetch(ctx, fmt.Sprintf(`{instance=%q}`, fmt.Sprintf("%s:%d", ip, port)))
}

func (c *Client) fetch(ctx context.Context, query string) []Sample {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	value, warnings, err := c.api.Query(ctx, query, time.Now())
	if err != nil {
		c.logger.Error("Query failed", "query", query, "error", err)
		return []Sample{}
	}
	for _, w := range warnings {
		c.logger.Warn("Query warning", "query", query, "warning", w)
	}

	vector, ok := value.(model.Vector)
	if !ok {
		c.logger.Warn("Unexpected result type", "query", query, "type", value.Type())
		return []Sample{}
	}

	samples := make([]Sample, 0, len(vector))
	for _, s := range vector {
		name := string(s.Metric[model.MetricNameLabel])
		if isInternal(name) {
			continue
		}

		instance := string(s.Metric["instance"])
		if instance == "" {
			instance = "unknown"
		}
		userID := string(s.Metric["user_id"])
		if userID == "" {
			userID = "unknown"
		}

		var val any = float64(s.Value)
		if math.IsNaN(float64(s.Value)) || math.IsInf(float64(s.Value), 0) {
			val = s.Value.String()
		}

		samples = append(samples, Sample{
			Name:     name,
			Value:    val,
			Instance: instance,
			UserID:   userID,
		})
	}
	return samples
}

// ActiveJobs returns the distinct job names of scrape targets currently up,
// used by the health endpoint to report backend reachability.
func (c *Client) ActiveJobs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, targetsTimeout)
	defer cancel()

	result, err := c.api.Targets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}

	seen := make(map[string]struct{})
	jobs := make([]string, 0)
	for _, t := range result.Active {
		if t.Health != promv1.HealthGood {
			continue
		}
		job := string(t.Labels["job"])
		if job == "" {
			continue
		}
		if _, ok := seen[job]; ok {
			continue
		}
		seen[job] = struct{}{}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isInternal(name string) bool {
	for _, p := range internalPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
