package services

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/promsight/promsight/ent"
	"github.com/promsight/promsight/ent/anomaly"
	"github.com/promsight/promsight/ent/incident"
	"github.com/promsight/promsight/ent/metricsbatch"
	"github.com/promsight/promsight/ent/rcarecord"
)

const defaultListLimit = 50

// QueryService serves the read endpoints over the stored analysis records.
type QueryService struct {
	client *ent.Client
}

// NewQueryService creates a new QueryService.
func NewQueryService(client *ent.Client) *QueryService {
	if client == nil {
		panic("NewQueryService: client must not be nil")
	}
	return &QueryService{client: client}
}

// IncidentFilter narrows an incident listing.
type IncidentFilter struct {
	Severity string // exact match when non-empty
	Search   string // full-text over summary and root cause
	Limit    int
}

// ListIncidents returns a tenant's incidents, newest window first.
func (s *QueryService) ListIncidents(ctx context.Context, userID string, filter IncidentFilter) ([]*ent.Incident, error) {
	q := s.client.Incident.Query().
		Where(incident.UserIDEQ(userID)).
		Order(ent.Desc(incident.FieldCreatedAt)).
		Limit(limitOrDefault(filter.Limit))

	if filter.Severity != "" {
		q = q.Where(incident.SeverityEQ(incident.Severity(filter.Severity)))
	}
	if filter.Search != "" {
		// Backed by the GIN index created at migration time.
		search := filter.Search
		q = q.Where(func(sel *entsql.Selector) {
			sel.Where(entsql.P(func(b *entsql.Builder) {
				b.WriteString("to_tsvector('english', COALESCE(summary, '') || ' ' || COALESCE(root_cause, '')) @@ plainto_tsquery('english', ")
				b.Arg(search)
				b.WriteString(")")
			}))
		})
	}

	incidents, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return incidents, nil
}

// GetIncident fetches one incident scoped to the tenant.
func (s *QueryService) GetIncident(ctx context.Context, userID, incidentID string) (*ent.Incident, error) {
	inc, err := s.client.Incident.Query().
		Where(incident.IDEQ(incidentID), incident.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return inc, nil
}

// AnomalyFilter narrows an anomaly listing.
type AnomalyFilter struct {
	IncidentID string
	IP         string
	Limit      int
}

// ListAnomalies returns a tenant's anomalies, newest first.
func (s *QueryService) ListAnomalies(ctx context.Context, userID string, filter AnomalyFilter) ([]*ent.Anomaly, error) {
	q := s.client.Anomaly.Query().
		Where(anomaly.UserIDEQ(userID)).
		Order(ent.Desc(anomaly.FieldCreatedAt)).
		Limit(limitOrDefault(filter.Limit))

	if filter.IncidentID != "" {
		q = q.Where(anomaly.IncidentIDEQ(filter.IncidentID))
	}
	if filter.IP != "" {
		q = q.Where(anomaly.IPEQ(filter.IP))
	}

	anomalies, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list anomalies: %w", err)
	}
	return anomalies, nil
}

// ListBatches returns a tenant's metric batches, newest first.
func (s *QueryService) ListBatches(ctx context.Context, userID string, limit int) ([]*ent.MetricsBatch, error) {
	batches, err := s.client.MetricsBatch.Query().
		Where(metricsbatch.UserIDEQ(userID)).
		Order(ent.Desc(metricsbatch.FieldCollectedAt)).
		Limit(limitOrDefault(limit)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	return batches, nil
}

// ListRCA returns a tenant's RCA records, newest first.
func (s *QueryService) ListRCA(ctx context.Context, userID string, limit int) ([]*ent.RCARecord, error) {
	records, err := s.client.RCARecord.Query().
		Where(rcarecord.UserIDEQ(userID)).
		Order(ent.Desc(rcarecord.FieldTimestamp)).
		Limit(limitOrDefault(limit)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list RCA records: %w", err)
	}
	return records, nil
}

// Stats summarises a tenant's stored records.
type Stats struct {
	Batches   int `json:"batches"`
	Incidents int `json:"incidents"`
	Anomalies int `json:"anomalies"`
	RCA       int `json:"rca"`
}

// TenantStats counts a tenant's records per collection.
func (s *QueryService) TenantStats(ctx context.Context, userID string) (*Stats, error) {
	batches, err := s.client.MetricsBatch.Query().Where(metricsbatch.UserIDEQ(userID)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count batches: %w", err)
	}
	incidents, err := s.client.Incident.Query().Where(incident.UserIDEQ(userID)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}
	anomalies, err := s.client.Anomaly.Query().Where(anomaly.UserIDEQ(userID)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count anomalies: %w", err)
	}
	rca, err := s.client.RCARecord.Query().Where(rcarecord.UserIDEQ(userID)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count RCA records: %w", err)
	}

	return &Stats{
		Batches:   batches,
		Incidents: incidents,
		Anomalies: anomalies,
		RCA:       rca,
	}, nil
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
