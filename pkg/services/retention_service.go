package services

import (
	"context"
	"fmt"

	"github.com/promsight/promsight/ent"
	"github.com/promsight/promsight/ent/alertwindow"
	"github.com/promsight/promsight/ent/anomaly"
	"github.com/promsight/promsight/ent/incident"
	"github.com/promsight/promsight/ent/metricsbatch"
	"github.com/promsight/promsight/ent/rcarecord"
)

// RetentionService enforces the per-collection record cap: keep at most N
// newest rows, delete the oldest. Historical analyses are never mutated,
// only dropped wholesale.
type RetentionService struct {
	client *ent.Client
}

// NewRetentionService creates a new RetentionService.
func NewRetentionService(client *ent.Client) *RetentionService {
	if client == nil {
		panic("NewRetentionService: client must not be nil")
	}
	return &RetentionService{client: client}
}

// TrimResult reports rows deleted per collection.
type TrimResult struct {
	Batches   int
	Incidents int
	Anomalies int
	RCA       int
	Windows   int
}

// Total returns the number of rows deleted across all collections.
func (r TrimResult) Total() int {
	return r.Batches + r.Incidents + r.Anomalies + r.RCA + r.Windows
}

// TrimAll applies the cap to every append-only collection.
func (s *RetentionService) TrimAll(ctx context.Context, max int) (*TrimResult, error) {
	result := &TrimResult{}
	var err error

	if result.Batches, err = s.trimBatches(ctx, max); err != nil {
		return result, err
	}
	if result.Incidents, err = s.trimIncidents(ctx, max); err != nil {
		return result, err
	}
	if result.Anomalies, err = s.trimAnomalies(ctx, max); err != nil {
		return result, err
	}
	if result.RCA, err = s.trimRCA(ctx, max); err != nil {
		return result, err
	}
	if result.Windows, err = s.trimWindows(ctx, max); err != nil {
		return result, err
	}
	return result, nil
}

func (s *RetentionService) trimBatches(ctx context.Context, max int) (int, error) {
	ids, err := s.client.MetricsBatch.Query().
		Order(ent.Desc(metricsbatch.FieldCollectedAt)).
		Offset(max).
		Select(metricsbatch.FieldID).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find excess batches: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.MetricsBatch.Delete().
		Where(metricsbatch.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete excess batches: %w", err)
	}
	return n, nil
}

func (s *RetentionService) trimIncidents(ctx context.Context, max int) (int, error) {
	ids, err := s.client.Incident.Query().
		Order(ent.Desc(incident.FieldCreatedAt)).
		Offset(max).
		Select(incident.FieldID).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find excess incidents: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.Incident.Delete().
		Where(incident.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete excess incidents: %w", err)
	}
	return n, nil
}

func (s *RetentionService) trimAnomalies(ctx context.Context, max int) (int, error) {
	ids, err := s.client.Anomaly.Query().
		Order(ent.Desc(anomaly.FieldCreatedAt)).
		Offset(max).
		Select(anomaly.FieldID).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find excess anomalies: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.Anomaly.Delete().
		Where(anomaly.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete excess anomalies: %w", err)
	}
	return n, nil
}

func (s *RetentionService) trimRCA(ctx context.Context, max int) (int, error) {
	ids, err := s.client.RCARecord.Query().
		Order(ent.Desc(rcarecord.FieldTimestamp)).
		Offset(max).
		Select(rcarecord.FieldID).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find excess RCA records: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.RCARecord.Delete().
		Where(rcarecord.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete excess RCA records: %w", err)
	}
	return n, nil
}

func (s *RetentionService) trimWindows(ctx context.Context, max int) (int, error) {
	ids, err := s.client.AlertWindow.Query().
		Order(ent.Desc(alertwindow.FieldProcessedAt)).
		Offset(max).
		Select(alertwindow.FieldID).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find excess ledger rows: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.AlertWindow.Delete().
		Where(alertwindow.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete excess ledger rows: %w", err)
	}
	return n, nil
}
