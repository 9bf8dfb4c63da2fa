package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/promsight/promsight/ent"
	"github.com/promsight/promsight/ent/incident"
	"github.com/promsight/promsight/pkg/analysis"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/timeutil"
)

// StoreRunInput carries everything one analysed window produced.
type StoreRunInput struct {
	UserID      string
	Window      timeutil.Window
	Timezone    timeutil.Timezone
	SessionID   string
	Samples     []promquery.Sample
	Analysis    analysis.Analysis
	RawAnalysis map[string]interface{}
}

// StoreRunResult reports the ids of the created records.
type StoreRunResult struct {
	BatchID         string
	IncidentID      string
	PrimaryInstance string
	AnomalyCount    int
}

// RunService persists the records derived from one batch run. Writes happen
// in a fixed order: metrics batch, incident, anomalies, RCA copy. The first
// two are critical; failures in anomalies or RCA are logged and swallowed so
// the window can still be marked processed.
type RunService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, logger *slog.Logger) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	return &RunService{
		client: client,
		logger: logger.With("component", "run-service"),
	}
}

// StoreRun writes the batch, incident, anomalies and RCA records.
func (s *RunService) StoreRun(ctx context.Context, input StoreRunInput) (*StoreRunResult, error) {
	now := input.Timezone.Now()
	nowStr := input.Timezone.Format(now)
	startStr := input.Timezone.Format(input.Window.Start)
	endStr := input.Timezone.Format(input.Window.End)

	sampleInstances := make([]string, 0, len(input.Samples))
	for _, sm := range input.Samples {
		sampleInstances = append(sampleInstances, sm.Instance)
	}
	primary := analysis.PickPrimary(sampleInstances, input.Analysis)
	primaryIP, primaryPort := analysis.ParseInstance(primary)

	batchID := uuid.New().String()
	batchBuilder := s.client.MetricsBatch.Create().
		SetID(batchID).
		SetUserID(input.UserID).
		SetWindowStart(input.Window.Start).
		SetWindowEnd(input.Window.End).
		SetCollectedAt(now).
		SetWindowStartStr(startStr).
		SetWindowEndStr(endStr).
		SetCollectedAtStr(nowStr).
		SetTimezone(input.Timezone.Label).
		SetMetrics(promquery.AsMaps(input.Samples)).
		SetMetricsCount(len(input.Samples)).
		SetPrimaryInstance(primary).
		SetSessionID(input.SessionID)
	if primary != "unknown" {
		batchBuilder.SetIP(primaryIP)
		if primaryPort > 0 {
			batchBuilder.SetPort(primaryPort)
		}
	}
	if err := batchBuilder.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store metrics batch: %w", err)
	}

	inc := input.Analysis.Incident
	incidentID := uuid.New().String()
	incidentBuilder := s.client.Incident.Create().
		SetID(incidentID).
		SetUserID(input.UserID).
		SetBatchID(batchID).
		SetWindowStart(input.Window.Start).
		SetWindowEnd(input.Window.End).
		SetCreatedAt(now).
		SetWindowStartStr(startStr).
		SetWindowEndStr(endStr).
		SetCreatedAtStr(nowStr).
		SetTimezone(input.Timezone.Label).
		SetTitle(inc.Title).
		SetSeverity(incident.Severity(inc.Severity)).
		SetConfidence(inc.Confidence).
		SetSummary(inc.Summary).
		SetRootCause(inc.RootCause).
		SetContributingFactors(inc.ContributingFactors).
		SetBlastRadius(inc.BlastRadius).
		SetEvidence(toMapSlice(inc.Evidence)).
		SetFixPlan(toMap(inc.FixPlan)).
		SetClusters(toMapSlice(input.Analysis.Clusters)).
		SetPrimaryInstance(primary).
		SetSessionID(input.SessionID)
	if input.RawAnalysis != nil {
		incidentBuilder.SetRawAnalysis(input.RawAnalysis)
	}
	if primary != "unknown" {
		incidentBuilder.SetIP(primaryIP)
		if primaryPort > 0 {
			incidentBuilder.SetPort(primaryPort)
		}
	}
	if err := incidentBuilder.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store incident: %w", err)
	}

	result := &StoreRunResult{
		BatchID:         batchID,
		IncidentID:      incidentID,
		PrimaryInstance: primary,
		AnomalyCount:    len(input.Analysis.Anomalies),
	}

	if err := s.storeAnomalies(ctx, input, batchID, incidentID, primary, now, nowStr, startStr, endStr); err != nil {
		s.logger.Error("Failed to store anomalies, continuing",
			"user_id", input.UserID,
			"batch_id", batchID,
			"error", err)
	}

	if err := s.storeRCA(ctx, input, batchID, incidentID, primary, now, nowStr, startStr, endStr); err != nil {
		s.logger.Error("Failed to store RCA record, continuing",
			"user_id", input.UserID,
			"batch_id", batchID,
			"error", err)
	}

	s.logger.Info("Stored batch run",
		"user_id", input.UserID,
		"batch_id", batchID,
		"incident_id", incidentID,
		"anomalies", result.AnomalyCount,
		"primary_instance", primary)

	return result, nil
}

func (s *RunService) storeAnomalies(ctx context.Context, input StoreRunInput, batchID, incidentID, primary string, now time.Time, nowStr, startStr, endStr string) error {
	if len(input.Analysis.Anomalies) == 0 {
		return nil
	}

	builders := make([]*ent.AnomalyCreate, 0, len(input.Analysis.Anomalies))
	for _, f := range input.Analysis.Anomalies {
		// Replace free-form phrases with the validated primary instance.
		inst := f.Instance
		if !analysis.LooksLikeInstance(inst) {
			inst = primary
		}
		ip, port := analysis.ParseInstance(inst)

		b := s.client.Anomaly.Create().
			SetID(uuid.New().String()).
			SetUserID(input.UserID).
			SetBatchID(batchID).
			SetIncidentID(incidentID).
			SetMetric(f.Metric).
			SetInstance(inst).
			SetExpected(f.Expected).
			SetSymptom(f.Symptom).
			SetCluster(f.Cluster).
			SetCreatedAt(now).
			SetCreatedAtStr(nowStr).
			SetWindowStartStr(startStr).
			SetWindowEndStr(endStr).
			SetTimezone(input.Timezone.Label).
			SetSessionID(input.SessionID)
		if inst != "unknown" {
			b.SetIP(ip)
			if port > 0 {
				b.SetPort(port)
			}
		}
		if observed, err := f.Observed.Float64(); err == nil {
			b.SetObserved(observed)
		}
		builders = append(builders, b)
	}

	if err := s.client.Anomaly.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("bulk insert failed: %w", err)
	}
	return nil
}

func (s *RunService) storeRCA(ctx context.Context, input StoreRunInput, batchID, incidentID, primary string, now time.Time, nowStr, startStr, endStr string) error {
	ip, port := analysis.ParseInstance(primary)

	b := s.client.RCARecord.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetBatchID(batchID).
		SetIncidentID(incidentID).
		SetTimestamp(now).
		SetTimestampStr(nowStr).
		SetWindowStartStr(startStr).
		SetWindowEndStr(endStr).
		SetTimezone(input.Timezone.Label).
		SetSummary(input.Analysis.Incident.Summary).
		SetCause(input.Analysis.Incident.RootCause).
		SetFix(input.Analysis.Incident.FixPlan.Immediate).
		SetInstance(primary).
		SetSessionID(input.SessionID)
	if input.RawAnalysis != nil {
		b.SetRaw(input.RawAnalysis)
	}
	if primary != "unknown" {
		b.SetIP(ip)
		if port > 0 {
			b.SetPort(port)
		}
	}

	if err := b.Exec(ctx); err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	return nil
}

// toMapSlice converts typed analysis values into the generic slice shape the
// JSON columns store.
func toMapSlice(v interface{}) []map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func toMap(v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
