package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/promsight/promsight/ent"
	"github.com/promsight/promsight/ent/alertwindow"
	"github.com/promsight/promsight/pkg/timeutil"
)

// LedgerService guards each (tenant, window) pair against duplicate
// processing. The unique index on the formatted window strings is the
// authoritative guard; MarkProcessed surfaces a lost race as
// ErrDuplicateWindow.
type LedgerService struct {
	client *ent.Client
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(client *ent.Client) *LedgerService {
	if client == nil {
		panic("NewLedgerService: client must not be nil")
	}
	return &LedgerService{client: client}
}

// MarkProcessedInput records one processed window.
type MarkProcessedInput struct {
	UserID     string
	Window     timeutil.Window
	Timezone   timeutil.Timezone
	SessionID  string
	IncidentID string // empty when the run produced no incident
}

// IsProcessed reports whether the window has already been analysed for the
// tenant. The check uses the formatted civil-time strings so guard semantics
// stay stable across clock skew.
func (s *LedgerService) IsProcessed(ctx context.Context, userID string, w timeutil.Window, tz timeutil.Timezone) (bool, error) {
	exists, err := s.client.AlertWindow.Query().
		Where(
			alertwindow.UserIDEQ(userID),
			alertwindow.WindowStartStrEQ(tz.Format(w.Start)),
			alertwindow.WindowEndStrEQ(tz.Format(w.End)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check window ledger: %w", err)
	}
	return exists, nil
}

// MarkProcessed inserts the ledger row for the window. A concurrent worker
// that lost the insert race gets ErrDuplicateWindow and must treat the
// window as processed.
func (s *LedgerService) MarkProcessed(ctx context.Context, input MarkProcessedInput) error {
	now := input.Timezone.Now()

	builder := s.client.AlertWindow.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetWindowStart(input.Window.Start).
		SetWindowEnd(input.Window.End).
		SetWindowStartStr(input.Timezone.Format(input.Window.Start)).
		SetWindowEndStr(input.Timezone.Format(input.Window.End)).
		SetProcessedAt(now).
		SetProcessedAtStr(input.Timezone.Format(now)).
		SetTimezone(input.Timezone.Label).
		SetSessionID(input.SessionID)
	if input.IncidentID != "" {
		builder.SetIncidentID(input.IncidentID)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateWindow
		}
		return fmt.Errorf("failed to mark window processed: %w", err)
	}
	return nil
}

// ProcessedCount returns the number of ledger rows for a tenant, used by the
// stats endpoint.
func (s *LedgerService) ProcessedCount(ctx context.Context, userID string) (int, error) {
	n, err := s.client.AlertWindow.Query().
		Where(alertwindow.UserIDEQ(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count processed windows: %w", err)
	}
	return n, nil
}
