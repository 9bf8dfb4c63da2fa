package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/promsight/promsight/ent"
	"github.com/promsight/promsight/ent/target"
	"github.com/promsight/promsight/pkg/analysis"
)

// CreateTargetInput contains the data needed to register a scrape target.
type CreateTargetInput struct {
	UserID   string
	Name     string
	Endpoint string // host:port
	Labels   map[string]string
	Enabled  *bool // nil means enabled
}

// UpdateTargetInput contains the mutable fields of a target. Nil fields are
// left untouched.
type UpdateTargetInput struct {
	Name    *string
	Labels  map[string]string
	Enabled *bool
}

// TargetService manages tenant scrape targets.
type TargetService struct {
	client *ent.Client
}

// NewTargetService creates a new TargetService.
func NewTargetService(client *ent.Client) *TargetService {
	if client == nil {
		panic("NewTargetService: client must not be nil")
	}
	return &TargetService{client: client}
}

// CreateTarget registers a scrape target for a tenant.
func (s *TargetService) CreateTarget(ctx context.Context, input CreateTargetInput) (*ent.Target, error) {
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if !analysis.LooksLikeInstance(input.Endpoint) {
		return nil, NewValidationError("endpoint", fmt.Sprintf("'%s' is not a valid host:port", input.Endpoint))
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	builder := s.client.Target.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetName(strings.TrimSpace(input.Name)).
		SetEndpoint(strings.TrimSpace(input.Endpoint)).
		SetEnabled(enabled)
	if input.Labels != nil {
		builder.SetLabels(input.Labels)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create target: %w", err)
	}
	return created, nil
}

// GetTarget fetches one target scoped to the tenant.
func (s *TargetService) GetTarget(ctx context.Context, userID, targetID string) (*ent.Target, error) {
	tgt, err := s.client.Target.Query().
		Where(target.IDEQ(targetID), target.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get target: %w", err)
	}
	return tgt, nil
}

// ListTargets returns all of a tenant's targets, newest first.
func (s *TargetService) ListTargets(ctx context.Context, userID string) ([]*ent.Target, error) {
	targets, err := s.client.Target.Query().
		Where(target.UserIDEQ(userID)).
		Order(ent.Desc(target.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}
	return targets, nil
}

// UpdateTarget applies the non-nil fields of input.
func (s *TargetService) UpdateTarget(ctx context.Context, userID, targetID string, input UpdateTargetInput) (*ent.Target, error) {
	tgt, err := s.GetTarget(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	builder := tgt.Update()
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		builder.SetName(strings.TrimSpace(*input.Name))
	}
	if input.Labels != nil {
		builder.SetLabels(input.Labels)
	}
	if input.Enabled != nil {
		builder.SetEnabled(*input.Enabled)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update target: %w", err)
	}
	return updated, nil
}

// DeleteTarget removes one target scoped to the tenant.
func (s *TargetService) DeleteTarget(ctx context.Context, userID, targetID string) error {
	n, err := s.client.Target.Delete().
		Where(target.IDEQ(targetID), target.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ActiveUserIDs returns the distinct tenants that have at least one enabled
// target. The scheduler reconciles its worker set against this list.
func (s *TargetService) ActiveUserIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.Target.Query().
		Where(target.EnabledEQ(true)).
		Unique(true).
		Select(target.FieldUserID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tenants: %w", err)
	}
	return ids, nil
}
