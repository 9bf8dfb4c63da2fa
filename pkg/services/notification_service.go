package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/promsight/promsight/ent"
	"github.com/promsight/promsight/ent/notificationconfig"
	"github.com/promsight/promsight/pkg/notify"
)

// UpsertNotificationInput sets one channel's delivery config for a tenant.
type UpsertNotificationInput struct {
	UserID     string
	Channel    string // slack or email
	Enabled    bool
	WebhookURL string   // slack only
	Recipients []string // email only
}

// NotificationService manages per-tenant alert delivery configs and serves
// them to the notifier.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(client *ent.Client) *NotificationService {
	if client == nil {
		panic("NewNotificationService: client must not be nil")
	}
	return &NotificationService{client: client}
}

// Upsert creates or replaces the channel config for the tenant.
func (s *NotificationService) Upsert(ctx context.Context, input UpsertNotificationInput) (*ent.NotificationConfig, error) {
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	switch input.Channel {
	case notify.ChannelSlack:
		if input.Enabled && strings.TrimSpace(input.WebhookURL) == "" {
			return nil, NewValidationError("webhook_url", "required when slack is enabled")
		}
	case notify.ChannelEmail:
		if input.Enabled && len(input.Recipients) == 0 {
			return nil, NewValidationError("recipients", "required when email is enabled")
		}
	default:
		return nil, NewValidationError("channel", fmt.Sprintf("unknown channel '%s'", input.Channel))
	}

	existing, err := s.client.NotificationConfig.Query().
		Where(
			notificationconfig.UserIDEQ(input.UserID),
			notificationconfig.ChannelEQ(notificationconfig.Channel(input.Channel)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load notification config: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetEnabled(input.Enabled).
			SetWebhookURL(strings.TrimSpace(input.WebhookURL)).
			SetRecipients(input.Recipients).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update notification config: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.NotificationConfig.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetChannel(notificationconfig.Channel(input.Channel)).
		SetEnabled(input.Enabled).
		SetWebhookURL(strings.TrimSpace(input.WebhookURL)).
		SetRecipients(input.Recipients).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create notification config: %w", err)
	}
	return created, nil
}

// List returns all channel configs for the tenant.
func (s *NotificationService) List(ctx context.Context, userID string) ([]*ent.NotificationConfig, error) {
	configs, err := s.client.NotificationConfig.Query().
		Where(notificationconfig.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification configs: %w", err)
	}
	return configs, nil
}

// ChannelConfigs implements notify.ConfigSource.
func (s *NotificationService) ChannelConfigs(ctx context.Context, userID string) ([]notify.ChannelConfig, error) {
	rows, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	configs := make([]notify.ChannelConfig, 0, len(rows))
	for _, row := range rows {
		configs = append(configs, notify.ChannelConfig{
			Channel:    string(row.Channel),
			Enabled:    row.Enabled,
			WebhookURL: row.WebhookURL,
			Recipients: row.Recipients,
		})
	}
	return configs, nil
}
