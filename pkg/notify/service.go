// Package notify fans incident alerts out to each tenant's configured
// channels: Slack incoming webhooks and HTML email.
package notify

import (
	"context"
	"log/slog"
	"strings"
)

// Channel names as stored on a tenant's notification config.
const (
	ChannelSlack = "slack"
	ChannelEmail = "email"
)

// ChannelConfig is one tenant channel row.
type ChannelConfig struct {
	Channel    string
	Enabled    bool
	WebhookURL string
	Recipients []string
}

// ConfigSource loads a tenant's channel configs.
type ConfigSource interface {
	ChannelConfigs(ctx context.Context, userID string) ([]ChannelConfig, error)
}

// slackSender and emailSender are satisfied by SlackSender and EmailSender.
type slackSender interface {
	Send(ctx context.Context, webhookURL, text string) error
}

type emailSender interface {
	Send(subject, htmlBody string, recipients []string) error
}

// Recorder counts delivery attempts. Optional.
type Recorder interface {
	ObserveAlert(channel string, ok bool)
}

// Service dispatches one alert to every enabled channel of a tenant.
// Fail-open: delivery errors are logged, never returned, so a broken webhook
// cannot abort the batch pipeline.
type Service struct {
	configs  ConfigSource
	slack    slackSender
	email    emailSender
	recorder Recorder
	logger   *slog.Logger
}

// NewService wires the dispatcher. slack and email may be nil when the
// channel is not configured; a typed nil must not reach the interface
// fields, so both are guarded.
func NewService(configs ConfigSource, slack *SlackSender, email *EmailSender, logger *slog.Logger) *Service {
	s := &Service{
		configs: configs,
		logger:  logger.With("component", "notify"),
	}
	if slack != nil {
		s.slack = slack
	}
	if email != nil {
		s.email = email
	}
	return s
}

// SetRecorder attaches delivery instrumentation.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

func (s *Service) observe(channel string, ok bool) {
	if s.recorder != nil {
		s.recorder.ObserveAlert(channel, ok)
	}
}

// SendAlerts delivers the alert on each enabled channel of the tenant.
func (s *Service) SendAlerts(ctx context.Context, userID string, alert Alert) {
	configs, err := s.configs.ChannelConfigs(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load notification configs", "user_id", userID, "error", err)
		return
	}

	for _, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		switch cfg.Channel {
		case ChannelSlack:
			s.sendSlack(ctx, userID, cfg, alert)
		case ChannelEmail:
			s.sendEmail(userID, cfg, alert)
		default:
			s.logger.Warn("Unknown notification channel", "user_id", userID, "channel", cfg.Channel)
		}
	}
}

func (s *Service) sendSlack(ctx context.Context, userID string, cfg ChannelConfig, alert Alert) {
	if s.slack == nil {
		s.logger.Warn("Slack enabled without a sender", "user_id", userID)
		return
	}
	if strings.TrimSpace(cfg.WebhookURL) == "" {
		s.logger.Warn("Slack enabled without webhook URL", "user_id", userID)
		return
	}
	if err := s.slack.Send(ctx, strings.TrimSpace(cfg.WebhookURL), alert.Text()); err != nil {
		s.logger.Error("Slack alert failed", "user_id", userID, "error", err)
		s.observe(ChannelSlack, false)
		return
	}
	s.observe(ChannelSlack, true)
	s.logger.Info("Slack alert sent", "user_id", userID, "session_id", alert.SessionID)
}

func (s *Service) sendEmail(userID string, cfg ChannelConfig, alert Alert) {
	if s.email == nil {
		s.logger.Warn("Email enabled without SMTP configuration", "user_id", userID)
		return
	}
	if err := s.email.Send(alert.Subject(), alert.HTML(), cfg.Recipients); err != nil {
		s.logger.Error("Email alert failed", "user_id", userID, "error", err)
		s.observe(ChannelEmail, false)
		return
	}
	s.observe(ChannelEmail, true)
	s.logger.Info("Email alert sent", "user_id", userID, "session_id", alert.SessionID)
}
