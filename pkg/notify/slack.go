package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goslack "github.com/slack-go/slack"
)

const (
	slackTimeout  = 10 * time.Second
	slackUsername = "AI DevOps Monitor"
	slackEmoji    = ":rotating_light:"
)

// SlackSender posts alert text to per-tenant incoming webhooks.
type SlackSender struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackSender creates a webhook sender.
func NewSlackSender(logger *slog.Logger) *SlackSender {
	return &SlackSender{
		httpClient: &http.Client{Timeout: slackTimeout},
		logger:     logger.With("component", "slack"),
	}
}

// Send posts text to the webhook. Returns an error for the caller to log;
// delivery failures never block the pipeline.
func (s *SlackSender) Send(ctx context.Context, webhookURL, text string) error {
	ctx, cancel := context.WithTimeout(ctx, slackTimeout)
	defer cancel()

	s.logger.Info("Sending Slack alert", "webhook", maskWebhook(webhookURL))

	msg := &goslack.WebhookMessage{
		Text:      text,
		Username:  slackUsername,
		IconEmoji: slackEmoji,
	}
	if err := goslack.PostWebhookCustomHTTPContext(ctx, webhookURL, s.httpClient, msg); err != nil {
		return fmt.Errorf("webhook post failed: %w", err)
	}
	return nil
}
