package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promsight/promsight/pkg/notify"
	testdb "github.com/promsight/promsight/test/database"
)

func TestNotificationService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	t.Run("creates slack config", func(t *testing.T) {
		cfg, err := service.Upsert(ctx, UpsertNotificationInput{
			UserID:     "u1",
			Channel:    notify.ChannelSlack,
			Enabled:    true,
			WebhookURL: "https://hooks.example.com/T/B/x",
		})
		require.NoError(t, err)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, "https://hooks.example.com/T/B/x", cfg.WebhookURL)
	})

	t.Run("second upsert replaces instead of duplicating", func(t *testing.T) {
		_, err := service.Upsert(ctx, UpsertNotificationInput{
			UserID:  "u1",
			Channel: notify.ChannelSlack,
			Enabled: false,
		})
		require.NoError(t, err)

		rows, err := service.List(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.False(t, rows[0].Enabled)
	})

	t.Run("validates channel-specific fields", func(t *testing.T) {
		_, err := service.Upsert(ctx, UpsertNotificationInput{
			UserID:  "u1",
			Channel: notify.ChannelSlack,
			Enabled: true,
		})
		assert.True(t, IsValidationError(err))

		_, err = service.Upsert(ctx, UpsertNotificationInput{
			UserID:  "u1",
			Channel: notify.ChannelEmail,
			Enabled: true,
		})
		assert.True(t, IsValidationError(err))

		_, err = service.Upsert(ctx, UpsertNotificationInput{
			UserID:  "u1",
			Channel: "pager",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestNotificationService_ChannelConfigs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	_, err := service.Upsert(ctx, UpsertNotificationInput{
		UserID:     "u1",
		Channel:    notify.ChannelSlack,
		Enabled:    true,
		WebhookURL: "https://hooks.example.com/T/B/x",
	})
	require.NoError(t, err)
	_, err = service.Upsert(ctx, UpsertNotificationInput{
		UserID:     "u1",
		Channel:    notify.ChannelEmail,
		Enabled:    true,
		Recipients: []string{"oncall@example.com"},
	})
	require.NoError(t, err)

	configs, err := service.ChannelConfigs(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, configs, 2)

	byChannel := map[string]notify.ChannelConfig{}
	for _, c := range configs {
		byChannel[c.Channel] = c
	}
	assert.Equal(t, "https://hooks.example.com/T/B/x", byChannel[notify.ChannelSlack].WebhookURL)
	assert.Equal(t, []string{"oncall@example.com"}, byChannel[notify.ChannelEmail].Recipients)

	// Unknown tenant has no configs, not an error.
	configs, err = service.ChannelConfigs(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, configs)
}
