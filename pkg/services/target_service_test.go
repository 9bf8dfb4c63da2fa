package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/promsight/promsight/test/database"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestTargetService_CreateTarget(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTargetService(client.Client)
	ctx := context.Background()

	t.Run("creates enabled target by default", func(t *testing.T) {
		tgt, err := service.CreateTarget(ctx, CreateTargetInput{
			UserID:   "u1",
			Name:     "node exporter",
			Endpoint: "10.0.0.4:9100",
			Labels:   map[string]string{"env": "prod"},
		})
		require.NoError(t, err)
		assert.Equal(t, "u1", tgt.UserID)
		assert.Equal(t, "10.0.0.4:9100", tgt.Endpoint)
		assert.True(t, tgt.Enabled)
		assert.NotEmpty(t, tgt.ID)
	})

	t.Run("rejects malformed endpoint", func(t *testing.T) {
		_, err := service.CreateTarget(ctx, CreateTargetInput{
			UserID:   "u1",
			Name:     "bad",
			Endpoint: "all windows servers",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := service.CreateTarget(ctx, CreateTargetInput{
			UserID:   "u1",
			Name:     "  ",
			Endpoint: "10.0.0.5:9100",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate endpoint for same tenant", func(t *testing.T) {
		_, err := service.CreateTarget(ctx, CreateTargetInput{
			UserID:   "u2",
			Name:     "a",
			Endpoint: "10.0.0.6:9100",
		})
		require.NoError(t, err)

		_, err = service.CreateTarget(ctx, CreateTargetInput{
			UserID:   "u2",
			Name:     "b",
			Endpoint: "10.0.0.6:9100",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)

		// A different tenant may register the same endpoint.
		_, err = service.CreateTarget(ctx, CreateTargetInput{
			UserID:   "u3",
			Name:     "c",
			Endpoint: "10.0.0.6:9100",
		})
		assert.NoError(t, err)
	})
}

func TestTargetService_UpdateAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTargetService(client.Client)
	ctx := context.Background()

	tgt, err := service.CreateTarget(ctx, CreateTargetInput{
		UserID:   "u1",
		Name:     "web",
		Endpoint: "10.0.0.1:9100",
	})
	require.NoError(t, err)

	t.Run("updates name and enabled flag", func(t *testing.T) {
		updated, err := service.UpdateTarget(ctx, "u1", tgt.ID, UpdateTargetInput{
			Name:    strPtr("web tier"),
			Enabled: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "web tier", updated.Name)
		assert.False(t, updated.Enabled)
	})

	t.Run("tenant scoping hides other users' targets", func(t *testing.T) {
		_, err := service.GetTarget(ctx, "other", tgt.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		err = service.DeleteTarget(ctx, "other", tgt.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deletes own target", func(t *testing.T) {
		require.NoError(t, service.DeleteTarget(ctx, "u1", tgt.ID))
		_, err := service.GetTarget(ctx, "u1", tgt.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTargetService_ActiveUserIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTargetService(client.Client)
	ctx := context.Background()

	// u1 has two enabled targets, u2 one disabled, u3 one enabled.
	_, err := service.CreateTarget(ctx, CreateTargetInput{UserID: "u1", Name: "a", Endpoint: "10.0.0.1:9100"})
	require.NoError(t, err)
	_, err = service.CreateTarget(ctx, CreateTargetInput{UserID: "u1", Name: "b", Endpoint: "10.0.0.2:9100"})
	require.NoError(t, err)
	_, err = service.CreateTarget(ctx, CreateTargetInput{UserID: "u2", Name: "c", Endpoint: "10.0.0.3:9100", Enabled: boolPtr(false)})
	require.NoError(t, err)
	_, err = service.CreateTarget(ctx, CreateTargetInput{UserID: "u3", Name: "d", Endpoint: "10.0.0.4:9100"})
	require.NoError(t, err)

	ids, err := service.ActiveUserIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u1", "u3"}, ids)
}
