package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepulse/ridepulse/internal/pkg/database"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/balance"
)

func newTestRepo(t *testing.T) *BalanceRepo {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewBalanceRepo(database.NewRedisClientFromClient(client)).(*BalanceRepo)
}

func TestSessionBalance_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	result := &models.BalanceResult{Amount: 120.5, Source: models.BalanceSourceSummary, Reliable: true}
	require.NoError(t, repo.SaveSessionBalance(ctx, "driver-1", result))

	got, err := repo.GetSessionBalance(ctx, "driver-1")
	require.NoError(t, err)
	assert.InDelta(t, 120.5, got.Amount, 1e-9)
	assert.True(t, got.Reliable)
	// A cached value always reads back as the session source regardless of
	// where it originally came from.
	assert.Equal(t, models.BalanceSourceSession, got.Source)
}

func TestSessionBalance_MissingReturnsSentinel(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetSessionBalance(context.Background(), "ghost")
	assert.True(t, errors.Is(err, balance.ErrNoSessionBalance))
}

func TestSessionBalance_NegativeAmountSurvives(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	result := &models.BalanceResult{Amount: -150, Source: models.BalanceSourceSummary, Reliable: true}
	require.NoError(t, repo.SaveSessionBalance(ctx, "driver-1", result))

	got, err := repo.GetSessionBalance(ctx, "driver-1")
	require.NoError(t, err)
	assert.InDelta(t, -150, got.Amount, 1e-9)
}

func TestDeleteSessionBalance(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	result := &models.BalanceResult{Amount: 50, Source: models.BalanceSourceProfile, Reliable: true}
	require.NoError(t, repo.SaveSessionBalance(ctx, "driver-1", result))
	require.NoError(t, repo.DeleteSessionBalance(ctx, "driver-1"))

	_, err := repo.GetSessionBalance(ctx, "driver-1")
	assert.True(t, errors.Is(err, balance.ErrNoSessionBalance))
}
