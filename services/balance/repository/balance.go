package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/database"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/balance"
)

// BalanceRepo caches per-session resolved balances in Redis
type BalanceRepo struct {
	redis *database.RedisClient
}

// NewBalanceRepo creates a new balance repository instance
func NewBalanceRepo(redisClient *database.RedisClient) balance.BalanceRepo {
	return &BalanceRepo{redis: redisClient}
}

// SaveSessionBalance stores the amount and its reliability flag
func (r *BalanceRepo) SaveSessionBalance(ctx context.Context, driverID string, result *models.BalanceResult) error {
	key := fmt.Sprintf(constants.KeySessionBalance, driverID)
	fields := map[string]interface{}{
		constants.FieldAmount:   result.Amount,
		constants.FieldReliable: strconv.FormatBool(result.Reliable),
	}
	if err := r.redis.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to save session balance: %w", err)
	}
	return nil
}

// GetSessionBalance returns the cached balance or ErrNoSessionBalance
func (r *BalanceRepo) GetSessionBalance(ctx context.Context, driverID string) (*models.BalanceResult, error) {
	key := fmt.Sprintf(constants.KeySessionBalance, driverID)
	fields, err := r.redis.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get session balance: %w", err)
	}
	if len(fields) == 0 {
		return nil, balance.ErrNoSessionBalance
	}

	amount, err := strconv.ParseFloat(fields[constants.FieldAmount], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session balance amount: %w", err)
	}
	reliable, _ := strconv.ParseBool(fields[constants.FieldReliable])

	return &models.BalanceResult{
		Amount:   amount,
		Source:   models.BalanceSourceSession,
		Reliable: reliable,
	}, nil
}

// DeleteSessionBalance clears the cached balance
func (r *BalanceRepo) DeleteSessionBalance(ctx context.Context, driverID string) error {
	key := fmt.Sprintf(constants.KeySessionBalance, driverID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session balance: %w", err)
	}
	return nil
}
