package balance

import (
	"context"
	"errors"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// ErrNoSessionBalance is returned when no cached balance exists for the driver
var ErrNoSessionBalance = errors.New("no session balance cached")

// BalanceRepo caches the per-session resolved balance
type BalanceRepo interface {
	// SaveSessionBalance stores the resolved balance for the driver's session
	SaveSessionBalance(ctx context.Context, driverID string, result *models.BalanceResult) error

	// GetSessionBalance returns the cached balance or ErrNoSessionBalance
	GetSessionBalance(ctx context.Context, driverID string) (*models.BalanceResult, error)

	// DeleteSessionBalance clears the cached balance on sign-out
	DeleteSessionBalance(ctx context.Context, driverID string) error
}
