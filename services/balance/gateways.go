package balance

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// BalanceGW fetches balance candidates from the wallet and driver services
type BalanceGW interface {
	FetchWalletSummary(ctx context.Context, driverID string) (*models.WalletSummary, error)
	FetchDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error)
}
