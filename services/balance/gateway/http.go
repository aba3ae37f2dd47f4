package gateway

import (
	"context"
	"fmt"
	"time"

	httppkg "github.com/ridepulse/ridepulse/internal/pkg/http"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/balance"
)

type walletSummaryEnvelope struct {
	Success bool                 `json:"success"`
	Data    models.WalletSummary `json:"data"`
}

type driverProfileEnvelope struct {
	Success bool                 `json:"success"`
	Data    models.DriverProfile `json:"data"`
}

// BalanceGW fetches balance candidates over HTTP
type BalanceGW struct {
	walletClient *httppkg.Client
	driverClient *httppkg.Client
}

// NewBalanceGW creates a new balance gateway instance
func NewBalanceGW(cfg *models.Config) balance.BalanceGW {
	timeout := time.Duration(cfg.Balance.FetchTimeoutSec) * time.Second
	return &BalanceGW{
		walletClient: httppkg.NewClient(cfg.Services.WalletServiceURL, timeout),
		driverClient: httppkg.NewClient(cfg.Services.DriverServiceURL, timeout),
	}
}

// FetchWalletSummary fetches the authoritative wallet balance
func (g *BalanceGW) FetchWalletSummary(ctx context.Context, driverID string) (*models.WalletSummary, error) {
	var envelope walletSummaryEnvelope
	path := fmt.Sprintf("/wallets/%s/summary", driverID)
	if err := g.walletClient.GetJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("failed to fetch wallet summary: %w", err)
	}
	return &envelope.Data, nil
}

// FetchDriverProfile fetches the profile-record balance
func (g *BalanceGW) FetchDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	var envelope driverProfileEnvelope
	path := fmt.Sprintf("/drivers/%s", driverID)
	if err := g.driverClient.GetJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("failed to fetch driver profile: %w", err)
	}
	return &envelope.Data, nil
}
