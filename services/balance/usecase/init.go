package usecase

import (
	"time"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/balance"
)

// BalanceUC implements the balance.BalanceUC interface
type BalanceUC struct {
	cfg  *models.Config
	repo balance.BalanceRepo
	gw   balance.BalanceGW

	// sleep is swapped out in tests to avoid real verification delays
	sleep func(time.Duration)
}

// NewBalanceUC creates a new balance usecase instance
func NewBalanceUC(cfg *models.Config, repo balance.BalanceRepo, gw balance.BalanceGW) *BalanceUC {
	return &BalanceUC{
		cfg:   cfg,
		repo:  repo,
		gw:    gw,
		sleep: time.Sleep,
	}
}
