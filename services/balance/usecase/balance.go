package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// ResolveBalance races the three candidate sources and picks by precedence:
// wallet summary, then driver profile, then the cached session value. The
// two service-backed sources are authoritative; the session cache is a
// best-effort fallback and never counts as reliable.
func (uc *BalanceUC) ResolveBalance(ctx context.Context, driverID string) (*models.BalanceResult, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.Balance.FetchTimeoutSec)*time.Second)
	defer cancel()

	summaryCh := make(chan *models.WalletSummary, 1)
	profileCh := make(chan *models.DriverProfile, 1)
	sessionCh := make(chan *models.BalanceResult, 1)

	go func() {
		summary, err := uc.gw.FetchWalletSummary(fetchCtx, driverID)
		if err != nil {
			logger.Warn("Wallet summary fetch failed",
				logger.String("driver_id", driverID), logger.Err(err))
			summary = nil
		}
		summaryCh <- summary
	}()
	go func() {
		profile, err := uc.gw.FetchDriverProfile(fetchCtx, driverID)
		if err != nil {
			logger.Warn("Driver profile fetch failed",
				logger.String("driver_id", driverID), logger.Err(err))
			profile = nil
		}
		profileCh <- profile
	}()
	go func() {
		session, err := uc.repo.GetSessionBalance(fetchCtx, driverID)
		if err != nil {
			session = nil
		}
		sessionCh <- session
	}()

	summary := <-summaryCh
	profile := <-profileCh
	session := <-sessionCh

	result := &models.BalanceResult{
		Source:     models.BalanceSourceNone,
		Reliable:   false,
		ResolvedAt: time.Now(),
	}
	switch {
	case summary != nil && summary.Balance != nil:
		result.Amount = *summary.Balance
		result.Source = models.BalanceSourceSummary
		result.Reliable = true
	case profile != nil && profile.Balance != nil:
		result.Amount = *profile.Balance
		result.Source = models.BalanceSourceProfile
		result.Reliable = true
	case session != nil:
		result.Amount = session.Amount
		result.Source = models.BalanceSourceSession
	}

	// Only reliable results are written back. A cached reliable value has to
	// survive a window where both authoritative sources are down, so an
	// unreliable resolution never overwrites it.
	if result.Reliable {
		if err := uc.repo.SaveSessionBalance(ctx, driverID, result); err != nil {
			logger.Warn("Failed to cache session balance",
				logger.String("driver_id", driverID), logger.Err(err))
		}
	}

	logger.Debug("Balance resolved",
		logger.String("driver_id", driverID),
		logger.String("source", string(result.Source)),
		logger.Float64("amount", result.Amount),
		logger.Bool("reliable", result.Reliable))
	return result, nil
}

// CheckDriverAdmission applies the debt threshold to the resolved balance.
// The gate blocks on confirmed debt only: a driver with no resolvable
// balance is admitted.
func (uc *BalanceUC) CheckDriverAdmission(ctx context.Context, driverID string) (*models.GateDecision, error) {
	result, err := uc.ResolveBalance(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve balance: %w", err)
	}

	decision := &models.GateDecision{Allowed: true, Balance: *result}
	if result.Source != models.BalanceSourceNone && result.Amount < uc.cfg.Balance.DebtThreshold {
		decision.Allowed = false
		decision.Prompt = fmt.Sprintf(
			"Your balance is %.2f. Settle your outstanding balance to go online.", result.Amount)
	}
	return decision, nil
}

// StartPaymentVerification polls the wallet after a top-up until the balance
// reaches expected. It runs in the background and gives up silently after
// the attempt budget; the next resolve simply sees the wallet's answer.
func (uc *BalanceUC) StartPaymentVerification(driverID string, expected float64) {
	go uc.verifyPayment(driverID, expected)
}

func (uc *BalanceUC) verifyPayment(driverID string, expected float64) {
	uc.sleep(time.Duration(uc.cfg.Balance.VerifyInitialDelaySec) * time.Second)

	for attempt := 1; attempt <= uc.cfg.Balance.VerifyAttempts; attempt++ {
		if attempt > 1 {
			uc.sleep(time.Duration(uc.cfg.Balance.VerifySpacingSec) * time.Second)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(uc.cfg.Balance.FetchTimeoutSec)*time.Second)
		summary, err := uc.gw.FetchWalletSummary(ctx, driverID)
		cancel()
		if err != nil {
			logger.Warn("Payment verification fetch failed",
				logger.String("driver_id", driverID),
				logger.Int("attempt", attempt),
				logger.Err(err))
			continue
		}
		if summary.Balance != nil && *summary.Balance >= expected {
			result := &models.BalanceResult{
				Amount:     *summary.Balance,
				Source:     models.BalanceSourceSummary,
				Reliable:   true,
				ResolvedAt: time.Now(),
			}
			saveCtx, saveCancel := context.WithTimeout(context.Background(), time.Duration(uc.cfg.Balance.FetchTimeoutSec)*time.Second)
			if err := uc.repo.SaveSessionBalance(saveCtx, driverID, result); err != nil {
				logger.Warn("Failed to cache verified balance",
					logger.String("driver_id", driverID), logger.Err(err))
			}
			saveCancel()

			logger.Info("Payment verified",
				logger.String("driver_id", driverID),
				logger.Float64("balance", *summary.Balance))
			return
		}
	}

	logger.Info("Payment verification exhausted",
		logger.String("driver_id", driverID),
		logger.Float64("expected", expected))
}
