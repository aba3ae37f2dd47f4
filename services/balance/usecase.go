package balance

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// BalanceUC resolves a driver's balance from its candidate sources and
// gates go-online on the result.
type BalanceUC interface {
	// ResolveBalance queries the wallet summary, the driver profile, and the
	// cached session value concurrently and picks the best answer by source
	// precedence: summary, then profile, then session. The result is reliable
	// only when summary or profile produced it.
	ResolveBalance(ctx context.Context, driverID string) (*models.BalanceResult, error)

	// CheckDriverAdmission resolves the balance and applies the debt
	// threshold. A driver with no resolvable balance is admitted; the gate
	// blocks on confirmed debt, not on missing data.
	CheckDriverAdmission(ctx context.Context, driverID string) (*models.GateDecision, error)

	// StartPaymentVerification polls the wallet in the background until the
	// balance reaches expected or the attempt budget runs out. It gives up
	// silently; the next resolve sees whatever the wallet says.
	StartPaymentVerification(driverID string, expected float64)
}
