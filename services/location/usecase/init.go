package usecase

import (
	"sync"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/location"
)

// LocationUC implements the location.LocationUC interface. It is the tracking
// mode controller: each online driver has exactly one position watch, torn
// down and recreated whenever the mode changes.
type LocationUC struct {
	cfg      *models.Config
	repo     location.LocationRepo
	gw       location.LocationGW
	provider location.LocationProvider
	gate     location.BalanceGate

	mu      sync.Mutex
	watches map[string]driverWatch
}

type driverWatch struct {
	mode   models.TrackingMode
	handle location.WatchHandle
}

// NewLocationUC creates a new location usecase instance
func NewLocationUC(
	cfg *models.Config,
	repo location.LocationRepo,
	gw location.LocationGW,
	provider location.LocationProvider,
	gate location.BalanceGate,
) *LocationUC {
	return &LocationUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		provider: provider,
		gate:     gate,
		watches:  make(map[string]driverWatch),
	}
}
