package usecase

import (
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/sos"
)

// SOSUC implements the sos.SOSUC interface
type SOSUC struct {
	cfg     *models.Config
	gw      sos.SOSGW
	trips   sos.TripLookup
	monitor sos.TripMonitor
	fixer   sos.LocationFixer
}

// NewSOSUC creates a new SOS usecase instance
func NewSOSUC(
	cfg *models.Config,
	gw sos.SOSGW,
	trips sos.TripLookup,
	monitor sos.TripMonitor,
	fixer sos.LocationFixer,
) *SOSUC {
	return &SOSUC{
		cfg:     cfg,
		gw:      gw,
		trips:   trips,
		monitor: monitor,
		fixer:   fixer,
	}
}
