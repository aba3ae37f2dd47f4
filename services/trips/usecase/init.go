package usecase

import (
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/trips"
)

// TripUC implements the trip lifecycle business logic
type TripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
}

// NewTripUC creates a new trip usecase
func NewTripUC(cfg *models.Config, tripRepo trips.TripRepo, tripGW trips.TripGW) *TripUC {
	return &TripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
	}
}
