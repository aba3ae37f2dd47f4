package usecase

import (
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/match"
	"github.com/ridepulse/ridepulse/services/trips"
)

// MatchUC implements the offer and matching business logic
type MatchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
	tripRepo  trips.TripRepo
	matchGW   match.MatchGW
}

// NewMatchUC creates a new match usecase
func NewMatchUC(cfg *models.Config, matchRepo match.MatchRepo, tripRepo trips.TripRepo, matchGW match.MatchGW) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
		tripRepo:  tripRepo,
		matchGW:   matchGW,
	}
}
