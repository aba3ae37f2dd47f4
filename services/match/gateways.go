package match

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// MatchGW defines the match gateway interface for realtime notifications
type MatchGW interface {
	PublishOfferCreated(ctx context.Context, offer *models.Offer) error
	PublishOfferAccepted(ctx context.Context, offer *models.Offer, trip *models.Trip) error
}
