package trips

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// TripGW defines the trip gateway interface for realtime event publishing
type TripGW interface {
	PublishTripStatus(ctx context.Context, trip *models.Trip) error
	PublishTripRequested(ctx context.Context, trip *models.Trip) error
	PublishTripRepriced(ctx context.Context, trip *models.Trip) error
}
