package trips

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// TripUC defines the interface for trip lifecycle business logic
type TripUC interface {
	CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	GetActiveTrip(ctx context.Context, userID, role string) (*models.Trip, error)
	ListRequestedTrips(ctx context.Context) ([]*models.Trip, error)
	UpdateStatus(ctx context.Context, tripID string, status models.TripStatus) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID string) (*models.Trip, error)
	RepriceTrip(ctx context.Context, tripID string, price float64) (*models.Trip, error)
}
