package trips

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// ErrTripNotFound is returned when a trip does not exist. Callers treat it
// as "this trip is gone" and run cleanup, unlike transient repository errors.
var ErrTripNotFound = errors.New("trip not found")

// ErrInvalidTransition is returned when a status update would move the trip
// backward or out of a terminal status.
var ErrInvalidTransition = errors.New("invalid trip status transition")

// TripRepo defines the interface for trip data access operations
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	GetActiveTripByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Trip, error)
	GetActiveTripByDriver(ctx context.Context, driverID uuid.UUID) (*models.Trip, error)
	ListRequested(ctx context.Context) ([]*models.Trip, error)
	UpdateStatus(ctx context.Context, tripID uuid.UUID, status models.TripStatus) (*models.Trip, error)
	UpdatePrice(ctx context.Context, tripID uuid.UUID, price float64) (*models.Trip, error)
}
