package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// CreateTrip creates a requested trip and broadcasts it to eligible drivers
func (uc *TripUC) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID: %w", err)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("invalid price: %v", req.Price)
	}

	now := time.Now()
	trip := &models.Trip{
		ID:              uuid.New(),
		CustomerID:      customerID,
		Pickup:          req.Pickup,
		Destination:     req.Destination,
		Price:           req.Price,
		DistanceKm:      req.DistanceKm,
		DurationSec:     req.DurationSec,
		PaymentMethod:   req.PaymentMethod,
		PromoCode:       req.PromoCode,
		CarType:         req.CarType,
		Status:          models.TripStatusRequested,
		IsTravelRequest: req.IsTravelRequest,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := uc.tripRepo.CreateTrip(ctx, trip)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	if err := uc.tripGW.PublishTripRequested(ctx, created); err != nil {
		// The polling fallback re-derives the requested feed, so a missed
		// broadcast is not fatal.
		logger.Warn("Failed to publish trip requested event",
			logger.String("trip_id", created.ID.String()),
			logger.Err(err))
	}

	return created, nil
}

// GetTrip retrieves a trip by ID
func (uc *TripUC) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID: %w", err)
	}
	return uc.tripRepo.GetTrip(ctx, id)
}

// GetActiveTrip retrieves the caller's current non-terminal trip
func (uc *TripUC) GetActiveTrip(ctx context.Context, userID, role string) (*models.Trip, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	if role == "driver" {
		return uc.tripRepo.GetActiveTripByDriver(ctx, id)
	}
	return uc.tripRepo.GetActiveTripByCustomer(ctx, id)
}

// ListRequestedTrips returns all trips still open for offers
func (uc *TripUC) ListRequestedTrips(ctx context.Context) ([]*models.Trip, error) {
	return uc.tripRepo.ListRequested(ctx)
}

// UpdateStatus moves a trip forward through its lifecycle and publishes the
// change on the realtime channel. The repository enforces forward-only
// transitions, so a stale or duplicate update fails rather than regressing.
func (uc *TripUC) UpdateStatus(ctx context.Context, tripID string, status models.TripStatus) (*models.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID: %w", err)
	}
	if !status.Known() {
		return nil, fmt.Errorf("unknown trip status: %s", status)
	}

	updated, err := uc.tripRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if err := uc.tripGW.PublishTripStatus(ctx, updated); err != nil {
		logger.Warn("Failed to publish trip status event",
			logger.String("trip_id", updated.ID.String()),
			logger.String("status", string(updated.Status)),
			logger.Err(err))
	}

	return updated, nil
}

// CancelTrip cancels a trip from any non-terminal status
func (uc *TripUC) CancelTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return uc.UpdateStatus(ctx, tripID, models.TripStatusCancelled)
}

// RepriceTrip changes the listed price of a requested trip. Repricing makes
// stale ignored-cache entries invalid, so drivers see the trip again.
func (uc *TripUC) RepriceTrip(ctx context.Context, tripID string, price float64) (*models.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID: %w", err)
	}
	if price < 0 {
		return nil, fmt.Errorf("invalid price: %v", price)
	}

	current, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.TripStatusRequested {
		return nil, fmt.Errorf("trip %s is no longer open for repricing", tripID)
	}

	updated, err := uc.tripRepo.UpdatePrice(ctx, id, price)
	if err != nil {
		return nil, fmt.Errorf("failed to reprice trip: %w", err)
	}

	if err := uc.tripGW.PublishTripRepriced(ctx, updated); err != nil {
		logger.Warn("Failed to publish trip repriced event",
			logger.String("trip_id", updated.ID.String()),
			logger.Err(err))
	}

	return updated, nil
}
