package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/pkg/observability"
	"github.com/ridepulse/ridepulse/internal/utils"
)

// geohash precision 4 cells are at least ~19.5km tall and wider than the
// pickup radius at any latitude the service operates in, so a pickup within
// radius is always in the driver's cell or one of its eight neighbors. The
// prefilter only discards trips; the haversine check decides eligibility.
const feedGeohashPrecision = 4

// RequestedFeed returns the open trips the driver should see right now.
// A trip is shown when the pickup is within radius, the vehicle types are
// compatible, and the driver has not ignored it at its current price.
func (uc *MatchUC) RequestedFeed(ctx context.Context, driverID string) ([]*models.Trip, error) {
	presence, err := uc.matchRepo.GetDriverPresence(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver presence: %w", err)
	}
	if !presence.IsOnline {
		return nil, fmt.Errorf("driver %s is not online", driverID)
	}

	requested, err := uc.tripRepo.ListRequested(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requested trips: %w", err)
	}

	driverPoint := utils.GeoPoint{
		Latitude:  presence.Location.Latitude,
		Longitude: presence.Location.Longitude,
	}
	cells := utils.CoarseCells(driverPoint, feedGeohashPrecision)

	feed := make([]*models.Trip, 0, len(requested))
	for _, trip := range requested {
		if !uc.eligible(presence, driverPoint, cells, trip) {
			continue
		}

		ignored, err := uc.matchRepo.IsTripIgnored(ctx, driverID, trip.ID.String(), trip.Price)
		if err != nil {
			// Cache errors must not hide open trips from drivers.
			logger.Warn("Ignored-trip cache lookup failed",
				logger.String("driver_id", driverID),
				logger.String("trip_id", trip.ID.String()),
				logger.Err(err))
		} else if ignored {
			continue
		}

		feed = append(feed, trip)
	}

	return feed, nil
}

// EligibleTrip reports whether a single pushed trip should be shown to the
// driver, using the same vehicle, distance, and ignored-cache filters as the
// feed.
func (uc *MatchUC) EligibleTrip(ctx context.Context, driverID string, trip *models.Trip) (bool, error) {
	presence, err := uc.matchRepo.GetDriverPresence(ctx, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to get driver presence: %w", err)
	}
	if !presence.IsOnline {
		return false, nil
	}

	driverPoint := utils.GeoPoint{
		Latitude:  presence.Location.Latitude,
		Longitude: presence.Location.Longitude,
	}
	cells := utils.CoarseCells(driverPoint, feedGeohashPrecision)
	if !uc.eligible(presence, driverPoint, cells, trip) {
		return false, nil
	}

	ignored, err := uc.matchRepo.IsTripIgnored(ctx, driverID, trip.ID.String(), trip.Price)
	if err != nil {
		logger.Warn("Ignored-trip cache lookup failed",
			logger.String("driver_id", driverID),
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
		return true, nil
	}
	return !ignored, nil
}

// eligible applies the vehicle and distance filters. Vehicle matching fails
// open: if either side has no vehicle type recorded, the trip is shown.
func (uc *MatchUC) eligible(presence *models.DriverPresence, driverPoint utils.GeoPoint, cells []string, trip *models.Trip) bool {
	if trip.CarType != "" && presence.VehicleType != "" &&
		!strings.EqualFold(trip.CarType, presence.VehicleType) {
		return false
	}

	pickup := utils.GeoPoint{
		Latitude:  trip.Pickup.Latitude,
		Longitude: trip.Pickup.Longitude,
	}

	pickupCell := utils.EncodeLocation(models.Location{
		Latitude:  pickup.Latitude,
		Longitude: pickup.Longitude,
	}, feedGeohashPrecision)

	inCell := false
	for _, cell := range cells {
		if cell == pickupCell {
			inCell = true
			break
		}
	}
	if !inCell {
		return false
	}

	return utils.CalculateDistance(driverPoint, pickup) <= uc.cfg.Match.PickupRadiusKm
}

// SubmitOffer places a driver's one-shot offer on a trip. Offering at any
// price also ignores the trip at its listed price, so it leaves the driver's
// feed until the customer reprices.
func (uc *MatchUC) SubmitOffer(ctx context.Context, req *models.OfferRequest) (*models.Offer, error) {
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID: %w", err)
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return nil, fmt.Errorf("invalid driver ID: %w", err)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("invalid price: %v", req.Price)
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusRequested {
		return nil, fmt.Errorf("trip %s is no longer open for offers", req.TripID)
	}

	price := req.Price
	if price == 0 {
		price = trip.Price
	}

	now := time.Now()
	offer := &models.Offer{
		ID:        uuid.New(),
		TripID:    tripID,
		DriverID:  driverID,
		Price:     price,
		IsCounter: price != trip.Price,
		Status:    models.OfferStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := uc.matchRepo.CreateOffer(ctx, offer)
	if err != nil {
		return nil, err
	}
	observability.OffersTotal.Inc()

	if err := uc.matchRepo.AddIgnoredTrip(ctx, req.DriverID, models.IgnoredTrip{
		TripID:    req.TripID,
		Price:     trip.Price,
		IgnoredAt: now,
	}); err != nil {
		logger.Warn("Failed to add trip to ignored cache after offer",
			logger.String("driver_id", req.DriverID),
			logger.String("trip_id", req.TripID),
			logger.Err(err))
	}

	if err := uc.matchGW.PublishOfferCreated(ctx, created); err != nil {
		logger.Warn("Failed to publish offer created event",
			logger.String("offer_id", created.ID.String()),
			logger.Err(err))
	}

	return created, nil
}

// IgnoreTrip records a driver's decline so the trip stays out of the feed
// until the ignore TTL elapses or the price changes.
func (uc *MatchUC) IgnoreTrip(ctx context.Context, driverID, tripID string, price float64) error {
	if _, err := uuid.Parse(tripID); err != nil {
		return fmt.Errorf("invalid trip ID: %w", err)
	}

	return uc.matchRepo.AddIgnoredTrip(ctx, driverID, models.IgnoredTrip{
		TripID:    tripID,
		Price:     price,
		IgnoredAt: time.Now(),
	})
}

// AcceptOffer accepts exactly one offer on the trip. The repository runs
// the whole match as one transaction, so two concurrent accepts cannot both
// win, and every sibling offer is mooted before anyone is notified.
func (uc *MatchUC) AcceptOffer(ctx context.Context, offerID string) (*models.Offer, error) {
	id, err := uuid.Parse(offerID)
	if err != nil {
		return nil, fmt.Errorf("invalid offer ID: %w", err)
	}

	offer, trip, err := uc.matchRepo.AcceptOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	observability.TripsMatched.Inc()

	if err := uc.matchGW.PublishOfferAccepted(ctx, offer, trip); err != nil {
		// The winning driver's poller picks the acceptance up on the next
		// cycle even when the push is lost.
		logger.Warn("Failed to publish offer accepted event",
			logger.String("offer_id", offer.ID.String()),
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	return offer, nil
}

// ListTripOffers returns the pending offers on a trip
func (uc *MatchUC) ListTripOffers(ctx context.Context, tripID string) ([]*models.Offer, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID: %w", err)
	}
	return uc.matchRepo.ListPendingOffersByTrip(ctx, id)
}
