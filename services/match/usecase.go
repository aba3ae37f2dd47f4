package match

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// MatchUC defines the match usecase interface
type MatchUC interface {
	// RequestedFeed returns the open trips a driver should see: within pickup
	// radius, compatible vehicle type, and not currently ignored at the
	// listed price.
	RequestedFeed(ctx context.Context, driverID string) ([]*models.Trip, error)

	// EligibleTrip applies the same filters to a single pushed trip.
	EligibleTrip(ctx context.Context, driverID string, trip *models.Trip) (bool, error)

	// SubmitOffer places a driver's one-shot offer on a trip.
	SubmitOffer(ctx context.Context, req *models.OfferRequest) (*models.Offer, error)

	// IgnoreTrip records that the driver declined a trip at its current price.
	IgnoreTrip(ctx context.Context, driverID, tripID string, price float64) error

	// AcceptOffer is the customer accepting exactly one offer: the trip moves
	// to accepted, every sibling offer goes moot, and the winning driver is
	// notified.
	AcceptOffer(ctx context.Context, offerID string) (*models.Offer, error)

	// ListTripOffers returns the pending offers on a trip for the customer.
	ListTripOffers(ctx context.Context, tripID string) ([]*models.Offer, error)
}
