package match

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// ErrOfferNotFound is returned when an offer does not exist.
var ErrOfferNotFound = errors.New("offer not found")

// ErrOfferNotPending is returned when an offer has already been accepted or
// mooted and can no longer be acted on.
var ErrOfferNotPending = errors.New("offer is no longer pending")

// ErrAlreadyOffered is returned when a driver tries to place a second offer
// on the same trip. Offers are one-shot.
var ErrAlreadyOffered = errors.New("driver already has an offer on this trip")

// MatchRepo defines the interface for offer and eligibility data access
type MatchRepo interface {
	CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error)
	GetOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error)
	ListPendingOffersByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Offer, error)

	// AcceptOffer runs the whole match transaction: accept the winning offer,
	// assign the driver and agreed price on the trip, and moot every sibling
	// offer. Exactly one offer per trip can ever win.
	AcceptOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, *models.Trip, error)

	// Ignored-trip cache. Entries are keyed by trip and the price the driver
	// saw when ignoring, so a repriced trip surfaces again immediately.
	AddIgnoredTrip(ctx context.Context, driverID string, entry models.IgnoredTrip) error
	IsTripIgnored(ctx context.Context, driverID, tripID string, price float64) (bool, error)

	// Driver presence as written by the location service.
	GetDriverPresence(ctx context.Context, driverID string) (*models.DriverPresence, error)
}
