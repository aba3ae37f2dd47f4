package dispatch

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// DispatchUC manages one reconciliation session per online driver. A session
// merges the realtime push channel and the polling fallback into a single
// idempotent state reducer, owns the incoming-offer prompt and its
// auto-decline timer, and drives tracking-mode changes off trip status.
type DispatchUC interface {
	// StartSession begins reconciliation for a driver. Starting an already
	// running session is a no-op.
	StartSession(ctx context.Context, driverID string) error

	// StopSession tears the session down: poll loop, timers, and any pending
	// prompt are all released.
	StopSession(driverID string) error

	// PushEvent feeds a realtime event into the driver's session. Events for
	// drivers without a session are dropped.
	PushEvent(driverID string, event models.RealtimeEvent)

	// PresentTrip offers a newly requested (or repriced) trip to the driver's
	// session, which vets it and may show an incoming-offer prompt.
	PresentTrip(driverID string, trip *models.Trip)

	// BroadcastTrip presents a requested trip to every running session.
	BroadcastTrip(trip *models.Trip)

	// BroadcastEvent feeds a realtime event to every running session; each
	// session drops what does not concern its trip.
	BroadcastEvent(event models.RealtimeEvent)

	// RespondToPrompt resolves the pending incoming-offer prompt: accept
	// submits an offer at the listed price, decline ignores the trip.
	RespondToPrompt(ctx context.Context, driverID, tripID string, accept bool) error

	// CurrentTrip returns a copy of the trip the driver's session is
	// monitoring, if any.
	CurrentTrip(ctx context.Context, driverID string) (*models.Trip, bool)
}

// OfferService is the slice of the match service a session needs: vetting
// pushed trips, submitting offers, and recording declines.
type OfferService interface {
	EligibleTrip(ctx context.Context, driverID string, trip *models.Trip) (bool, error)
	SubmitOffer(ctx context.Context, req *models.OfferRequest) (*models.Offer, error)
	IgnoreTrip(ctx context.Context, driverID, tripID string, price float64) error
}

// TrackingController switches the driver's location sampling mode as the
// trip progresses.
type TrackingController interface {
	SetTrackingMode(ctx context.Context, driverID string, mode models.TrackingMode) error
}

// LocationIngestor accepts raw device position samples arriving over the
// driver socket.
type LocationIngestor interface {
	IngestLocation(ctx context.Context, update *models.LocationUpdate) error
}
