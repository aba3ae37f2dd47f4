package dispatch

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// DispatchGW is the session's view of the outside world: trip lookups for
// the polling fallback and push delivery to the driver's device.
type DispatchGW interface {
	// FetchTrip returns the trip or, on an authoritative 404/400, an error
	// for which httppkg.IsGone reports true.
	FetchTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// FetchActiveTrip returns the driver's current non-terminal trip, with
	// the same gone semantics when there is none.
	FetchActiveTrip(ctx context.Context, driverID string) (*models.Trip, error)

	// FetchRequestedTrips returns every currently open trip, so the polling
	// fallback can surface requests whose broadcast was missed.
	FetchRequestedTrips(ctx context.Context) ([]*models.Trip, error)

	// Notify delivers an event to the driver's connected client.
	Notify(driverID string, event string, payload interface{}) error
}
