package sos

import (
	"context"
	"errors"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// ErrNoActiveTrip is returned when no trip can be resolved for the alert.
// The escalation is rejected before any alert call is made.
var ErrNoActiveTrip = errors.New("no active trip to attach to the alert")

// SOSUC handles safety escalation. It may fire from any trip state; the
// alert carries a fresh location fix and, when resolvable, a trip snapshot.
type SOSUC interface {
	// TriggerSOS resolves the relevant trip (explicit id, then the locally
	// monitored trip, then the active-trip API), captures a bounded location
	// fix, and sends the alert. With no explicit id and no resolvable trip
	// the escalation is rejected without any alert call.
	TriggerSOS(ctx context.Context, userID, tripID, notes string) (*models.SOSAlert, error)
}

// TripMonitor resolves the locally monitored trip without a network call
type TripMonitor interface {
	CurrentTrip(ctx context.Context, driverID string) (*models.Trip, bool)
}

// TripLookup fetches trip records from the trip API
type TripLookup interface {
	FetchTrip(ctx context.Context, tripID string) (*models.Trip, error)
	FetchActiveTrip(ctx context.Context, userID string) (*models.Trip, error)
}

// LocationFixer provides bounded fresh fixes with a cached fallback
type LocationFixer interface {
	CurrentPosition(ctx context.Context, userID string) (models.Location, error)
	LastKnownPosition(userID string) (models.Location, bool)
}
