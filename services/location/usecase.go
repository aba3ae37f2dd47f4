package location

import (
	"context"
	"errors"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// ErrAdmissionBlocked is returned when the balance gate refuses to let a
// driver go online. The caller surfaces it as an actionable prompt, not an
// error dialog.
var ErrAdmissionBlocked = errors.New("driver blocked by balance gate")

// ErrWatchActive is returned by a provider when a second watch is requested
// for a driver that already has one.
var ErrWatchActive = errors.New("watch already active for driver")

// LocationUC is the tracking mode controller: it owns each online driver's
// single position watch and retunes it as the trip lifecycle progresses.
type LocationUC interface {
	// GoOnline runs the balance gate and, if admitted, registers presence and
	// starts an idle-fidelity watch. Re-running it re-runs the gate; toggling
	// cannot bypass the check. The gate decision is returned either way so
	// callers can surface the settle-balance prompt on a block.
	GoOnline(ctx context.Context, driverID, vehicleType string, loc models.Location) (*models.GateDecision, error)

	// GoOffline clears presence and stops the watch entirely.
	GoOffline(ctx context.Context, driverID string) error

	// SetTrackingMode tears the current watch down and recreates it with the
	// mode's parameters. Exactly one watch exists per driver at any time.
	SetTrackingMode(ctx context.Context, driverID string, mode models.TrackingMode) error

	// IngestLocation feeds a raw device sample into the driver's watch.
	IngestLocation(ctx context.Context, update *models.LocationUpdate) error
}

// BalanceGate is the admission check consulted before a driver goes online
type BalanceGate interface {
	CheckDriverAdmission(ctx context.Context, driverID string) (*models.GateDecision, error)
}

// WatchHandle stops a position watch. Stop is idempotent.
type WatchHandle interface {
	Stop()
}

// LocationProvider abstracts the device position stream: the controller
// subscribes with per-mode parameters, the transport layer offers raw
// samples, and SOS asks for a bounded fresh fix.
type LocationProvider interface {
	// Watch registers the driver's single subscription. It fails when one is
	// already active; the controller must stop the old watch first.
	Watch(driverID string, profile models.TrackingProfile, fn func(models.Location)) (WatchHandle, error)

	// Offer delivers a raw device sample to the active watch, which applies
	// the profile's interval and distance filters.
	Offer(driverID string, loc models.Location)

	// CurrentPosition returns a fresh fix, waiting for the next sample up to
	// the context deadline.
	CurrentPosition(ctx context.Context, driverID string) (models.Location, error)

	// LastKnownPosition returns the most recent sample, if any.
	LastKnownPosition(driverID string) (models.Location, bool)
}
