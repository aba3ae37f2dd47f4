package usecase

import (
	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// SessionState is the explicit per-driver reconciliation state that both the
// push channel and the polling fallback write into. It is only ever mutated
// on the session's event loop goroutine, so plain maps are safe.
type SessionState struct {
	DriverID string

	// Current is the trip the session is monitoring, nil when idle.
	Current *models.Trip

	// lastStatus tracks the highest status applied per trip. The reducer is
	// level-triggered on it: duplicates and regressions become no-ops.
	lastStatus map[string]models.TripStatus

	// navigated records trips that already triggered the one-time jump into
	// the active-trip view.
	navigated map[string]bool

	// processedAccepts is the set of trip ids whose acceptance was already
	// handled, so a redundant TRIP_ACCEPTED from the other channel is a no-op.
	processedAccepts map[string]struct{}

	// Prompt is the pending incoming-offer prompt, nil when none is shown.
	Prompt *OfferPrompt
}

// NewSessionState creates the state for a fresh driver session
func NewSessionState(driverID string) *SessionState {
	return &SessionState{
		DriverID:         driverID,
		lastStatus:       make(map[string]models.TripStatus),
		navigated:        make(map[string]bool),
		processedAccepts: make(map[string]struct{}),
	}
}

// Outcome describes what a snapshot application changed and which effects
// the session must run. The reducer itself has no side effects.
type Outcome struct {
	// Applied is true when the snapshot advanced the trip's known status.
	Applied bool

	// UnknownStatus is true when the payload carried a status outside the
	// defined lifecycle. Such events are logged and otherwise ignored.
	UnknownStatus bool

	// AcceptedNow is true the first time this trip's acceptance is processed,
	// across both channels.
	AcceptedNow bool

	// NavigateNow is true when the client must jump into the active-trip
	// view. Set at most once per trip, never for travel requests.
	NavigateNow bool

	// CleanupNow is true when the trip reached a terminal status and the
	// session must release per-trip resources.
	CleanupNow bool

	// Mode, when non-nil, is the tracking mode the trip's new status calls
	// for.
	Mode *models.TrackingMode
}

func modePtr(m models.TrackingMode) *models.TrackingMode { return &m }

// ApplyTripSnapshot folds one observed trip snapshot into the session state.
// Push and poll both funnel through here, which is what makes duplicate and
// out-of-order delivery safe: the decision is based purely on the last
// applied status, not on which channel the snapshot came from.
func ApplyTripSnapshot(state *SessionState, trip *models.Trip, status models.TripStatus) Outcome {
	if !status.Known() {
		return Outcome{UnknownStatus: true}
	}

	tripID := trip.ID.String()
	last, seen := state.lastStatus[tripID]
	if seen && !last.CanTransitionTo(status) {
		return Outcome{}
	}

	state.lastStatus[tripID] = status
	out := Outcome{Applied: true}

	switch status {
	case models.TripStatusAccepted:
		if _, done := state.processedAccepts[tripID]; !done {
			state.processedAccepts[tripID] = struct{}{}
			out.AcceptedNow = true
		}
		state.Current = trip
		if !trip.IsTravelRequest {
			out.Mode = modePtr(models.TrackingModeNearDestination)
		}

	case models.TripStatusArrived:
		state.Current = trip
		if !trip.IsTravelRequest {
			out.Mode = modePtr(models.TrackingModeNearDestination)
		}

	case models.TripStatusStarted:
		state.Current = trip
		out.Mode = modePtr(models.TrackingModeActive)
		if !trip.IsTravelRequest && !state.navigated[tripID] {
			state.navigated[tripID] = true
			out.NavigateNow = true
		}

	case models.TripStatusCompleted, models.TripStatusCancelled:
		// Level-triggered cleanup: runs in full even when earlier statuses
		// were never observed.
		out.CleanupNow = true
		out.Mode = modePtr(models.TrackingModeIdle)
		if state.Current != nil && state.Current.ID == trip.ID {
			state.Current = nil
		}
		delete(state.navigated, tripID)
	}

	return out
}
