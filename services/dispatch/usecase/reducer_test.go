package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

func monitoredTrip(travelRequest bool) *models.Trip {
	driverID := uuid.New()
	return &models.Trip{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		DriverID:        &driverID,
		Status:          models.TripStatusAccepted,
		IsTravelRequest: travelRequest,
	}
}

func TestReducer_AcceptedProcessedOnce(t *testing.T) {
	state := NewSessionState("driver-1")
	trip := monitoredTrip(false)

	first := ApplyTripSnapshot(state, trip, models.TripStatusAccepted)
	assert.True(t, first.Applied)
	assert.True(t, first.AcceptedNow)
	require.NotNil(t, first.Mode)
	assert.Equal(t, models.TrackingModeNearDestination, *first.Mode)

	// The same acceptance arriving from the other channel is a no-op.
	second := ApplyTripSnapshot(state, trip, models.TripStatusAccepted)
	assert.False(t, second.Applied)
	assert.False(t, second.AcceptedNow)
}

func TestReducer_DuplicateStartedNavigatesOnce(t *testing.T) {
	state := NewSessionState("driver-1")
	trip := monitoredTrip(false)

	ApplyTripSnapshot(state, trip, models.TripStatusAccepted)

	navigations := 0
	for i := 0; i < 3; i++ {
		out := ApplyTripSnapshot(state, trip, models.TripStatusStarted)
		if out.NavigateNow {
			navigations++
		}
	}
	assert.Equal(t, 1, navigations)
}

func TestReducer_StatusNeverMovesBackward(t *testing.T) {
	state := NewSessionState("driver-1")
	trip := monitoredTrip(false)

	ApplyTripSnapshot(state, trip, models.TripStatusStarted)

	out := ApplyTripSnapshot(state, trip, models.TripStatusAccepted)
	assert.False(t, out.Applied)

	out = ApplyTripSnapshot(state, trip, models.TripStatusArrived)
	assert.False(t, out.Applied)
}

func TestReducer_OutOfOrderCompletedStillCleansUp(t *testing.T) {
	state := NewSessionState("driver-1")
	trip := monitoredTrip(false)

	// completed arrives before started was ever observed; cleanup is
	// level-triggered on the latest status, not on the path taken there.
	out := ApplyTripSnapshot(state, trip, models.TripStatusCompleted)
	assert.True(t, out.Applied)
	assert.True(t, out.CleanupNow)
	require.NotNil(t, out.Mode)
	assert.Equal(t, models.TrackingModeIdle, *out.Mode)

	// Nothing is applied once the trip is terminal.
	out = ApplyTripSnapshot(state, trip, models.TripStatusStarted)
	assert.False(t, out.Applied)
	out = ApplyTripSnapshot(state, trip, models.TripStatusCancelled)
	assert.False(t, out.Applied)
}

func TestReducer_CancelledFromAnyNonTerminal(t *testing.T) {
	for _, from := range []models.TripStatus{
		models.TripStatusAccepted,
		models.TripStatusArrived,
		models.TripStatusStarted,
	} {
		state := NewSessionState("driver-1")
		trip := monitoredTrip(false)

		ApplyTripSnapshot(state, trip, from)
		out := ApplyTripSnapshot(state, trip, models.TripStatusCancelled)
		assert.True(t, out.Applied, "cancelled from %s", from)
		assert.True(t, out.CleanupNow, "cancelled from %s", from)
	}
}

func TestReducer_UnknownStatusIgnored(t *testing.T) {
	state := NewSessionState("driver-1")
	trip := monitoredTrip(false)

	ApplyTripSnapshot(state, trip, models.TripStatusAccepted)
	out := ApplyTripSnapshot(state, trip, models.TripStatus("teleported"))
	assert.True(t, out.UnknownStatus)
	assert.False(t, out.Applied)

	// State unchanged: the lifecycle continues from accepted.
	out = ApplyTripSnapshot(state, trip, models.TripStatusArrived)
	assert.True(t, out.Applied)
}

func TestReducer_TravelRequestNeverNavigates(t *testing.T) {
	state := NewSessionState("driver-1")
	trip := monitoredTrip(true)

	out := ApplyTripSnapshot(state, trip, models.TripStatusAccepted)
	assert.True(t, out.Applied)
	assert.Nil(t, out.Mode)

	out = ApplyTripSnapshot(state, trip, models.TripStatusStarted)
	assert.True(t, out.Applied)
	assert.False(t, out.NavigateNow)
	// Sampling fidelity still follows the trip even for travel requests.
	require.NotNil(t, out.Mode)
	assert.Equal(t, models.TrackingModeActive, *out.Mode)
}

func TestReducer_TerminalClearsCurrentTrip(t *testing.T) {
	state := NewSessionState("driver-1")
	trip := monitoredTrip(false)

	ApplyTripSnapshot(state, trip, models.TripStatusAccepted)
	require.NotNil(t, state.Current)

	ApplyTripSnapshot(state, trip, models.TripStatusCompleted)
	assert.Nil(t, state.Current)
}
