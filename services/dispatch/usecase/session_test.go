package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	httppkg "github.com/ridepulse/ridepulse/internal/pkg/http"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/dispatch/mocks"
)

// Tests drive the session's handlers directly: all state belongs to the loop
// goroutine, so calling the handlers synchronously is equivalent to posting
// the messages in order.

func newTestSession(t *testing.T) (*Session, *mocks.MockDispatchGW, *mocks.MockOfferService, *mocks.MockTrackingController) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gw := mocks.NewMockDispatchGW(ctrl)
	offers := mocks.NewMockOfferService(ctrl)
	tracker := mocks.NewMockTrackingController(ctrl)

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{PollIntervalSec: 4, RequestTimeoutSec: 10},
		Match:    models.MatchConfig{PickupRadiusKm: 5.0, OfferPromptTimeoutSec: 30, IgnoreTTLSec: 60},
	}

	s := newSession(cfg, uuid.New().String(), gw, offers, tracker)
	t.Cleanup(s.sched.Close)
	return s, gw, offers, tracker
}

func requestedPush(price float64) *models.Trip {
	return &models.Trip{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Price:      price,
		Status:     models.TripStatusRequested,
	}
}

func acceptedEvent(driverID string) (models.RealtimeEvent, *models.Trip) {
	id := uuid.MustParse(driverID)
	trip := &models.Trip{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		DriverID:   &id,
		Status:     models.TripStatusAccepted,
	}
	return models.RealtimeEvent{Offer: &models.OfferEvent{Event: models.EventTripAccepted, Trip: *trip}}, trip
}

func TestSession_PromptShownForEligibleTrip(t *testing.T) {
	s, gw, offers, _ := newTestSession(t)
	trip := requestedPush(50)

	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, trip).Return(true, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, trip).Return(nil)

	s.handle(presentMsg{trip: trip})
	require.NotNil(t, s.state.Prompt)
	assert.Equal(t, trip.ID, s.state.Prompt.Trip.ID)
}

func TestSession_IneligibleTripNotShown(t *testing.T) {
	s, _, offers, _ := newTestSession(t)
	trip := requestedPush(50)

	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, trip).Return(false, nil)

	s.handle(presentMsg{trip: trip})
	assert.Nil(t, s.state.Prompt)
}

func TestSession_PromptTimeoutAutoDeclines(t *testing.T) {
	s, gw, offers, _ := newTestSession(t)
	trip := requestedPush(50)

	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, trip).Return(true, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, trip).Return(nil)
	s.handle(presentMsg{trip: trip})

	// Timing out is identical to a manual decline.
	offers.EXPECT().IgnoreTrip(gomock.Any(), s.driverID, trip.ID.String(), 50.0).Return(nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferRetracted, gomock.Any()).Return(nil)

	s.handle(promptTimeoutMsg{tripID: trip.ID.String()})
	assert.Nil(t, s.state.Prompt)
}

func TestSession_PromptAcceptSubmitsOffer(t *testing.T) {
	s, gw, offers, _ := newTestSession(t)
	trip := requestedPush(50)

	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, trip).Return(true, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, trip).Return(nil)
	s.handle(presentMsg{trip: trip})

	offers.EXPECT().
		SubmitOffer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.OfferRequest) (*models.Offer, error) {
			assert.Equal(t, trip.ID.String(), req.TripID)
			assert.Equal(t, 50.0, req.Price)
			return &models.Offer{ID: uuid.New()}, nil
		})

	err := s.handlePromptResponse(context.Background(), trip.ID.String(), true)
	require.NoError(t, err)
	assert.Nil(t, s.state.Prompt)
}

func TestSession_PromptResponseWithoutPrompt(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	err := s.handlePromptResponse(context.Background(), uuid.New().String(), true)
	assert.Error(t, err)
}

func TestSession_PollTransientErrorKeepsPrompt(t *testing.T) {
	s, gw, offers, _ := newTestSession(t)
	trip := requestedPush(50)

	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, trip).Return(true, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, trip).Return(nil)
	s.handle(presentMsg{trip: trip})

	gw.EXPECT().FetchTrip(gomock.Any(), trip.ID.String()).Return(nil, errors.New("connection reset"))
	gw.EXPECT().FetchActiveTrip(gomock.Any(), s.driverID).Return(nil, errors.New("connection reset"))

	s.handle(pollMsg{})
	assert.NotNil(t, s.state.Prompt, "transient errors must not clear a pending prompt")
}

func TestSession_PollGoneRetractsPrompt(t *testing.T) {
	s, gw, offers, _ := newTestSession(t)
	trip := requestedPush(50)

	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, trip).Return(true, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, trip).Return(nil)
	s.handle(presentMsg{trip: trip})

	gone := &httppkg.StatusError{StatusCode: http.StatusNotFound}
	gw.EXPECT().FetchTrip(gomock.Any(), trip.ID.String()).Return(nil, gone)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferRetracted, gomock.Any()).Return(nil)
	gw.EXPECT().FetchActiveTrip(gomock.Any(), s.driverID).Return(nil, gone)
	gw.EXPECT().FetchRequestedTrips(gomock.Any()).Return(nil, nil)

	s.handle(pollMsg{})
	assert.Nil(t, s.state.Prompt)
}

func TestSession_PollNonRequestedRetractsPrompt(t *testing.T) {
	s, gw, offers, _ := newTestSession(t)
	trip := requestedPush(50)

	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, trip).Return(true, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, trip).Return(nil)
	s.handle(presentMsg{trip: trip})

	taken := *trip
	taken.Status = models.TripStatusAccepted
	gw.EXPECT().FetchTrip(gomock.Any(), trip.ID.String()).Return(&taken, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferRetracted, gomock.Any()).Return(nil)
	gw.EXPECT().FetchActiveTrip(gomock.Any(), s.driverID).Return(nil, &httppkg.StatusError{StatusCode: http.StatusNotFound})
	gw.EXPECT().FetchRequestedTrips(gomock.Any()).Return(nil, nil)

	s.handle(pollMsg{})
	assert.Nil(t, s.state.Prompt)
}

func TestSession_RepricedPromptRefreshes(t *testing.T) {
	s, gw, offers, _ := newTestSession(t)
	trip := requestedPush(50)

	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, trip).Return(true, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, trip).Return(nil)
	s.handle(presentMsg{trip: trip})

	repriced := *trip
	repriced.Price = 60
	gw.EXPECT().FetchTrip(gomock.Any(), trip.ID.String()).Return(&repriced, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, &repriced).Return(nil)
	gw.EXPECT().FetchActiveTrip(gomock.Any(), s.driverID).Return(nil, &httppkg.StatusError{StatusCode: http.StatusNotFound})

	s.handle(pollMsg{})
	require.NotNil(t, s.state.Prompt)
	assert.Equal(t, 60.0, s.state.Prompt.Trip.Price)
}

func TestSession_AcceptanceIdempotentAcrossChannels(t *testing.T) {
	s, gw, _, tracker := newTestSession(t)
	event, trip := acceptedEvent(s.driverID)

	gw.EXPECT().Notify(s.driverID, constants.EventTripAccepted, gomock.Any()).Return(nil).Times(1)
	gw.EXPECT().Notify(s.driverID, constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().Notify(trip.CustomerID.String(), constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	tracker.EXPECT().SetTrackingMode(gomock.Any(), s.driverID, models.TrackingModeNearDestination).Return(nil)

	s.handle(pushMsg{event: event})

	// The poll sees the same acceptance; it must be a no-op.
	gw.EXPECT().FetchActiveTrip(gomock.Any(), s.driverID).Return(trip, nil)
	s.handle(pollMsg{})

	require.NotNil(t, s.state.Current)
	assert.Equal(t, trip.ID, s.state.Current.ID)
}

func TestSession_DuplicateStartedNavigatesOnce(t *testing.T) {
	s, gw, _, tracker := newTestSession(t)
	event, trip := acceptedEvent(s.driverID)

	gw.EXPECT().Notify(s.driverID, constants.EventTripAccepted, gomock.Any()).Return(nil)
	gw.EXPECT().Notify(s.driverID, constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().Notify(trip.CustomerID.String(), constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	tracker.EXPECT().SetTrackingMode(gomock.Any(), s.driverID, models.TrackingModeNearDestination).Return(nil)
	s.handle(pushMsg{event: event})

	gw.EXPECT().Notify(s.driverID, constants.EventNavigate, gomock.Any()).Return(nil).Times(1)
	tracker.EXPECT().SetTrackingMode(gomock.Any(), s.driverID, models.TrackingModeActive).Return(nil).Times(1)

	started := &models.StatusEvent{TripID: trip.ID.String(), Status: models.TripStatusStarted}
	for i := 0; i < 3; i++ {
		s.handle(pushMsg{event: models.RealtimeEvent{Status: started}})
	}
}

func TestSession_ActiveTripGoneCleansUp(t *testing.T) {
	s, gw, _, tracker := newTestSession(t)
	event, trip := acceptedEvent(s.driverID)

	gw.EXPECT().Notify(s.driverID, constants.EventTripAccepted, gomock.Any()).Return(nil)
	gw.EXPECT().Notify(s.driverID, constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().Notify(trip.CustomerID.String(), constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	tracker.EXPECT().SetTrackingMode(gomock.Any(), s.driverID, models.TrackingModeNearDestination).Return(nil)
	s.handle(pushMsg{event: event})
	require.NotNil(t, s.state.Current)

	gw.EXPECT().FetchActiveTrip(gomock.Any(), s.driverID).Return(nil, &httppkg.StatusError{StatusCode: http.StatusNotFound})
	tracker.EXPECT().SetTrackingMode(gomock.Any(), s.driverID, models.TrackingModeIdle).Return(nil)
	gw.EXPECT().Notify(s.driverID, constants.EventNotice, gomock.Any()).Return(nil)
	gw.EXPECT().FetchRequestedTrips(gomock.Any()).Return(nil, nil)

	s.handle(pollMsg{})
	assert.Nil(t, s.state.Current)
}

func TestSession_PollSurfacesMissedRequestedTrip(t *testing.T) {
	s, gw, offers, _ := newTestSession(t)
	missed := requestedPush(50)
	second := requestedPush(60)

	// The trip.requested broadcast never arrived; the poll re-derives the
	// feed and shows the first eligible trip. The second stays queued behind
	// the prompt.
	gone := &httppkg.StatusError{StatusCode: http.StatusNotFound}
	gw.EXPECT().FetchActiveTrip(gomock.Any(), s.driverID).Return(nil, gone)
	gw.EXPECT().FetchRequestedTrips(gomock.Any()).Return([]*models.Trip{missed, second}, nil)
	offers.EXPECT().EligibleTrip(gomock.Any(), s.driverID, missed).Return(true, nil)
	gw.EXPECT().Notify(s.driverID, constants.EventOfferPrompt, missed).Return(nil)

	s.handle(pollMsg{})
	require.NotNil(t, s.state.Prompt)
	assert.Equal(t, missed.ID, s.state.Prompt.Trip.ID)
}

func TestSession_PollFeedErrorLeavesStateAlone(t *testing.T) {
	s, gw, _, _ := newTestSession(t)

	gone := &httppkg.StatusError{StatusCode: http.StatusNotFound}
	gw.EXPECT().FetchActiveTrip(gomock.Any(), s.driverID).Return(nil, gone)
	gw.EXPECT().FetchRequestedTrips(gomock.Any()).Return(nil, errors.New("trips unreachable"))

	s.handle(pollMsg{})
	assert.Nil(t, s.state.Prompt)
	assert.Nil(t, s.state.Current)
}

func TestSession_StatusForUnknownTripIgnored(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	stray := &models.StatusEvent{TripID: uuid.New().String(), Status: models.TripStatusStarted}
	s.handle(pushMsg{event: models.RealtimeEvent{Status: stray}})
	assert.Nil(t, s.state.Current)
}

func TestSession_TerminalStatusCleansUpAndNotices(t *testing.T) {
	s, gw, _, tracker := newTestSession(t)
	event, trip := acceptedEvent(s.driverID)

	gw.EXPECT().Notify(s.driverID, constants.EventTripAccepted, gomock.Any()).Return(nil)
	gw.EXPECT().Notify(s.driverID, constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().Notify(trip.CustomerID.String(), constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	tracker.EXPECT().SetTrackingMode(gomock.Any(), s.driverID, models.TrackingModeNearDestination).Return(nil)
	s.handle(pushMsg{event: event})

	tracker.EXPECT().SetTrackingMode(gomock.Any(), s.driverID, models.TrackingModeIdle).Return(nil)
	gw.EXPECT().Notify(s.driverID, constants.EventNotice, "Trip completed").Return(nil)

	completed := &models.StatusEvent{TripID: trip.ID.String(), Status: models.TripStatusCompleted}
	s.handle(pushMsg{event: models.RealtimeEvent{Status: completed}})
	assert.Nil(t, s.state.Current)
}

func TestSession_StatusMirroredToRider(t *testing.T) {
	s, gw, _, tracker := newTestSession(t)
	event, trip := acceptedEvent(s.driverID)

	gw.EXPECT().Notify(s.driverID, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tracker.EXPECT().SetTrackingMode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var mirrored []models.TripStatus
	gw.EXPECT().
		Notify(trip.CustomerID.String(), constants.EventTripStatus, gomock.Any()).
		DoAndReturn(func(_, _ string, payload interface{}) error {
			mirrored = append(mirrored, payload.(models.StatusEvent).Status)
			return nil
		}).
		AnyTimes()

	s.handle(pushMsg{event: event})
	started := &models.StatusEvent{TripID: trip.ID.String(), Status: models.TripStatusStarted}
	s.handle(pushMsg{event: models.RealtimeEvent{Status: started}})

	assert.Equal(t, []models.TripStatus{models.TripStatusAccepted, models.TripStatusStarted}, mirrored)
}

func TestSession_DriverLocationMirroredToRider(t *testing.T) {
	s, gw, _, tracker := newTestSession(t)
	event, trip := acceptedEvent(s.driverID)

	gw.EXPECT().Notify(s.driverID, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().Notify(trip.CustomerID.String(), constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	tracker.EXPECT().SetTrackingMode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.handle(pushMsg{event: event})

	update := &models.LocationUpdate{DriverID: s.driverID, Latitude: -6.2001, Longitude: 106.8202}
	gw.EXPECT().Notify(trip.CustomerID.String(), constants.EventDriverLocation, update).Return(nil)

	s.handle(pushMsg{event: models.RealtimeEvent{Location: update}})
}

func TestSession_OtherDriversLocationNotMirrored(t *testing.T) {
	s, gw, _, tracker := newTestSession(t)
	event, trip := acceptedEvent(s.driverID)

	gw.EXPECT().Notify(s.driverID, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().Notify(trip.CustomerID.String(), constants.EventTripStatus, gomock.Any()).Return(nil).AnyTimes()
	tracker.EXPECT().SetTrackingMode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.handle(pushMsg{event: event})

	// A broadcast sample from a different driver belongs to some other trip.
	stray := &models.LocationUpdate{DriverID: uuid.New().String(), Latitude: -6.3, Longitude: 106.9}
	s.handle(pushMsg{event: models.RealtimeEvent{Location: stray}})
}

func TestSession_LocationWithoutTripDropped(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	update := &models.LocationUpdate{DriverID: s.driverID, Latitude: -6.2, Longitude: 106.82}
	s.handle(pushMsg{event: models.RealtimeEvent{Location: update}})
	assert.Nil(t, s.state.Current)
}
