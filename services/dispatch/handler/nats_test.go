package handler

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	natspkg "github.com/ridepulse/ridepulse/internal/pkg/nats"
	"github.com/ridepulse/ridepulse/services/dispatch/mocks"
)

var testNatsURL = "nats://127.0.0.1:8375"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8375
	srv := natsserver.RunServer(&opts)
	code := m.Run()
	srv.Shutdown()
	os.Exit(code)
}

func newNATSHandler(t *testing.T) (*NATSHandler, *mocks.MockDispatchUC, *nats.Conn) {
	ctrl := gomock.NewController(t)

	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	nc, err := nats.Connect(testNatsURL)
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	dispatchUC := mocks.NewMockDispatchUC(ctrl)
	return NewNATSHandler(dispatchUC, client), dispatchUC, nc
}

func TestInitConsumers_BridgesRequestedTrips(t *testing.T) {
	h, dispatchUC, nc := newNATSHandler(t)
	require.NoError(t, h.InitConsumers())
	defer h.Stop()

	trip := models.Trip{ID: uuid.New(), Price: 42, Status: models.TripStatusRequested}
	done := make(chan struct{}, 1)
	dispatchUC.EXPECT().BroadcastTrip(gomock.Any()).Do(func(got *models.Trip) {
		assert.Equal(t, trip.ID, got.ID)
		assert.Equal(t, 42.0, got.Price)
		done <- struct{}{}
	})

	data, err := json.Marshal(trip)
	require.NoError(t, err)
	require.NoError(t, nc.Publish(constants.SubjectTripRequested, data))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Requested trip never reached the sessions")
	}
}

func TestInitConsumers_BridgesStatusEvents(t *testing.T) {
	h, dispatchUC, nc := newNATSHandler(t)
	require.NoError(t, h.InitConsumers())
	defer h.Stop()

	tripID := uuid.New().String()
	done := make(chan struct{}, 1)
	dispatchUC.EXPECT().BroadcastEvent(gomock.Any()).Do(func(event models.RealtimeEvent) {
		require.NotNil(t, event.Status)
		assert.Equal(t, tripID, event.Status.TripID)
		assert.Equal(t, models.TripStatusCancelled, event.Status.Status)
		done <- struct{}{}
	})

	payload, err := json.Marshal(models.StatusEvent{
		TripID:    tripID,
		Status:    models.TripStatusCancelled,
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, nc.Publish("trip.status."+tripID, payload))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Status event never reached the sessions")
	}
}

func TestInitConsumers_BridgesDriverLocations(t *testing.T) {
	h, dispatchUC, nc := newNATSHandler(t)
	require.NoError(t, h.InitConsumers())
	defer h.Stop()

	done := make(chan struct{}, 1)
	dispatchUC.EXPECT().BroadcastEvent(gomock.Any()).Do(func(event models.RealtimeEvent) {
		require.NotNil(t, event.Location)
		assert.Equal(t, "driver-7", event.Location.DriverID)
		done <- struct{}{}
	})

	payload, err := json.Marshal(models.LocationUpdate{
		DriverID: "driver-7", Latitude: -6.2, Longitude: 106.8,
	})
	require.NoError(t, err)
	require.NoError(t, nc.Publish("driver.location.driver-7", payload))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Location sample never reached the sessions")
	}
}

func TestHandleOfferAccepted_RoutedToWinningDriver(t *testing.T) {
	h, dispatchUC, _ := newNATSHandler(t)

	driverID := uuid.New()
	event := models.OfferEvent{
		Event: models.EventTripAccepted,
		Trip:  models.Trip{ID: uuid.New(), DriverID: &driverID},
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	dispatchUC.EXPECT().PushEvent(driverID.String(), gomock.Any()).Do(
		func(_ string, got models.RealtimeEvent) {
			require.NotNil(t, got.Offer)
			assert.Equal(t, models.EventTripAccepted, got.Offer.Event)
		})

	assert.NoError(t, h.handleOfferAccepted(data))
}

func TestHandleOfferAccepted_MissingDriverID(t *testing.T) {
	h, _, _ := newNATSHandler(t)

	event := models.OfferEvent{Event: models.EventTripAccepted, Trip: models.Trip{ID: uuid.New()}}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.Error(t, h.handleOfferAccepted(data))
}

func TestHandleTripBroadcast_InvalidPayload(t *testing.T) {
	h, _, _ := newNATSHandler(t)
	assert.Error(t, h.handleTripBroadcast([]byte(`{"trip_id":`)))
}

func TestStop_Unsubscribes(t *testing.T) {
	h, dispatchUC, nc := newNATSHandler(t)
	require.NoError(t, h.InitConsumers())
	h.Stop()

	// No expectations registered: a delivery after Stop would fail the test.
	_ = dispatchUC

	trip := models.Trip{ID: uuid.New()}
	data, err := json.Marshal(trip)
	require.NoError(t, err)
	require.NoError(t, nc.Publish(constants.SubjectTripRequested, data))
	require.NoError(t, nc.Flush())
	time.Sleep(100 * time.Millisecond)
}
