package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/trips"
	"github.com/ridepulse/ridepulse/services/trips/mocks"
)

func newTestTripUC(t *testing.T) (*TripUC, *mocks.MockTripRepo, *mocks.MockTripGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockTripRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)
	cfg := &models.Config{}
	return NewTripUC(cfg, repo, gw), repo, gw
}

func TestCreateTrip_Success(t *testing.T) {
	uc, repo, gw := newTestTripUC(t)
	customerID := uuid.New()

	req := &models.CreateTripRequest{
		CustomerID:  customerID.String(),
		Pickup:      models.TripPoint{Latitude: -6.175392, Longitude: 106.827153, Address: "Monas"},
		Destination: models.TripPoint{Latitude: -6.224895, Longitude: 106.823071, Address: "Blok M"},
		Price:       45000,
		CarType:     "standard",
	}

	repo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			assert.Equal(t, customerID, trip.CustomerID)
			assert.Equal(t, models.TripStatusRequested, trip.Status)
			assert.Nil(t, trip.DriverID)
			return trip, nil
		})
	gw.EXPECT().PublishTripRequested(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.CreateTrip(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusRequested, trip.Status)
	assert.Equal(t, 45000.0, trip.Price)
}

func TestCreateTrip_InvalidCustomerID(t *testing.T) {
	uc, _, _ := newTestTripUC(t)

	_, err := uc.CreateTrip(context.Background(), &models.CreateTripRequest{
		CustomerID: "not-a-uuid",
		Price:      10000,
	})
	assert.Error(t, err)
}

func TestCreateTrip_NegativePrice(t *testing.T) {
	uc, _, _ := newTestTripUC(t)

	_, err := uc.CreateTrip(context.Background(), &models.CreateTripRequest{
		CustomerID: uuid.New().String(),
		Price:      -500,
	})
	assert.Error(t, err)
}

func TestCreateTrip_PublishFailureIsNotFatal(t *testing.T) {
	uc, repo, gw := newTestTripUC(t)

	repo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			return trip, nil
		})
	gw.EXPECT().PublishTripRequested(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	trip, err := uc.CreateTrip(context.Background(), &models.CreateTripRequest{
		CustomerID: uuid.New().String(),
		Price:      20000,
	})
	require.NoError(t, err)
	assert.NotNil(t, trip)
}

func TestUpdateStatus_Success(t *testing.T) {
	uc, repo, gw := newTestTripUC(t)
	tripID := uuid.New()

	updated := &models.Trip{
		ID:        tripID,
		Status:    models.TripStatusStarted,
		UpdatedAt: time.Now(),
	}

	repo.EXPECT().UpdateStatus(gomock.Any(), tripID, models.TripStatusStarted).Return(updated, nil)
	gw.EXPECT().PublishTripStatus(gomock.Any(), updated).Return(nil)

	trip, err := uc.UpdateStatus(context.Background(), tripID.String(), models.TripStatusStarted)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusStarted, trip.Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	uc, _, _ := newTestTripUC(t)

	_, err := uc.UpdateStatus(context.Background(), uuid.New().String(), models.TripStatus("teleported"))
	assert.Error(t, err)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	uc, repo, _ := newTestTripUC(t)
	tripID := uuid.New()

	repo.EXPECT().
		UpdateStatus(gomock.Any(), tripID, models.TripStatusRequested).
		Return(nil, trips.ErrInvalidTransition)

	_, err := uc.UpdateStatus(context.Background(), tripID.String(), models.TripStatusRequested)
	assert.ErrorIs(t, err, trips.ErrInvalidTransition)
}

func TestUpdateStatus_PublishFailureIsNotFatal(t *testing.T) {
	uc, repo, gw := newTestTripUC(t)
	tripID := uuid.New()

	updated := &models.Trip{ID: tripID, Status: models.TripStatusCompleted}
	repo.EXPECT().UpdateStatus(gomock.Any(), tripID, models.TripStatusCompleted).Return(updated, nil)
	gw.EXPECT().PublishTripStatus(gomock.Any(), updated).Return(errors.New("nats down"))

	trip, err := uc.UpdateStatus(context.Background(), tripID.String(), models.TripStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, trip.Status)
}

func TestCancelTrip(t *testing.T) {
	uc, repo, gw := newTestTripUC(t)
	tripID := uuid.New()

	cancelled := &models.Trip{ID: tripID, Status: models.TripStatusCancelled}
	repo.EXPECT().UpdateStatus(gomock.Any(), tripID, models.TripStatusCancelled).Return(cancelled, nil)
	gw.EXPECT().PublishTripStatus(gomock.Any(), cancelled).Return(nil)

	trip, err := uc.CancelTrip(context.Background(), tripID.String())
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, trip.Status)
}

func TestGetActiveTrip_RoleRouting(t *testing.T) {
	uc, repo, _ := newTestTripUC(t)
	userID := uuid.New()

	driverTrip := &models.Trip{ID: uuid.New(), Status: models.TripStatusStarted}
	repo.EXPECT().GetActiveTripByDriver(gomock.Any(), userID).Return(driverTrip, nil)

	trip, err := uc.GetActiveTrip(context.Background(), userID.String(), "driver")
	require.NoError(t, err)
	assert.Equal(t, driverTrip.ID, trip.ID)

	customerTrip := &models.Trip{ID: uuid.New(), Status: models.TripStatusRequested}
	repo.EXPECT().GetActiveTripByCustomer(gomock.Any(), userID).Return(customerTrip, nil)

	trip, err = uc.GetActiveTrip(context.Background(), userID.String(), "customer")
	require.NoError(t, err)
	assert.Equal(t, customerTrip.ID, trip.ID)
}

func TestRepriceTrip_OnlyWhileRequested(t *testing.T) {
	uc, repo, _ := newTestTripUC(t)
	tripID := uuid.New()

	repo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusAccepted}, nil)

	_, err := uc.RepriceTrip(context.Background(), tripID.String(), 60000)
	assert.Error(t, err)
}

func TestRepriceTrip_Success(t *testing.T) {
	uc, repo, gw := newTestTripUC(t)
	tripID := uuid.New()

	repo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusRequested, Price: 40000}, nil)
	repriced := &models.Trip{ID: tripID, Status: models.TripStatusRequested, Price: 60000}
	repo.EXPECT().UpdatePrice(gomock.Any(), tripID, 60000.0).Return(repriced, nil)
	gw.EXPECT().PublishTripRepriced(gomock.Any(), repriced).Return(nil)

	trip, err := uc.RepriceTrip(context.Background(), tripID.String(), 60000)
	require.NoError(t, err)
	assert.Equal(t, 60000.0, trip.Price)
}
