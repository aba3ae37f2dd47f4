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
	"github.com/ridepulse/ridepulse/services/match"
	matchmocks "github.com/ridepulse/ridepulse/services/match/mocks"
	tripmocks "github.com/ridepulse/ridepulse/services/trips/mocks"
)

func newTestMatchUC(t *testing.T) (*MatchUC, *matchmocks.MockMatchRepo, *tripmocks.MockTripRepo, *matchmocks.MockMatchGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	matchRepo := matchmocks.NewMockMatchRepo(ctrl)
	tripRepo := tripmocks.NewMockTripRepo(ctrl)
	gw := matchmocks.NewMockMatchGW(ctrl)

	cfg := &models.Config{
		Match: models.MatchConfig{
			PickupRadiusKm:        5.0,
			OfferPromptTimeoutSec: 30,
			IgnoreTTLSec:          60,
		},
	}
	return NewMatchUC(cfg, matchRepo, tripRepo, gw), matchRepo, tripRepo, gw
}

func onlineDriver(driverID string, vehicleType string) *models.DriverPresence {
	return &models.DriverPresence{
		DriverID:    driverID,
		IsOnline:    true,
		VehicleType: vehicleType,
		Location:    models.Location{Latitude: -6.2000, Longitude: 106.8200},
		OnlineAt:    time.Now(),
	}
}

func requestedTrip(lat, lng float64, price float64, carType string) *models.Trip {
	return &models.Trip{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Pickup:     models.TripPoint{Latitude: lat, Longitude: lng},
		Price:      price,
		CarType:    carType,
		Status:     models.TripStatusRequested,
	}
}

func TestRequestedFeed_FiltersByDistance(t *testing.T) {
	uc, matchRepo, tripRepo, _ := newTestMatchUC(t)
	driverID := uuid.New().String()

	near := requestedTrip(-6.2050, 106.8250, 40000, "")
	far := requestedTrip(-6.3500, 106.9800, 40000, "")

	matchRepo.EXPECT().GetDriverPresence(gomock.Any(), driverID).Return(onlineDriver(driverID, ""), nil)
	tripRepo.EXPECT().ListRequested(gomock.Any()).Return([]*models.Trip{near, far}, nil)
	matchRepo.EXPECT().IsTripIgnored(gomock.Any(), driverID, near.ID.String(), 40000.0).Return(false, nil)

	feed, err := uc.RequestedFeed(context.Background(), driverID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, near.ID, feed[0].ID)
}

func TestRequestedFeed_VehicleTypeFailsOpen(t *testing.T) {
	uc, matchRepo, tripRepo, _ := newTestMatchUC(t)
	driverID := uuid.New().String()

	untyped := requestedTrip(-6.2010, 106.8210, 30000, "")
	matching := requestedTrip(-6.2020, 106.8220, 30000, "premium")
	mismatched := requestedTrip(-6.2030, 106.8230, 30000, "standard")

	matchRepo.EXPECT().GetDriverPresence(gomock.Any(), driverID).Return(onlineDriver(driverID, "premium"), nil)
	tripRepo.EXPECT().ListRequested(gomock.Any()).Return([]*models.Trip{untyped, matching, mismatched}, nil)
	matchRepo.EXPECT().IsTripIgnored(gomock.Any(), driverID, untyped.ID.String(), 30000.0).Return(false, nil)
	matchRepo.EXPECT().IsTripIgnored(gomock.Any(), driverID, matching.ID.String(), 30000.0).Return(false, nil)

	feed, err := uc.RequestedFeed(context.Background(), driverID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, untyped.ID, feed[0].ID)
	assert.Equal(t, matching.ID, feed[1].ID)
}

func TestRequestedFeed_IgnoredTripSuppressed(t *testing.T) {
	uc, matchRepo, tripRepo, _ := newTestMatchUC(t)
	driverID := uuid.New().String()

	trip := requestedTrip(-6.2010, 106.8210, 50000, "")

	matchRepo.EXPECT().GetDriverPresence(gomock.Any(), driverID).Return(onlineDriver(driverID, ""), nil)
	tripRepo.EXPECT().ListRequested(gomock.Any()).Return([]*models.Trip{trip}, nil)
	matchRepo.EXPECT().IsTripIgnored(gomock.Any(), driverID, trip.ID.String(), 50000.0).Return(true, nil)

	feed, err := uc.RequestedFeed(context.Background(), driverID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestRequestedFeed_CacheErrorDoesNotHideTrips(t *testing.T) {
	uc, matchRepo, tripRepo, _ := newTestMatchUC(t)
	driverID := uuid.New().String()

	trip := requestedTrip(-6.2010, 106.8210, 50000, "")

	matchRepo.EXPECT().GetDriverPresence(gomock.Any(), driverID).Return(onlineDriver(driverID, ""), nil)
	tripRepo.EXPECT().ListRequested(gomock.Any()).Return([]*models.Trip{trip}, nil)
	matchRepo.EXPECT().
		IsTripIgnored(gomock.Any(), driverID, trip.ID.String(), 50000.0).
		Return(false, errors.New("redis down"))

	feed, err := uc.RequestedFeed(context.Background(), driverID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
}

func TestEligibleTrip_InRadiusAcrossCellBoundary(t *testing.T) {
	uc, matchRepo, _, _ := newTestMatchUC(t)
	driverID := uuid.New().String()

	// Pickup just under 5km east of the driver, two precision-5 geohash
	// columns away. The coarse prefilter must never exclude a pickup the
	// haversine check would accept.
	presence := onlineDriver(driverID, "")
	presence.Location = models.Location{Latitude: 0.001, Longitude: 0.087880}
	trip := requestedTrip(0.001, 0.132328, 40000, "")

	matchRepo.EXPECT().GetDriverPresence(gomock.Any(), driverID).Return(presence, nil)
	matchRepo.EXPECT().IsTripIgnored(gomock.Any(), driverID, trip.ID.String(), 40000.0).Return(false, nil)

	eligible, err := uc.EligibleTrip(context.Background(), driverID, trip)
	require.NoError(t, err)
	assert.True(t, eligible)
}

func TestRequestedFeed_OfflineDriver(t *testing.T) {
	uc, matchRepo, _, _ := newTestMatchUC(t)
	driverID := uuid.New().String()

	matchRepo.EXPECT().
		GetDriverPresence(gomock.Any(), driverID).
		Return(&models.DriverPresence{DriverID: driverID, IsOnline: false}, nil)

	_, err := uc.RequestedFeed(context.Background(), driverID)
	assert.Error(t, err)
}

func TestSubmitOffer_AtListedPrice(t *testing.T) {
	uc, matchRepo, tripRepo, gw := newTestMatchUC(t)
	tripID := uuid.New()
	driverID := uuid.New()

	trip := &models.Trip{ID: tripID, Status: models.TripStatusRequested, Price: 45000}
	tripRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	matchRepo.EXPECT().
		CreateOffer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, offer *models.Offer) (*models.Offer, error) {
			assert.Equal(t, 45000.0, offer.Price)
			assert.False(t, offer.IsCounter)
			assert.Equal(t, models.OfferStatusPending, offer.Status)
			return offer, nil
		})
	matchRepo.EXPECT().
		AddIgnoredTrip(gomock.Any(), driverID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, entry models.IgnoredTrip) error {
			assert.Equal(t, tripID.String(), entry.TripID)
			assert.Equal(t, 45000.0, entry.Price)
			return nil
		})
	gw.EXPECT().PublishOfferCreated(gomock.Any(), gomock.Any()).Return(nil)

	offer, err := uc.SubmitOffer(context.Background(), &models.OfferRequest{
		TripID:   tripID.String(),
		DriverID: driverID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, driverID, offer.DriverID)
}

func TestSubmitOffer_CounterPrice(t *testing.T) {
	uc, matchRepo, tripRepo, gw := newTestMatchUC(t)
	tripID := uuid.New()
	driverID := uuid.New()

	trip := &models.Trip{ID: tripID, Status: models.TripStatusRequested, Price: 45000}
	tripRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	matchRepo.EXPECT().
		CreateOffer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, offer *models.Offer) (*models.Offer, error) {
			assert.Equal(t, 55000.0, offer.Price)
			assert.True(t, offer.IsCounter)
			return offer, nil
		})
	matchRepo.EXPECT().AddIgnoredTrip(gomock.Any(), driverID.String(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishOfferCreated(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.SubmitOffer(context.Background(), &models.OfferRequest{
		TripID:   tripID.String(),
		DriverID: driverID.String(),
		Price:    55000,
	})
	require.NoError(t, err)
}

func TestSubmitOffer_TripNoLongerOpen(t *testing.T) {
	uc, _, tripRepo, _ := newTestMatchUC(t)
	tripID := uuid.New()

	tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusAccepted}, nil)

	_, err := uc.SubmitOffer(context.Background(), &models.OfferRequest{
		TripID:   tripID.String(),
		DriverID: uuid.New().String(),
	})
	assert.Error(t, err)
}

func TestSubmitOffer_OneShot(t *testing.T) {
	uc, matchRepo, tripRepo, _ := newTestMatchUC(t)
	tripID := uuid.New()
	driverID := uuid.New()

	trip := &models.Trip{ID: tripID, Status: models.TripStatusRequested, Price: 45000}
	tripRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	matchRepo.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil, match.ErrAlreadyOffered)

	_, err := uc.SubmitOffer(context.Background(), &models.OfferRequest{
		TripID:   tripID.String(),
		DriverID: driverID.String(),
		Price:    45000,
	})
	assert.ErrorIs(t, err, match.ErrAlreadyOffered)
}

func TestAcceptOffer_Success(t *testing.T) {
	uc, matchRepo, _, gw := newTestMatchUC(t)
	offerID := uuid.New()
	driverID := uuid.New()

	offer := &models.Offer{ID: offerID, DriverID: driverID, Status: models.OfferStatusAccepted}
	trip := &models.Trip{ID: uuid.New(), DriverID: &driverID, Status: models.TripStatusAccepted}

	matchRepo.EXPECT().AcceptOffer(gomock.Any(), offerID).Return(offer, trip, nil)
	gw.EXPECT().PublishOfferAccepted(gomock.Any(), offer, trip).Return(nil)

	result, err := uc.AcceptOffer(context.Background(), offerID.String())
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusAccepted, result.Status)
}

func TestAcceptOffer_AlreadyDecided(t *testing.T) {
	uc, matchRepo, _, _ := newTestMatchUC(t)
	offerID := uuid.New()

	matchRepo.EXPECT().AcceptOffer(gomock.Any(), offerID).Return(nil, nil, match.ErrOfferNotPending)

	_, err := uc.AcceptOffer(context.Background(), offerID.String())
	assert.ErrorIs(t, err, match.ErrOfferNotPending)
}

func TestAcceptOffer_PublishFailureIsNotFatal(t *testing.T) {
	uc, matchRepo, _, gw := newTestMatchUC(t)
	offerID := uuid.New()
	driverID := uuid.New()

	offer := &models.Offer{ID: offerID, DriverID: driverID, Status: models.OfferStatusAccepted}
	trip := &models.Trip{ID: uuid.New(), DriverID: &driverID, Status: models.TripStatusAccepted}

	matchRepo.EXPECT().AcceptOffer(gomock.Any(), offerID).Return(offer, trip, nil)
	gw.EXPECT().PublishOfferAccepted(gomock.Any(), offer, trip).Return(errors.New("nats down"))

	result, err := uc.AcceptOffer(context.Background(), offerID.String())
	require.NoError(t, err)
	assert.Equal(t, offerID, result.ID)
}
