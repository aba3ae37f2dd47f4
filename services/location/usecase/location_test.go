package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/location"
	"github.com/ridepulse/ridepulse/services/location/mocks"
)

type locationMocks struct {
	repo     *mocks.MockLocationRepo
	gw       *mocks.MockLocationGW
	provider *mocks.MockLocationProvider
	gate     *mocks.MockBalanceGate
}

func newLocationUC(t *testing.T) (*LocationUC, locationMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := locationMocks{
		repo:     mocks.NewMockLocationRepo(ctrl),
		gw:       mocks.NewMockLocationGW(ctrl),
		provider: mocks.NewMockLocationProvider(ctrl),
		gate:     mocks.NewMockBalanceGate(ctrl),
	}

	cfg := &models.Config{}
	cfg.Dispatch.RequestTimeoutSec = 10
	cfg.Tracking = models.TrackingConfig{
		IdleIntervalSec: 30, IdleDistanceM: 200,
		NearIntervalSec: 10, NearDistanceM: 50,
		ActiveIntervalSec: 3, ActiveDistanceM: 10,
	}

	uc := NewLocationUC(cfg, m.repo, m.gw, m.provider, m.gate)
	return uc, m, ctrl
}

func allowedDecision(balance float64) *models.GateDecision {
	return &models.GateDecision{
		Allowed: true,
		Balance: models.BalanceResult{Amount: balance, Source: models.BalanceSourceSummary, Reliable: true},
	}
}

func TestGoOnline_StartsIdleWatch(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	loc := models.Location{Latitude: -6.2, Longitude: 106.8}

	m.gate.EXPECT().CheckDriverAdmission(gomock.Any(), "driver-1").Return(allowedDecision(150), nil)
	m.repo.EXPECT().SavePresence(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.DriverPresence) error {
			assert.True(t, p.IsOnline)
			assert.Equal(t, models.TrackingModeIdle, p.Mode)
			assert.Equal(t, "car", p.VehicleType)
			return nil
		})
	m.repo.EXPECT().UpdateDriverLocation(gomock.Any(), "driver-1", loc).Return(nil)

	handle := mocks.NewMockWatchHandle(ctrl)
	m.provider.EXPECT().Watch("driver-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, profile models.TrackingProfile, _ func(models.Location)) (location.WatchHandle, error) {
			assert.Equal(t, "low", profile.Accuracy)
			return handle, nil
		})
	// Presence mirrors the mode after the switch.
	m.repo.EXPECT().GetPresence(gomock.Any(), "driver-1").Return(
		&models.DriverPresence{DriverID: "driver-1", IsOnline: true, Mode: models.TrackingModeIdle}, nil)
	m.repo.EXPECT().SavePresence(gomock.Any(), gomock.Any()).Return(nil)

	decision, err := uc.GoOnline(context.Background(), "driver-1", "car", loc)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestGoOnline_BlockedByGate(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	blocked := &models.GateDecision{
		Allowed: false,
		Balance: models.BalanceResult{Amount: -150, Source: models.BalanceSourceSummary, Reliable: true},
		Prompt:  "Settle your balance to go online",
	}
	m.gate.EXPECT().CheckDriverAdmission(gomock.Any(), "driver-1").Return(blocked, nil)

	decision, err := uc.GoOnline(context.Background(), "driver-1", "car", models.Location{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, location.ErrAdmissionBlocked))
	require.NotNil(t, decision)
	assert.Equal(t, "Settle your balance to go online", decision.Prompt)
}

func TestGoOnline_GateErrorPropagates(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	m.gate.EXPECT().CheckDriverAdmission(gomock.Any(), "driver-1").
		Return(nil, errors.New("wallet service down"))

	_, err := uc.GoOnline(context.Background(), "driver-1", "car", models.Location{})
	assert.Error(t, err)
}

func TestSetTrackingMode_TearsDownBeforeRecreating(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	oldHandle := mocks.NewMockWatchHandle(ctrl)
	uc.watches["driver-1"] = driverWatch{mode: models.TrackingModeIdle, handle: oldHandle}

	newHandle := mocks.NewMockWatchHandle(ctrl)
	gomock.InOrder(
		oldHandle.EXPECT().Stop(),
		m.provider.EXPECT().Watch("driver-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ string, profile models.TrackingProfile, _ func(models.Location)) (location.WatchHandle, error) {
				assert.Equal(t, "high", profile.Accuracy)
				return newHandle, nil
			}),
	)
	m.repo.EXPECT().GetPresence(gomock.Any(), "driver-1").Return(
		&models.DriverPresence{DriverID: "driver-1", IsOnline: true, Mode: models.TrackingModeIdle}, nil)
	m.repo.EXPECT().SavePresence(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.DriverPresence) error {
			assert.Equal(t, models.TrackingModeActive, p.Mode)
			return nil
		})

	err := uc.SetTrackingMode(context.Background(), "driver-1", models.TrackingModeActive)
	require.NoError(t, err)
	assert.Equal(t, models.TrackingModeActive, uc.watches["driver-1"].mode)
}

func TestSetTrackingMode_SameModeIsNoOp(t *testing.T) {
	uc, _, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	handle := mocks.NewMockWatchHandle(ctrl)
	uc.watches["driver-1"] = driverWatch{mode: models.TrackingModeActive, handle: handle}

	// No Stop, no Watch, no presence writes.
	err := uc.SetTrackingMode(context.Background(), "driver-1", models.TrackingModeActive)
	assert.NoError(t, err)
}

func TestSetTrackingMode_OfflineDriverRejected(t *testing.T) {
	uc, _, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	err := uc.SetTrackingMode(context.Background(), "driver-1", models.TrackingModeActive)
	assert.Error(t, err)
}

func TestGoOffline_StopsWatchAndClearsState(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	handle := mocks.NewMockWatchHandle(ctrl)
	uc.watches["driver-1"] = driverWatch{mode: models.TrackingModeIdle, handle: handle}

	handle.EXPECT().Stop()
	m.repo.EXPECT().DeletePresence(gomock.Any(), "driver-1").Return(nil)
	m.repo.EXPECT().RemoveDriverLocation(gomock.Any(), "driver-1").Return(nil)

	err := uc.GoOffline(context.Background(), "driver-1")
	require.NoError(t, err)

	_, ok := uc.watches["driver-1"]
	assert.False(t, ok)
}

func TestGoOffline_NoWatchStillClearsState(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().DeletePresence(gomock.Any(), "driver-1").Return(nil)
	m.repo.EXPECT().RemoveDriverLocation(gomock.Any(), "driver-1").Return(nil)

	err := uc.GoOffline(context.Background(), "driver-1")
	assert.NoError(t, err)
}

func TestIngestLocation_OffersToProvider(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	update := &models.LocationUpdate{DriverID: "driver-1", Latitude: -6.2, Longitude: 106.8}
	m.provider.EXPECT().Offer("driver-1", gomock.Any()).Do(
		func(_ string, loc models.Location) {
			assert.InDelta(t, -6.2, loc.Latitude, 1e-9)
		})

	err := uc.IngestLocation(context.Background(), update)
	assert.NoError(t, err)
}

func TestIngestLocation_MissingDriverIDRejected(t *testing.T) {
	uc, _, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	err := uc.IngestLocation(context.Background(), &models.LocationUpdate{Latitude: -6.2})
	assert.Error(t, err)
}

func TestWatchCallback_StoresAndPublishesSample(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	var callback func(models.Location)
	handle := mocks.NewMockWatchHandle(ctrl)

	m.gate.EXPECT().CheckDriverAdmission(gomock.Any(), "driver-1").Return(allowedDecision(150), nil)
	m.repo.EXPECT().SavePresence(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.repo.EXPECT().UpdateDriverLocation(gomock.Any(), "driver-1", gomock.Any()).Return(nil)
	m.repo.EXPECT().GetPresence(gomock.Any(), "driver-1").Return(
		&models.DriverPresence{DriverID: "driver-1", IsOnline: true}, nil)
	m.provider.EXPECT().Watch("driver-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, _ models.TrackingProfile, fn func(models.Location)) (location.WatchHandle, error) {
			callback = fn
			return handle, nil
		})

	_, err := uc.GoOnline(context.Background(), "driver-1", "car", models.Location{Latitude: -6.2, Longitude: 106.8})
	require.NoError(t, err)
	require.NotNil(t, callback)

	sample := models.Location{Latitude: -6.21, Longitude: 106.81}
	m.repo.EXPECT().UpdateDriverLocation(gomock.Any(), "driver-1", sample).Return(nil)
	m.gw.EXPECT().PublishLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update *models.LocationUpdate) error {
			assert.Equal(t, "driver-1", update.DriverID)
			assert.InDelta(t, -6.21, update.Latitude, 1e-9)
			return nil
		})

	callback(sample)
}

func TestWatchCallback_PublishFailureIsNotFatal(t *testing.T) {
	uc, m, ctrl := newLocationUC(t)
	defer ctrl.Finish()

	sample := models.Location{Latitude: -6.21, Longitude: 106.81}
	m.repo.EXPECT().UpdateDriverLocation(gomock.Any(), "driver-1", sample).Return(nil)
	m.gw.EXPECT().PublishLocation(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	// Samples keep flowing into storage even when the realtime channel is
	// unavailable.
	uc.handleSample("driver-1", sample)
}
