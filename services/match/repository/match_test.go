package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/database"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/match"
)

func newTestMatchRepo(t *testing.T) (*MatchRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{
		Match: models.MatchConfig{
			PickupRadiusKm: 5.0,
			IgnoreTTLSec:   60,
		},
	}
	return NewMatchRepository(cfg, nil, database.NewRedisClientFromClient(client)), mr
}

func newTestMatchRepoDB(t *testing.T) (*MatchRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewMatchRepository(&models.Config{}, sqlxDB, nil), mock
}

func pendingOffer(tripID, driverID uuid.UUID) *models.Offer {
	now := time.Now()
	return &models.Offer{
		ID:        uuid.New(),
		TripID:    tripID,
		DriverID:  driverID,
		Price:     45000,
		Status:    models.OfferStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateOffer_Inserts(t *testing.T) {
	repo, mock := newTestMatchRepoDB(t)
	offer := pendingOffer(uuid.New(), uuid.New())

	mock.ExpectExec("INSERT INTO offers(.|\n)+ON CONFLICT \\(trip_id, driver_id\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateOffer(context.Background(), offer)
	require.NoError(t, err)
	assert.Equal(t, offer.ID, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOffer_DuplicateLosesTheRace(t *testing.T) {
	repo, mock := newTestMatchRepoDB(t)
	offer := pendingOffer(uuid.New(), uuid.New())

	// A concurrent submit already took the (trip, driver) slot, so the
	// insert conflicts away without a prior existence check to race against.
	mock.ExpectExec("INSERT INTO offers(.|\n)+ON CONFLICT \\(trip_id, driver_id\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.CreateOffer(context.Background(), offer)
	assert.ErrorIs(t, err, match.ErrAlreadyOffered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIgnoredTrip_SuppressedAtSamePrice(t *testing.T) {
	repo, _ := newTestMatchRepo(t)
	ctx := context.Background()
	driverID := uuid.New().String()
	tripID := uuid.New().String()

	err := repo.AddIgnoredTrip(ctx, driverID, models.IgnoredTrip{
		TripID:    tripID,
		Price:     50,
		IgnoredAt: time.Now(),
	})
	require.NoError(t, err)

	ignored, err := repo.IsTripIgnored(ctx, driverID, tripID, 50)
	require.NoError(t, err)
	assert.True(t, ignored)
}

func TestIgnoredTrip_PriceChangeResurfaces(t *testing.T) {
	repo, _ := newTestMatchRepo(t)
	ctx := context.Background()
	driverID := uuid.New().String()
	tripID := uuid.New().String()

	err := repo.AddIgnoredTrip(ctx, driverID, models.IgnoredTrip{
		TripID:    tripID,
		Price:     50,
		IgnoredAt: time.Now(),
	})
	require.NoError(t, err)

	ignored, err := repo.IsTripIgnored(ctx, driverID, tripID, 60)
	require.NoError(t, err)
	assert.False(t, ignored)

	// The stale entry was dropped, so the old price no longer matches either.
	ignored, err = repo.IsTripIgnored(ctx, driverID, tripID, 50)
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestIgnoredTrip_ExpiresAfterTTL(t *testing.T) {
	repo, _ := newTestMatchRepo(t)
	ctx := context.Background()
	driverID := uuid.New().String()
	tripID := uuid.New().String()

	err := repo.AddIgnoredTrip(ctx, driverID, models.IgnoredTrip{
		TripID:    tripID,
		Price:     50,
		IgnoredAt: time.Now().Add(-61 * time.Second),
	})
	require.NoError(t, err)

	ignored, err := repo.IsTripIgnored(ctx, driverID, tripID, 50)
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestIgnoredTrip_UnknownTripNotIgnored(t *testing.T) {
	repo, _ := newTestMatchRepo(t)

	ignored, err := repo.IsTripIgnored(context.Background(), uuid.New().String(), uuid.New().String(), 50)
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestIgnoredTrip_KeyCarriesTTLBackstop(t *testing.T) {
	repo, mr := newTestMatchRepo(t)
	ctx := context.Background()
	driverID := uuid.New().String()

	err := repo.AddIgnoredTrip(ctx, driverID, models.IgnoredTrip{
		TripID:    uuid.New().String(),
		Price:     50,
		IgnoredAt: time.Now(),
	})
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyIgnoredTrips, driverID)
	ttl := mr.TTL(key)
	assert.Equal(t, 60*time.Second, ttl)
}

func TestGetDriverPresence(t *testing.T) {
	repo, mr := newTestMatchRepo(t)
	ctx := context.Background()
	driverID := uuid.New().String()

	presence := models.DriverPresence{
		DriverID:    driverID,
		IsOnline:    true,
		VehicleType: "standard",
		Location:    models.Location{Latitude: -6.2, Longitude: 106.8},
	}
	data, err := json.Marshal(presence)
	require.NoError(t, err)
	mr.Set(fmt.Sprintf(constants.KeyDriverPresence, driverID), string(data))

	got, err := repo.GetDriverPresence(ctx, driverID)
	require.NoError(t, err)
	assert.True(t, got.IsOnline)
	assert.Equal(t, "standard", got.VehicleType)
}

func TestGetDriverPresence_MissingMeansOffline(t *testing.T) {
	repo, _ := newTestMatchRepo(t)

	got, err := repo.GetDriverPresence(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.False(t, got.IsOnline)
}
