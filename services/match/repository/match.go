package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/database"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/match"
	"github.com/ridepulse/ridepulse/services/trips"
)

const offerColumns = `id, trip_id, driver_id, price, is_counter, status, created_at, updated_at`

func isRedisNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// MatchRepo implements the match repository on PostgreSQL and Redis
type MatchRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *MatchRepo {
	return &MatchRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// CreateOffer inserts a pending offer. One offer per driver per trip: the
// unique (trip_id, driver_id) index decides races, so two concurrent submits
// can never both land.
func (r *MatchRepo) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	query := `
		INSERT INTO offers (id, trip_id, driver_id, price, is_counter, status, created_at, updated_at)
		VALUES (:id, :trip_id, :driver_id, :price, :is_counter, :status, :created_at, :updated_at)
		ON CONFLICT (trip_id, driver_id) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, offer)
	if err != nil {
		return nil, fmt.Errorf("failed to insert offer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		return nil, match.ErrAlreadyOffered
	}

	return offer, nil
}

// GetOffer retrieves an offer by ID
func (r *MatchRepo) GetOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	var offer models.Offer
	if err := r.db.GetContext(ctx, &offer, query, offerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, match.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	return &offer, nil
}

// ListPendingOffersByTrip returns the pending offers on a trip, oldest first
func (r *MatchRepo) ListPendingOffersByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE trip_id = $1 AND status = $2
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryxContext(ctx, query, tripID, models.OfferStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var result []*models.Offer
	for rows.Next() {
		var offer models.Offer
		if err := rows.StructScan(&offer); err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		result = append(result, &offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return result, nil
}

// AcceptOffer runs the match transaction. The offer and the trip row are
// both locked before anything changes, so two concurrent accepts serialize
// and the loser fails on the pending/requested checks.
func (r *MatchRepo) AcceptOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, *models.Trip, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var offer models.Offer
	offerQuery := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &offer, offerQuery, offerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, match.ErrOfferNotFound
		}
		return nil, nil, fmt.Errorf("failed to get offer: %w", err)
	}
	if offer.Status != models.OfferStatusPending {
		return nil, nil, match.ErrOfferNotPending
	}

	var trip models.TripDTO
	tripQuery := `
		SELECT id, customer_id, driver_id,
			pickup_latitude, pickup_longitude, pickup_address,
			destination_latitude, destination_longitude, destination_address,
			price, distance_km, duration_sec,
			payment_method, promo_code, car_type,
			status, is_travel_request,
			created_at, updated_at
		FROM trips WHERE id = $1 FOR UPDATE
	`
	if err := tx.GetContext(ctx, &trip, tripQuery, offer.TripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, trips.ErrTripNotFound
		}
		return nil, nil, fmt.Errorf("failed to get trip: %w", err)
	}
	if trip.Status != models.TripStatusRequested {
		return nil, nil, fmt.Errorf("%w: %s -> %s", trips.ErrInvalidTransition, trip.Status, models.TripStatusAccepted)
	}

	now := time.Now()

	acceptQuery := `UPDATE offers SET status = $1, updated_at = $2 WHERE id = $3`
	if _, err := tx.ExecContext(ctx, acceptQuery, models.OfferStatusAccepted, now, offer.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to accept offer: %w", err)
	}

	mootQuery := `
		UPDATE offers SET status = $1, updated_at = $2
		WHERE trip_id = $3 AND id <> $4 AND status = ANY($5)
	`
	if _, err := tx.ExecContext(ctx, mootQuery,
		models.OfferStatusMoot, now, offer.TripID, offer.ID,
		pq.Array([]string{string(models.OfferStatusPending)})); err != nil {
		return nil, nil, fmt.Errorf("failed to moot sibling offers: %w", err)
	}

	assignQuery := `
		UPDATE trips SET driver_id = $1, price = $2, status = $3, updated_at = $4
		WHERE id = $5
	`
	if _, err := tx.ExecContext(ctx, assignQuery,
		offer.DriverID, offer.Price, models.TripStatusAccepted, now, offer.TripID); err != nil {
		return nil, nil, fmt.Errorf("failed to assign driver to trip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit match transaction: %w", err)
	}

	offer.Status = models.OfferStatusAccepted
	offer.UpdatedAt = now

	driverID := offer.DriverID
	trip.DriverID = &driverID
	trip.Price = offer.Price
	trip.Status = models.TripStatusAccepted
	trip.UpdatedAt = now

	return &offer, trip.ToTrip(), nil
}

// AddIgnoredTrip stores an ignore entry in the driver's hash. The key TTL is
// refreshed as a backstop; staleness is decided per entry on read.
func (r *MatchRepo) AddIgnoredTrip(ctx context.Context, driverID string, entry models.IgnoredTrip) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ignored trip: %w", err)
	}

	key := fmt.Sprintf(constants.KeyIgnoredTrips, driverID)
	if err := r.redis.HSet(ctx, key, entry.TripID, string(data)); err != nil {
		return fmt.Errorf("failed to store ignored trip: %w", err)
	}

	ttl := time.Duration(r.cfg.Match.IgnoreTTLSec) * time.Second
	if err := r.redis.Expire(ctx, key, ttl); err != nil {
		return fmt.Errorf("failed to set ignored trips TTL: %w", err)
	}

	return nil
}

// IsTripIgnored reports whether the driver ignored this trip at this price
// within the ignore TTL. A price change or an expired entry both mean the
// trip surfaces again.
func (r *MatchRepo) IsTripIgnored(ctx context.Context, driverID, tripID string, price float64) (bool, error) {
	key := fmt.Sprintf(constants.KeyIgnoredTrips, driverID)

	raw, err := r.redis.HGet(ctx, key, tripID)
	if err != nil {
		if isRedisNil(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read ignored trip: %w", err)
	}

	var entry models.IgnoredTrip
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return false, fmt.Errorf("failed to unmarshal ignored trip: %w", err)
	}

	ttl := time.Duration(r.cfg.Match.IgnoreTTLSec) * time.Second
	if entry.Price != price || time.Since(entry.IgnoredAt) >= ttl {
		// Stale entry, drop it so the hash does not accumulate dead trips.
		_ = r.redis.HDel(ctx, key, tripID)
		return false, nil
	}

	return true, nil
}

// GetDriverPresence reads the presence record the location service maintains
func (r *MatchRepo) GetDriverPresence(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	raw, err := r.redis.Get(ctx, key)
	if err != nil {
		if isRedisNil(err) {
			return &models.DriverPresence{DriverID: driverID, IsOnline: false}, nil
		}
		return nil, fmt.Errorf("failed to get driver presence: %w", err)
	}

	var presence models.DriverPresence
	if err := json.Unmarshal([]byte(raw), &presence); err != nil {
		return nil, fmt.Errorf("failed to unmarshal driver presence: %w", err)
	}

	return &presence, nil
}
