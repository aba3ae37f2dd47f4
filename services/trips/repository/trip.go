package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/trips"
)

const tripColumns = `
	id, customer_id, driver_id,
	pickup_latitude, pickup_longitude, pickup_address,
	destination_latitude, destination_longitude, destination_address,
	price, distance_km, duration_sec,
	payment_method, promo_code, car_type,
	status, is_travel_request,
	created_at, updated_at
`

// TripRepo implements the trip repository interface on PostgreSQL
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	dto := trip.ToDTO()

	query := `
		INSERT INTO trips (
			id, customer_id, driver_id,
			pickup_latitude, pickup_longitude, pickup_address,
			destination_latitude, destination_longitude, destination_address,
			price, distance_km, duration_sec,
			payment_method, promo_code, car_type,
			status, is_travel_request,
			created_at, updated_at
		) VALUES (
			:id, :customer_id, :driver_id,
			:pickup_latitude, :pickup_longitude, :pickup_address,
			:destination_latitude, :destination_longitude, :destination_address,
			:price, :distance_km, :duration_sec,
			:payment_method, :promo_code, :car_type,
			:status, :is_travel_request,
			:created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, dto); err != nil {
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}

	return trip, nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	var dto models.TripDTO
	err := r.db.GetContext(ctx, &dto, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return dto.ToTrip(), nil
}

// GetActiveTripByCustomer returns the customer's latest non-terminal trip
func (r *TripRepo) GetActiveTripByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Trip, error) {
	return r.getActiveTrip(ctx, "customer_id", customerID)
}

// GetActiveTripByDriver returns the driver's latest non-terminal trip
func (r *TripRepo) GetActiveTripByDriver(ctx context.Context, driverID uuid.UUID) (*models.Trip, error) {
	return r.getActiveTrip(ctx, "driver_id", driverID)
}

func (r *TripRepo) getActiveTrip(ctx context.Context, column string, userID uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE ` + column + ` = $1 AND status NOT IN ('completed', 'cancelled')
		ORDER BY created_at DESC
		LIMIT 1
	`

	var dto models.TripDTO
	err := r.db.GetContext(ctx, &dto, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get active trip: %w", err)
	}

	return dto.ToTrip(), nil
}

// ListRequested returns all trips currently open for offers
func (r *TripRepo) ListRequested(ctx context.Context) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE status = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryxContext(ctx, query, models.TripStatusRequested)
	if err != nil {
		return nil, fmt.Errorf("failed to list requested trips: %w", err)
	}
	defer rows.Close()

	var result []*models.Trip
	for rows.Next() {
		var dto models.TripDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		result = append(result, dto.ToTrip())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	return result, nil
}

// UpdateStatus updates a trip status with the forward-only guard applied
// under a row lock, so concurrent updates cannot regress the lifecycle.
func (r *TripRepo) UpdateStatus(ctx context.Context, tripID uuid.UUID, status models.TripStatus) (*models.Trip, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 FOR UPDATE`

	var dto models.TripDTO
	if err := tx.GetContext(ctx, &dto, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	if !dto.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", trips.ErrInvalidTransition, dto.Status, status)
	}

	now := time.Now()
	updateQuery := `UPDATE trips SET status = $1, updated_at = $2 WHERE id = $3`
	if _, err := tx.ExecContext(ctx, updateQuery, status, now, tripID); err != nil {
		return nil, fmt.Errorf("failed to update trip status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	dto.Status = status
	dto.UpdatedAt = now
	return dto.ToTrip(), nil
}

// UpdatePrice changes the listed price of a requested trip
func (r *TripRepo) UpdatePrice(ctx context.Context, tripID uuid.UUID, price float64) (*models.Trip, error) {
	query := `
		UPDATE trips SET price = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, price, time.Now(), tripID, models.TripStatusRequested)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip price: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, trips.ErrTripNotFound
	}

	return r.GetTrip(ctx, tripID)
}
