package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/database"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/location"
)

// LocationRepo stores driver presence and positions in Redis
type LocationRepo struct {
	redis *database.RedisClient
}

// NewLocationRepo creates a new location repository instance
func NewLocationRepo(redisClient *database.RedisClient) location.LocationRepo {
	return &LocationRepo{redis: redisClient}
}

func isRedisNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// SavePresence stores the driver's presence record and marks them available
func (r *LocationRepo) SavePresence(ctx context.Context, presence *models.DriverPresence) error {
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("failed to marshal presence: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDriverPresence, presence.DriverID)
	if err := r.redis.Set(ctx, key, data, 0); err != nil {
		return fmt.Errorf("failed to save presence: %w", err)
	}

	if err := r.redis.SAdd(ctx, constants.KeyAvailableDrivers, presence.DriverID); err != nil {
		return fmt.Errorf("failed to add driver to available set: %w", err)
	}
	return nil
}

// GetPresence returns the driver's presence. A missing record means offline.
func (r *LocationRepo) GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if isRedisNil(err) {
			return &models.DriverPresence{DriverID: driverID, IsOnline: false}, nil
		}
		return nil, fmt.Errorf("failed to get presence: %w", err)
	}

	var presence models.DriverPresence
	if err := json.Unmarshal([]byte(data), &presence); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presence: %w", err)
	}
	return &presence, nil
}

// DeletePresence clears the presence record and the available marker
func (r *LocationRepo) DeletePresence(ctx context.Context, driverID string) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete presence: %w", err)
	}

	if err := r.redis.SRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from available set: %w", err)
	}
	return nil
}

// UpdateDriverLocation writes the sample into the shared geo set and the
// driver's own location hash.
func (r *LocationRepo) UpdateDriverLocation(ctx context.Context, driverID string, loc models.Location) error {
	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to update driver geo position: %w", err)
	}

	ts := loc.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	fields := map[string]interface{}{
		constants.FieldLatitude:  loc.Latitude,
		constants.FieldLongitude: loc.Longitude,
		constants.FieldTimestamp: ts.Format(time.RFC3339Nano),
	}
	if loc.Heading != nil {
		fields[constants.FieldHeading] = *loc.Heading
	}

	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	if err := r.redis.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to update driver location hash: %w", err)
	}
	return nil
}

// RemoveDriverLocation drops the driver from the geo set and deletes the hash
func (r *LocationRepo) RemoveDriverLocation(ctx context.Context, driverID string) error {
	if err := r.redis.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver geo position: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete driver location hash: %w", err)
	}
	return nil
}
