package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/pkg/observability"
	"github.com/ridepulse/ridepulse/services/location"
)

// GoOnline runs the balance gate, registers presence, and starts an idle
// watch. Calling it while already online re-runs the gate, so toggling the
// switch cannot dodge a debt block.
func (uc *LocationUC) GoOnline(ctx context.Context, driverID, vehicleType string, loc models.Location) (*models.GateDecision, error) {
	decision, err := uc.gate.CheckDriverAdmission(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to check driver admission: %w", err)
	}
	if !decision.Allowed {
		logger.Info("Driver blocked from going online",
			logger.String("driver_id", driverID),
			logger.Float64("balance", decision.Balance.Amount))
		return decision, location.ErrAdmissionBlocked
	}

	presence := &models.DriverPresence{
		DriverID:    driverID,
		IsOnline:    true,
		VehicleType: vehicleType,
		Location:    loc,
		Mode:        models.TrackingModeIdle,
		OnlineAt:    time.Now(),
	}
	if err := uc.repo.SavePresence(ctx, presence); err != nil {
		return decision, fmt.Errorf("failed to save presence: %w", err)
	}
	if err := uc.repo.UpdateDriverLocation(ctx, driverID, loc); err != nil {
		return decision, fmt.Errorf("failed to store initial location: %w", err)
	}

	if err := uc.switchWatch(ctx, driverID, models.TrackingModeIdle, true); err != nil {
		return decision, err
	}

	logger.Info("Driver online",
		logger.String("driver_id", driverID),
		logger.String("vehicle_type", vehicleType))
	return decision, nil
}

// GoOffline stops the watch and clears presence and position state
func (uc *LocationUC) GoOffline(ctx context.Context, driverID string) error {
	uc.mu.Lock()
	if cur, ok := uc.watches[driverID]; ok {
		cur.handle.Stop()
		delete(uc.watches, driverID)
	}
	uc.mu.Unlock()

	if err := uc.repo.DeletePresence(ctx, driverID); err != nil {
		return fmt.Errorf("failed to delete presence: %w", err)
	}
	if err := uc.repo.RemoveDriverLocation(ctx, driverID); err != nil {
		return fmt.Errorf("failed to remove driver location: %w", err)
	}

	logger.Info("Driver offline", logger.String("driver_id", driverID))
	return nil
}

// SetTrackingMode retunes the driver's watch to the mode's sampling profile.
// Same-mode calls are no-ops; a driver with no watch is not online.
func (uc *LocationUC) SetTrackingMode(ctx context.Context, driverID string, mode models.TrackingMode) error {
	return uc.switchWatch(ctx, driverID, mode, false)
}

// IngestLocation feeds a raw device sample into the provider. The active
// watch decides whether it passes the profile's filters.
func (uc *LocationUC) IngestLocation(ctx context.Context, update *models.LocationUpdate) error {
	if update.DriverID == "" {
		return fmt.Errorf("location update missing driver id")
	}

	loc := models.Location{
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Heading:   update.Heading,
		Timestamp: update.Timestamp,
	}
	uc.provider.Offer(update.DriverID, loc)
	return nil
}

// switchWatch replaces the driver's watch with one tuned to mode. The old
// handle is always stopped before the new watch is created, so there is
// never more than one subscription per driver.
func (uc *LocationUC) switchWatch(ctx context.Context, driverID string, mode models.TrackingMode, create bool) error {
	uc.mu.Lock()
	cur, ok := uc.watches[driverID]
	if !ok && !create {
		uc.mu.Unlock()
		return fmt.Errorf("driver %s has no active watch", driverID)
	}
	if ok && cur.mode == mode {
		uc.mu.Unlock()
		return nil
	}
	if ok {
		cur.handle.Stop()
		delete(uc.watches, driverID)
	}

	handle, err := uc.provider.Watch(driverID, uc.profileFor(mode), func(loc models.Location) {
		uc.handleSample(driverID, loc)
	})
	if err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("failed to start %s watch: %w", mode, err)
	}
	uc.watches[driverID] = driverWatch{mode: mode, handle: handle}
	uc.mu.Unlock()

	observability.TrackingModeSwitches.WithLabelValues(string(mode)).Inc()
	logger.Info("Tracking mode switched",
		logger.String("driver_id", driverID),
		logger.String("mode", string(mode)))

	// Presence mirrors the mode for observability. Storage failure does not
	// undo the switch; the watch is the source of truth.
	presence, err := uc.repo.GetPresence(ctx, driverID)
	if err == nil && presence.IsOnline {
		presence.Mode = mode
		if err := uc.repo.SavePresence(ctx, presence); err != nil {
			logger.Warn("Failed to persist tracking mode",
				logger.String("driver_id", driverID), logger.Err(err))
		}
	} else if err != nil {
		logger.Warn("Failed to load presence for mode update",
			logger.String("driver_id", driverID), logger.Err(err))
	}
	return nil
}

// profileFor maps a tracking mode to its configured sampling parameters
func (uc *LocationUC) profileFor(mode models.TrackingMode) models.TrackingProfile {
	t := uc.cfg.Tracking
	switch mode {
	case models.TrackingModeActive:
		return models.TrackingProfile{
			Accuracy:       "high",
			Interval:       time.Duration(t.ActiveIntervalSec) * time.Second,
			DistanceFilter: t.ActiveDistanceM,
		}
	case models.TrackingModeNearDestination:
		return models.TrackingProfile{
			Accuracy:       "balanced",
			Interval:       time.Duration(t.NearIntervalSec) * time.Second,
			DistanceFilter: t.NearDistanceM,
		}
	default:
		return models.TrackingProfile{
			Accuracy:       "low",
			Interval:       time.Duration(t.IdleIntervalSec) * time.Second,
			DistanceFilter: t.IdleDistanceM,
		}
	}
}

// handleSample stores and publishes a sample that passed the watch filters
func (uc *LocationUC) handleSample(driverID string, loc models.Location) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(uc.cfg.Dispatch.RequestTimeoutSec)*time.Second)
	defer cancel()

	if err := uc.repo.UpdateDriverLocation(ctx, driverID, loc); err != nil {
		logger.Warn("Failed to store driver location",
			logger.String("driver_id", driverID), logger.Err(err))
	}

	update := &models.LocationUpdate{
		DriverID:  driverID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Heading:   loc.Heading,
		Timestamp: loc.Timestamp,
	}
	if err := uc.gw.PublishLocation(ctx, update); err != nil {
		logger.Warn("Failed to publish driver location",
			logger.String("driver_id", driverID), logger.Err(err))
	}
}
