package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/pkg/observability"
	"github.com/ridepulse/ridepulse/services/sos"
)

// TriggerSOS sends a safety alert. The trip is resolved first so a hopeless
// escalation is rejected before any alert call goes out.
func (uc *SOSUC) TriggerSOS(ctx context.Context, userID, tripID, notes string) (*models.SOSAlert, error) {
	trip := uc.resolveTrip(ctx, userID, tripID)
	if trip == nil && tripID == "" {
		return nil, sos.ErrNoActiveTrip
	}

	loc := uc.captureLocation(ctx, userID)

	alert := &models.SOSAlert{
		TripID:    tripID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
	if trip != nil {
		alert.TripID = trip.ID.String()
		alert.Metadata.Snapshot = trip.Snapshot()
	}

	if err := uc.gw.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create SOS alert: %w", err)
	}
	observability.SOSAlertsTotal.Inc()

	if err := uc.gw.PublishSOSCreated(ctx, alert); err != nil {
		// The alert already reached the SOS service; the realtime announce is
		// best effort.
		logger.Warn("Failed to publish SOS alert",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	logger.Info("SOS alert sent",
		logger.String("user_id", userID),
		logger.String("trip_id", alert.TripID))
	return alert, nil
}

// resolveTrip walks the resolution chain: explicit id, then the locally
// monitored trip, then the active-trip API. With an explicit id a failed
// lookup still lets the alert go out carrying just the id.
func (uc *SOSUC) resolveTrip(ctx context.Context, userID, tripID string) *models.Trip {
	if tripID != "" {
		trip, err := uc.trips.FetchTrip(ctx, tripID)
		if err != nil {
			logger.Warn("Failed to fetch trip for SOS snapshot",
				logger.String("trip_id", tripID),
				logger.Err(err))
			return nil
		}
		return trip
	}

	if trip, ok := uc.monitor.CurrentTrip(ctx, userID); ok {
		return trip
	}

	trip, err := uc.trips.FetchActiveTrip(ctx, userID)
	if err != nil {
		return nil
	}
	return trip
}

// captureLocation attempts a bounded fresh fix with one retry, then falls
// back to the last known position. An alert with no coordinates at all still
// goes out; reaching operators beats precision.
func (uc *SOSUC) captureLocation(ctx context.Context, userID string) models.Location {
	timeout := time.Duration(uc.cfg.SOS.FixTimeoutSec) * time.Second

	for attempt := 1; attempt <= 2; attempt++ {
		fixCtx, cancel := context.WithTimeout(ctx, timeout)
		loc, err := uc.fixer.CurrentPosition(fixCtx, userID)
		cancel()
		if err == nil {
			return loc
		}
		logger.Warn("Location fix failed",
			logger.String("user_id", userID),
			logger.Int("attempt", attempt),
			logger.Err(err))
	}

	if loc, ok := uc.fixer.LastKnownPosition(userID); ok {
		return loc
	}

	logger.Warn("No location available for SOS alert",
		logger.String("user_id", userID))
	return models.Location{}
}
