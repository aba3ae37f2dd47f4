package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/pkg/observability"
	"github.com/ridepulse/ridepulse/services/dispatch"
)

// DispatchUC owns one reconciliation session per online driver
type DispatchUC struct {
	cfg     *models.Config
	gw      dispatch.DispatchGW
	offers  dispatch.OfferService
	tracker dispatch.TrackingController

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewDispatchUC creates a new dispatch usecase
func NewDispatchUC(cfg *models.Config, gw dispatch.DispatchGW, offers dispatch.OfferService, tracker dispatch.TrackingController) *DispatchUC {
	return &DispatchUC{
		cfg:      cfg,
		gw:       gw,
		offers:   offers,
		tracker:  tracker,
		sessions: make(map[string]*Session),
	}
}

// StartSession begins reconciliation for a driver. Idempotent: a second
// start while the session is running is a no-op.
func (uc *DispatchUC) StartSession(ctx context.Context, driverID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, running := uc.sessions[driverID]; running {
		return nil
	}

	session := newSession(uc.cfg, driverID, uc.gw, uc.offers, uc.tracker)
	uc.sessions[driverID] = session
	session.start()
	observability.DriversOnline.Inc()

	logger.Info("Driver session started", logger.String("driver_id", driverID))
	return nil
}

// StopSession tears the driver's session down
func (uc *DispatchUC) StopSession(driverID string) error {
	uc.mu.Lock()
	session, running := uc.sessions[driverID]
	if running {
		delete(uc.sessions, driverID)
	}
	uc.mu.Unlock()

	if !running {
		return fmt.Errorf("no session for driver %s", driverID)
	}

	session.stop()
	observability.DriversOnline.Dec()
	logger.Info("Driver session stopped", logger.String("driver_id", driverID))
	return nil
}

// PushEvent feeds a realtime event into the driver's session
func (uc *DispatchUC) PushEvent(driverID string, event models.RealtimeEvent) {
	uc.mu.RLock()
	session, running := uc.sessions[driverID]
	uc.mu.RUnlock()
	if !running {
		return
	}
	session.post(pushMsg{event: event})
}

// PresentTrip offers a requested trip to the driver's session
func (uc *DispatchUC) PresentTrip(driverID string, trip *models.Trip) {
	uc.mu.RLock()
	session, running := uc.sessions[driverID]
	uc.mu.RUnlock()
	if !running {
		return
	}
	session.post(presentMsg{trip: trip})
}

// BroadcastTrip presents a requested trip to every running session. Each
// session vets eligibility itself, so ineligible drivers see nothing.
func (uc *DispatchUC) BroadcastTrip(trip *models.Trip) {
	uc.mu.RLock()
	sessions := make([]*Session, 0, len(uc.sessions))
	for _, s := range uc.sessions {
		sessions = append(sessions, s)
	}
	uc.mu.RUnlock()

	for _, s := range sessions {
		s.post(presentMsg{trip: trip})
	}
}

// BroadcastEvent feeds a realtime event to every running session
func (uc *DispatchUC) BroadcastEvent(event models.RealtimeEvent) {
	uc.mu.RLock()
	sessions := make([]*Session, 0, len(uc.sessions))
	for _, s := range uc.sessions {
		sessions = append(sessions, s)
	}
	uc.mu.RUnlock()

	for _, s := range sessions {
		s.post(pushMsg{event: event})
	}
}

// CurrentTrip returns a copy of the trip the driver's session is monitoring,
// if any. Used by safety escalation to resolve "the trip I am on" without
// a network round-trip.
func (uc *DispatchUC) CurrentTrip(ctx context.Context, driverID string) (*models.Trip, bool) {
	uc.mu.RLock()
	session, running := uc.sessions[driverID]
	uc.mu.RUnlock()
	if !running {
		return nil, false
	}

	reply := make(chan *models.Trip, 1)
	session.post(currentTripMsg{reply: reply})

	select {
	case trip := <-reply:
		return trip, trip != nil
	case <-ctx.Done():
		return nil, false
	case <-session.done:
		return nil, false
	}
}

// RespondToPrompt resolves the pending prompt on the session's own goroutine
func (uc *DispatchUC) RespondToPrompt(ctx context.Context, driverID, tripID string, accept bool) error {
	uc.mu.RLock()
	session, running := uc.sessions[driverID]
	uc.mu.RUnlock()
	if !running {
		return fmt.Errorf("no session for driver %s", driverID)
	}

	reply := make(chan error, 1)
	session.post(promptResponseMsg{tripID: tripID, accept: accept, reply: reply})

	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-session.done:
		return fmt.Errorf("session for driver %s closed", driverID)
	}
}
