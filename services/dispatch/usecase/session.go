package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	httppkg "github.com/ridepulse/ridepulse/internal/pkg/http"
	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/pkg/observability"
	"github.com/ridepulse/ridepulse/internal/pkg/scheduler"
	"github.com/ridepulse/ridepulse/services/dispatch"
)

// OfferPrompt is a pending incoming-trip prompt with its auto-decline timer
type OfferPrompt struct {
	Trip    *models.Trip
	ShownAt time.Time
	timer   *scheduler.Handle
}

// session messages, all handled on the loop goroutine
type (
	pushMsg struct {
		event models.RealtimeEvent
	}
	presentMsg struct {
		trip *models.Trip
	}
	pollMsg struct{}
	promptTimeoutMsg struct {
		tripID string
	}
	promptResponseMsg struct {
		tripID string
		accept bool
		reply  chan error
	}
	currentTripMsg struct {
		reply chan *models.Trip
	}
)

// Session is one driver's reconciliation loop. All state lives behind a
// single goroutine; producers (NATS handlers, the poll ticker, the prompt
// timer, HTTP handlers) only post messages into the events channel.
type Session struct {
	cfg      *models.Config
	driverID string

	gw      dispatch.DispatchGW
	offers  dispatch.OfferService
	tracker dispatch.TrackingController

	state  *SessionState
	events chan interface{}
	sched  *scheduler.Scheduler
	done   chan struct{}
}

func newSession(cfg *models.Config, driverID string, gw dispatch.DispatchGW, offers dispatch.OfferService, tracker dispatch.TrackingController) *Session {
	return &Session{
		cfg:      cfg,
		driverID: driverID,
		gw:       gw,
		offers:   offers,
		tracker:  tracker,
		state:    NewSessionState(driverID),
		events:   make(chan interface{}, 64),
		sched:    scheduler.New(),
		done:     make(chan struct{}),
	}
}

func (s *Session) start() {
	interval := time.Duration(s.cfg.Dispatch.PollIntervalSec) * time.Second
	s.sched.Every(interval, func() {
		s.post(pollMsg{})
	})
	go s.run()
}

func (s *Session) stop() {
	s.sched.Close()
	close(s.done)
}

// post delivers a message without ever blocking a producer. A full queue
// means the poller will re-derive whatever was dropped.
func (s *Session) post(msg interface{}) {
	select {
	case s.events <- msg:
	case <-s.done:
	default:
		logger.Warn("Session event queue full, dropping message",
			logger.String("driver_id", s.driverID))
	}
}

func (s *Session) run() {
	for {
		select {
		case <-s.done:
			s.teardown()
			return
		case msg := <-s.events:
			s.handle(msg)
		}
	}
}

func (s *Session) handle(msg interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Dispatch.RequestTimeoutSec)*time.Second)
	defer cancel()

	switch m := msg.(type) {
	case pushMsg:
		s.handlePush(ctx, m.event)
	case presentMsg:
		s.handlePresent(ctx, m.trip)
	case pollMsg:
		s.handlePoll(ctx)
	case promptTimeoutMsg:
		s.handlePromptTimeout(ctx, m.tripID)
	case promptResponseMsg:
		m.reply <- s.handlePromptResponse(ctx, m.tripID, m.accept)
	case currentTripMsg:
		m.reply <- s.snapshotCurrent()
	}
}

func (s *Session) handlePush(ctx context.Context, event models.RealtimeEvent) {
	switch {
	case event.Offer != nil:
		if event.Offer.Event != models.EventTripAccepted {
			logger.Warn("Unknown offer event, ignoring",
				logger.String("driver_id", s.driverID),
				logger.String("event", event.Offer.Event))
			observability.EventsApplied.WithLabelValues("push", "ignored").Inc()
			return
		}
		trip := event.Offer.Trip
		s.applySnapshot(ctx, "push", &trip, models.TripStatusAccepted)

	case event.Status != nil:
		s.handleStatusEvent(ctx, "push", event.Status)

	case event.Location != nil:
		s.mirrorLocation(event.Location)
	}
}

// mirrorLocation relays the monitored trip's driver position to its rider.
// The driver's own session has nothing to reconcile from position samples;
// samples belonging to other trips are not ours to forward.
func (s *Session) mirrorLocation(update *models.LocationUpdate) {
	trip := s.state.Current
	if trip == nil || trip.DriverID == nil || trip.DriverID.String() != update.DriverID {
		return
	}
	s.notifyRider(trip.CustomerID.String(), constants.EventDriverLocation, update)
}

func (s *Session) handleStatusEvent(ctx context.Context, channel string, ev *models.StatusEvent) {
	// A status change for the prompt's trip means someone else got it.
	if s.state.Prompt != nil && s.state.Prompt.Trip.ID.String() == ev.TripID {
		if ev.Status != models.TripStatusRequested {
			s.retractPrompt("Trip is no longer available")
		}
		return
	}

	if s.state.Current == nil || s.state.Current.ID.String() != ev.TripID {
		observability.EventsApplied.WithLabelValues(channel, "ignored").Inc()
		return
	}

	trip := *s.state.Current
	trip.Status = ev.Status
	s.applySnapshot(ctx, channel, &trip, ev.Status)
}

// applySnapshot runs the reducer and then executes whatever effects the
// outcome calls for.
func (s *Session) applySnapshot(ctx context.Context, channel string, trip *models.Trip, status models.TripStatus) {
	out := ApplyTripSnapshot(s.state, trip, status)

	switch {
	case out.UnknownStatus:
		logger.Warn("Unknown trip status, ignoring",
			logger.String("driver_id", s.driverID),
			logger.String("trip_id", trip.ID.String()),
			logger.String("status", string(status)))
		observability.EventsApplied.WithLabelValues(channel, "ignored").Inc()
		return
	case !out.Applied:
		observability.EventsApplied.WithLabelValues(channel, "stale").Inc()
		return
	}
	observability.EventsApplied.WithLabelValues(channel, "applied").Inc()

	if out.AcceptedNow {
		if s.state.Prompt != nil && s.state.Prompt.Trip.ID == trip.ID {
			s.clearPrompt()
		}
		s.notify(constants.EventTripAccepted, trip)
	}

	if out.Mode != nil {
		if err := s.tracker.SetTrackingMode(ctx, s.driverID, *out.Mode); err != nil {
			logger.Warn("Failed to switch tracking mode",
				logger.String("driver_id", s.driverID),
				logger.String("mode", string(*out.Mode)),
				logger.Err(err))
		}
	}

	if out.NavigateNow {
		s.notify(constants.EventNavigate, trip)
	}

	statusEvent := models.StatusEvent{
		TripID:    trip.ID.String(),
		Status:    status,
		Timestamp: time.Now(),
	}
	s.notify(constants.EventTripStatus, statusEvent)
	s.notifyRider(trip.CustomerID.String(), constants.EventTripStatus, statusEvent)

	if out.CleanupNow {
		notice := "Trip completed"
		if status == models.TripStatusCancelled {
			notice = "Trip cancelled"
		}
		s.notify(constants.EventNotice, notice)
	}
}

func (s *Session) handlePresent(ctx context.Context, trip *models.Trip) {
	if s.state.Current != nil || s.state.Prompt != nil {
		return
	}

	eligible, err := s.offers.EligibleTrip(ctx, s.driverID, trip)
	if err != nil {
		logger.Warn("Failed to vet pushed trip",
			logger.String("driver_id", s.driverID),
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
		return
	}
	if !eligible {
		return
	}

	prompt := &OfferPrompt{Trip: trip, ShownAt: time.Now()}
	tripID := trip.ID.String()
	timeout := time.Duration(s.cfg.Match.OfferPromptTimeoutSec) * time.Second
	prompt.timer = s.sched.After(timeout, func() {
		s.post(promptTimeoutMsg{tripID: tripID})
	})
	s.state.Prompt = prompt

	s.notify(constants.EventOfferPrompt, trip)
}

func (s *Session) handlePromptTimeout(ctx context.Context, tripID string) {
	if s.state.Prompt == nil || s.state.Prompt.Trip.ID.String() != tripID {
		return
	}

	// Auto-decline is identical to the driver declining by hand.
	price := s.state.Prompt.Trip.Price
	if err := s.offers.IgnoreTrip(ctx, s.driverID, tripID, price); err != nil {
		logger.Warn("Failed to ignore trip on prompt timeout",
			logger.String("driver_id", s.driverID),
			logger.String("trip_id", tripID),
			logger.Err(err))
	}
	s.retractPrompt("Offer expired")
}

func (s *Session) handlePromptResponse(ctx context.Context, tripID string, accept bool) error {
	if s.state.Prompt == nil || s.state.Prompt.Trip.ID.String() != tripID {
		return fmt.Errorf("no pending prompt for trip %s", tripID)
	}
	trip := s.state.Prompt.Trip

	if !accept {
		if err := s.offers.IgnoreTrip(ctx, s.driverID, tripID, trip.Price); err != nil {
			return err
		}
		s.clearPrompt()
		return nil
	}

	// SubmitOffer records the ignore entry itself, so the trip stays out of
	// the feed while the rider decides.
	_, err := s.offers.SubmitOffer(ctx, &models.OfferRequest{
		TripID:   tripID,
		DriverID: s.driverID,
		Price:    trip.Price,
	})
	if err != nil {
		return err
	}
	s.clearPrompt()
	return nil
}

func (s *Session) handlePoll(ctx context.Context) {
	outcome := "ok"

	if s.state.Prompt != nil {
		s.reconcilePrompt(ctx)
	}

	trip, err := s.gw.FetchActiveTrip(ctx, s.driverID)
	switch {
	case err == nil:
		s.applySnapshot(ctx, "poll", trip, trip.Status)
	case httppkg.IsGone(err):
		// Authoritative: no active trip. If the session still holds one, it
		// ended while we were not listening.
		if s.state.Current != nil {
			s.cleanupGoneTrip(ctx)
		}
	default:
		// Transient failure, state stays as-is until the next tick.
		logger.Debug("Active trip poll failed",
			logger.String("driver_id", s.driverID),
			logger.Err(err))
		outcome = "error"
	}

	// An idle driver re-derives the requested feed, so a trip whose
	// broadcast was lost still gets presented within one poll interval.
	if s.state.Current == nil && s.state.Prompt == nil {
		requested, err := s.gw.FetchRequestedTrips(ctx)
		if err != nil {
			logger.Debug("Requested trips poll failed",
				logger.String("driver_id", s.driverID),
				logger.Err(err))
			outcome = "error"
		}
		for _, open := range requested {
			s.handlePresent(ctx, open)
			if s.state.Prompt != nil {
				break
			}
		}
	}

	observability.PollCyclesTotal.WithLabelValues(outcome).Inc()
}

// reconcilePrompt re-fetches the prompt's trip. Only a confirmed gone or
// non-requested status retracts the prompt; transient errors keep it alive.
func (s *Session) reconcilePrompt(ctx context.Context) {
	prompt := s.state.Prompt
	trip, err := s.gw.FetchTrip(ctx, prompt.Trip.ID.String())
	if err != nil {
		if httppkg.IsGone(err) {
			s.retractPrompt("Trip is no longer available")
		}
		return
	}

	if trip.Status != models.TripStatusRequested {
		s.retractPrompt("Trip is no longer available")
		return
	}

	if trip.Price != prompt.Trip.Price {
		// Repriced while shown: refresh the prompt so the driver responds to
		// the real price.
		prompt.Trip = trip
		s.notify(constants.EventOfferPrompt, trip)
	}
}

func (s *Session) cleanupGoneTrip(ctx context.Context) {
	trip := s.state.Current
	s.state.lastStatus[trip.ID.String()] = models.TripStatusCancelled
	s.state.Current = nil
	delete(s.state.navigated, trip.ID.String())

	if err := s.tracker.SetTrackingMode(ctx, s.driverID, models.TrackingModeIdle); err != nil {
		logger.Warn("Failed to reset tracking mode",
			logger.String("driver_id", s.driverID),
			logger.Err(err))
	}
	s.notify(constants.EventNotice, "Trip is no longer active")
}

func (s *Session) retractPrompt(reason string) {
	if s.state.Prompt == nil {
		return
	}
	tripID := s.state.Prompt.Trip.ID.String()
	s.clearPrompt()
	s.notify(constants.EventOfferRetracted, map[string]string{
		"trip_id": tripID,
		"reason":  reason,
	})
}

func (s *Session) clearPrompt() {
	if s.state.Prompt == nil {
		return
	}
	if s.state.Prompt.timer != nil {
		s.state.Prompt.timer.Stop()
	}
	s.state.Prompt = nil
}

// snapshotCurrent copies the monitored trip so readers never share loop state
func (s *Session) snapshotCurrent() *models.Trip {
	if s.state.Current == nil {
		return nil
	}
	trip := *s.state.Current
	return &trip
}

func (s *Session) notify(event string, payload interface{}) {
	if err := s.gw.Notify(s.driverID, event, payload); err != nil {
		logger.Debug("Failed to notify driver client",
			logger.String("driver_id", s.driverID),
			logger.String("event", event),
			logger.Err(err))
	}
}

// notifyRider delivers an event to the rider's connected client. Riders hold
// no session, so their realtime view is fed from the driver side of the match.
func (s *Session) notifyRider(riderID, event string, payload interface{}) {
	if err := s.gw.Notify(riderID, event, payload); err != nil {
		logger.Debug("Failed to notify rider client",
			logger.String("rider_id", riderID),
			logger.String("event", event),
			logger.Err(err))
	}
}

func (s *Session) teardown() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Dispatch.RequestTimeoutSec)*time.Second)
	defer cancel()

	s.clearPrompt()
	if err := s.tracker.SetTrackingMode(ctx, s.driverID, models.TrackingModeIdle); err != nil {
		logger.Debug("Failed to reset tracking mode on teardown",
			logger.String("driver_id", s.driverID),
			logger.Err(err))
	}
}
