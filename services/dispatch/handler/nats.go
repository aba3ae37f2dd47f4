package handler

import (
	"encoding/json"
	"fmt"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	natspkg "github.com/ridepulse/ridepulse/internal/pkg/nats"
	"github.com/ridepulse/ridepulse/services/dispatch"
)

// NATSHandler bridges realtime subjects into driver sessions
type NATSHandler struct {
	dispatchUC dispatch.DispatchUC
	consumer   *natspkg.Consumer
}

// NewNATSHandler creates a new dispatch NATS handler
func NewNATSHandler(dispatchUC dispatch.DispatchUC, client *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		dispatchUC: dispatchUC,
		consumer:   natspkg.NewConsumer(client),
	}
}

// InitConsumers subscribes to every subject the sessions reconcile from
func (h *NATSHandler) InitConsumers() error {
	if err := h.consumer.Subscribe(constants.SubjectTripRequested, h.handleTripBroadcast); err != nil {
		return err
	}
	if err := h.consumer.Subscribe(constants.SubjectTripRepriced, h.handleTripBroadcast); err != nil {
		return err
	}
	if err := h.consumer.Subscribe(constants.SubjectTripStatusAll, h.handleTripStatus); err != nil {
		return err
	}
	if err := h.consumer.Subscribe(constants.SubjectOfferAcceptedAll, h.handleOfferAccepted); err != nil {
		return err
	}
	if err := h.consumer.Subscribe(constants.SubjectDriverLocationAll, h.handleDriverLocation); err != nil {
		return err
	}
	return nil
}

// Stop unsubscribes all consumers
func (h *NATSHandler) Stop() {
	h.consumer.Stop()
}

// handleTripBroadcast presents new and repriced trips to every session.
// Repricing invalidates stale ignored-cache entries, so a repriced trip is
// re-vetted exactly like a fresh one.
func (h *NATSHandler) handleTripBroadcast(data []byte) error {
	var trip models.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return fmt.Errorf("invalid trip payload: %w", err)
	}
	h.dispatchUC.BroadcastTrip(&trip)
	return nil
}

func (h *NATSHandler) handleTripStatus(data []byte) error {
	event, err := models.DecodeStatusEvent(data)
	if err != nil {
		return err
	}
	h.dispatchUC.BroadcastEvent(models.RealtimeEvent{Status: event})
	return nil
}

// handleDriverLocation feeds position samples through the same reducer as
// every other realtime event. Driver sessions ignore them, so the branch
// only matters to sessions that mirror a counterpart's position.
func (h *NATSHandler) handleDriverLocation(data []byte) error {
	update, err := models.DecodeLocationUpdate(data)
	if err != nil {
		return err
	}
	h.dispatchUC.BroadcastEvent(models.RealtimeEvent{Location: update})
	return nil
}

func (h *NATSHandler) handleOfferAccepted(data []byte) error {
	event, err := models.DecodeOfferEvent(data)
	if err != nil {
		return err
	}
	if event.Trip.DriverID == nil {
		return fmt.Errorf("offer accepted event without driver id")
	}
	h.dispatchUC.PushEvent(event.Trip.DriverID.String(), models.RealtimeEvent{Offer: event})
	return nil
}
