package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Realtime event names carried on the offer-update channel
const (
	EventTripAccepted = "TRIP_ACCEPTED"
)

// StatusEvent is a trip status change delivered on trip.status.{trip_id}
type StatusEvent struct {
	TripID    string     `json:"trip_id"`
	Status    TripStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
}

// OfferEvent is delivered on the offer-update channel when a trip is matched
type OfferEvent struct {
	Event string `json:"event"`
	Trip  Trip   `json:"trip"`
}

// RealtimeEvent is the tagged union of all realtime channel payloads.
// Exactly one of the variant fields is non-nil after decoding.
type RealtimeEvent struct {
	Status   *StatusEvent
	Location *LocationUpdate
	Offer    *OfferEvent
}

// DecodeStatusEvent validates and narrows a raw trip.status payload
func DecodeStatusEvent(data []byte) (*StatusEvent, error) {
	var ev StatusEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("invalid status event payload: %w", err)
	}
	if ev.TripID == "" {
		return nil, fmt.Errorf("status event missing trip_id")
	}
	return &ev, nil
}

// DecodeLocationUpdate validates and narrows a raw driver.location payload
func DecodeLocationUpdate(data []byte) (*LocationUpdate, error) {
	var ev LocationUpdate
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("invalid location event payload: %w", err)
	}
	if ev.DriverID == "" {
		return nil, fmt.Errorf("location event missing driver_id")
	}
	return &ev, nil
}

// DecodeOfferEvent validates and narrows a raw offer-update payload
func DecodeOfferEvent(data []byte) (*OfferEvent, error) {
	var ev OfferEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("invalid offer event payload: %w", err)
	}
	if ev.Event == "" {
		return nil, fmt.Errorf("offer event missing event name")
	}
	return &ev, nil
}

// WSMessage is the envelope exchanged with connected mobile clients
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
