package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusRequested TripStatus = "requested"
	TripStatusAccepted  TripStatus = "accepted"
	TripStatusArrived   TripStatus = "arrived"
	TripStatusStarted   TripStatus = "started"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// tripStatusRank orders the forward-only progression. Cancelled is handled
// separately because it is reachable from any non-terminal status.
var tripStatusRank = map[TripStatus]int{
	TripStatusRequested: 0,
	TripStatusAccepted:  1,
	TripStatusArrived:   2,
	TripStatusStarted:   3,
	TripStatusCompleted: 4,
}

// Known reports whether the status is one of the defined trip statuses
func (s TripStatus) Known() bool {
	if s == TripStatusCancelled {
		return true
	}
	_, ok := tripStatusRank[s]
	return ok
}

// Terminal reports whether the status ends the trip lifecycle
func (s TripStatus) Terminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// CanTransitionTo reports whether a transition from s to next is legal:
// statuses only move forward, and cancelled is reachable from any
// non-terminal status.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == TripStatusCancelled {
		return true
	}
	from, ok := tripStatusRank[s]
	if !ok {
		return false
	}
	to, ok := tripStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// TripPoint is a coordinate plus human-readable address
type TripPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Trip represents one ride from request to completion or cancellation
type Trip struct {
	ID         uuid.UUID  `json:"trip_id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty"`

	Pickup      TripPoint `json:"pickup"`
	Destination TripPoint `json:"destination"`

	Price         float64 `json:"price"`
	DistanceKm    float64 `json:"distance_km"`
	DurationSec   int     `json:"duration_sec"`
	PaymentMethod string  `json:"payment_method"`
	PromoCode     string  `json:"promo_code,omitempty"`
	CarType       string  `json:"car_type,omitempty"`

	Status TripStatus `json:"status"`

	// IsTravelRequest marks a scheduled/intercity trip that must not trigger
	// automatic navigation on status change.
	IsTravelRequest bool `json:"is_travel_request"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TripDTO is used for database operations to flatten the nested TripPoint structs
type TripDTO struct {
	ID                   uuid.UUID  `db:"id"`
	CustomerID           uuid.UUID  `db:"customer_id"`
	DriverID             *uuid.UUID `db:"driver_id"`
	PickupLatitude       float64    `db:"pickup_latitude"`
	PickupLongitude      float64    `db:"pickup_longitude"`
	PickupAddress        string     `db:"pickup_address"`
	DestinationLatitude  float64    `db:"destination_latitude"`
	DestinationLongitude float64    `db:"destination_longitude"`
	DestinationAddress   string     `db:"destination_address"`
	Price                float64    `db:"price"`
	DistanceKm           float64    `db:"distance_km"`
	DurationSec          int        `db:"duration_sec"`
	PaymentMethod        string     `db:"payment_method"`
	PromoCode            string     `db:"promo_code"`
	CarType              string     `db:"car_type"`
	Status               TripStatus `db:"status"`
	IsTravelRequest      bool       `db:"is_travel_request"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// ToDTO converts a Trip to a TripDTO
func (t *Trip) ToDTO() *TripDTO {
	return &TripDTO{
		ID:                   t.ID,
		CustomerID:           t.CustomerID,
		DriverID:             t.DriverID,
		PickupLatitude:       t.Pickup.Latitude,
		PickupLongitude:      t.Pickup.Longitude,
		PickupAddress:        t.Pickup.Address,
		DestinationLatitude:  t.Destination.Latitude,
		DestinationLongitude: t.Destination.Longitude,
		DestinationAddress:   t.Destination.Address,
		Price:                t.Price,
		DistanceKm:           t.DistanceKm,
		DurationSec:          t.DurationSec,
		PaymentMethod:        t.PaymentMethod,
		PromoCode:            t.PromoCode,
		CarType:              t.CarType,
		Status:               t.Status,
		IsTravelRequest:      t.IsTravelRequest,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

// ToTrip converts a TripDTO back to a Trip
func (dto *TripDTO) ToTrip() *Trip {
	return &Trip{
		ID:         dto.ID,
		CustomerID: dto.CustomerID,
		DriverID:   dto.DriverID,
		Pickup: TripPoint{
			Latitude:  dto.PickupLatitude,
			Longitude: dto.PickupLongitude,
			Address:   dto.PickupAddress,
		},
		Destination: TripPoint{
			Latitude:  dto.DestinationLatitude,
			Longitude: dto.DestinationLongitude,
			Address:   dto.DestinationAddress,
		},
		Price:           dto.Price,
		DistanceKm:      dto.DistanceKm,
		DurationSec:     dto.DurationSec,
		PaymentMethod:   dto.PaymentMethod,
		PromoCode:       dto.PromoCode,
		CarType:         dto.CarType,
		Status:          dto.Status,
		IsTravelRequest: dto.IsTravelRequest,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
}

// CreateTripRequest is the payload for POST /trips/create
type CreateTripRequest struct {
	CustomerID      string    `json:"customer_id"`
	Pickup          TripPoint `json:"pickup"`
	Destination     TripPoint `json:"destination"`
	Price           float64   `json:"price"`
	DistanceKm      float64   `json:"distance_km"`
	DurationSec     int       `json:"duration_sec"`
	PaymentMethod   string    `json:"payment_method"`
	PromoCode       string    `json:"promo_code,omitempty"`
	CarType         string    `json:"car_type,omitempty"`
	IsTravelRequest bool      `json:"is_travel_request"`
}

// TripSnapshot is the subset of trip data attached to an SOS alert
type TripSnapshot struct {
	TripID      string    `json:"trip_id"`
	CustomerID  string    `json:"customer_id"`
	DriverID    string    `json:"driver_id,omitempty"`
	Pickup      TripPoint `json:"pickup"`
	Destination TripPoint `json:"destination"`
	Status      string    `json:"status"`
}

// Snapshot extracts the SOS snapshot view of a trip
func (t *Trip) Snapshot() *TripSnapshot {
	snap := &TripSnapshot{
		TripID:      t.ID.String(),
		CustomerID:  t.CustomerID.String(),
		Pickup:      t.Pickup,
		Destination: t.Destination,
		Status:      string(t.Status),
	}
	if t.DriverID != nil {
		snap.DriverID = t.DriverID.String()
	}
	return snap
}
