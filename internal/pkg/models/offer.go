package models

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus represents the state of a driver's offer on a requested trip
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	// OfferStatusMoot marks offers that lost the race once the trip was
	// matched to another driver. Moot offers must never be actionable.
	OfferStatusMoot OfferStatus = "moot"
)

// Offer is a driver's proposed price to fulfill a requested trip.
// A driver either accepts at the listed price or counter-bids.
type Offer struct {
	ID        uuid.UUID   `json:"offer_id" db:"id"`
	TripID    uuid.UUID   `json:"trip_id" db:"trip_id"`
	DriverID  uuid.UUID   `json:"driver_id" db:"driver_id"`
	Price     float64     `json:"price" db:"price"`
	IsCounter bool        `json:"is_counter" db:"is_counter"`
	Status    OfferStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// OfferRequest is the payload for POST /trip-offers
type OfferRequest struct {
	TripID   string  `json:"trip_id"`
	DriverID string  `json:"driver_id"`
	Price    float64 `json:"price"`
}
