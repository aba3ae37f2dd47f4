package models

import "time"

// Location represents a geographical coordinate with optional heading
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Heading   *float64  `json:"heading,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackingMode is the fidelity level at which device location is sampled
type TrackingMode string

const (
	TrackingModeIdle            TrackingMode = "idle"
	TrackingModeNearDestination TrackingMode = "near_destination"
	TrackingModeActive          TrackingMode = "active"
)

// TrackingProfile holds the watch-subscription parameters for a tracking mode
type TrackingProfile struct {
	Accuracy       string        `json:"accuracy"`
	Interval       time.Duration `json:"interval"`
	DistanceFilter float64       `json:"distance_filter_m"`
}

// LocationUpdate is published on the realtime channel for each driver position sample
type LocationUpdate struct {
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   *float64  `json:"heading,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
