package models

import "time"

// DriverPresence is the ephemeral per-session view of an online driver.
// It is created when a driver goes online and cleared on sign-out.
type DriverPresence struct {
	DriverID    string       `json:"driver_id"`
	IsOnline    bool         `json:"is_online"`
	VehicleType string       `json:"vehicle_type,omitempty"`
	Location    Location     `json:"location"`
	Mode        TrackingMode `json:"tracking_mode"`
	OnlineAt    time.Time    `json:"online_at"`
}

// IgnoredTrip records a trip the driver already declined or offered on,
// keyed by trip id and the price at which it was last seen. The entry is
// invalidated when the trip's price changes or the ignore TTL elapses.
type IgnoredTrip struct {
	TripID    string    `json:"trip_id"`
	Price     float64   `json:"price"`
	IgnoredAt time.Time `json:"ignored_at"`
}
