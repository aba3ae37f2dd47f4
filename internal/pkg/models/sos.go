package models

import "time"

// SOSMetadata carries the trip snapshot attached to an alert
type SOSMetadata struct {
	Snapshot *TripSnapshot `json:"snapshot,omitempty"`
}

// SOSAlert is the payload for POST /sos/create
type SOSAlert struct {
	TripID    string      `json:"trip_id"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Notes     string      `json:"notes,omitempty"`
	Metadata  SOSMetadata `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}
