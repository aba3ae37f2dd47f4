package gateway

import (
	"context"
	"fmt"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	natspkg "github.com/ridepulse/ridepulse/internal/pkg/nats"
	"github.com/ridepulse/ridepulse/services/trips"
)

// TripGW publishes trip lifecycle events to NATS
type TripGW struct {
	producer *natspkg.Producer
}

// NewTripGW creates a new trip gateway instance
func NewTripGW(client *natspkg.Client) trips.TripGW {
	return &TripGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishTripStatus publishes a status change on the trip's own subject so
// both sides of the trip can subscribe to just their trip.
func (g *TripGW) PublishTripStatus(ctx context.Context, trip *models.Trip) error {
	event := models.StatusEvent{
		TripID:    trip.ID.String(),
		Status:    trip.Status,
		Timestamp: trip.UpdatedAt,
	}
	subject := fmt.Sprintf(constants.SubjectTripStatus, trip.ID.String())
	return g.producer.Publish(subject, event)
}

// PublishTripRequested announces a new open trip to the driver pool
func (g *TripGW) PublishTripRequested(ctx context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.SubjectTripRequested, trip)
}

// PublishTripRepriced announces a price change on an open trip
func (g *TripGW) PublishTripRepriced(ctx context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.SubjectTripRepriced, trip)
}
