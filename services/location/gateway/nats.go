package gateway

import (
	"context"
	"fmt"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	natspkg "github.com/ridepulse/ridepulse/internal/pkg/nats"
	"github.com/ridepulse/ridepulse/services/location"
)

// LocationGW publishes accepted location samples to NATS
type LocationGW struct {
	producer *natspkg.Producer
}

// NewLocationGW creates a new location gateway instance
func NewLocationGW(client *natspkg.Client) location.LocationGW {
	return &LocationGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishLocation publishes the sample on the driver's own subject so trip
// participants can subscribe to just their driver.
func (g *LocationGW) PublishLocation(ctx context.Context, update *models.LocationUpdate) error {
	subject := fmt.Sprintf(constants.SubjectDriverLocation, update.DriverID)
	return g.producer.Publish(subject, update)
}
