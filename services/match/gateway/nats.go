package gateway

import (
	"context"
	"fmt"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	natspkg "github.com/ridepulse/ridepulse/internal/pkg/nats"
	"github.com/ridepulse/ridepulse/services/match"
)

// MatchGW publishes offer and match events to NATS
type MatchGW struct {
	producer *natspkg.Producer
}

// NewMatchGW creates a new match gateway instance
func NewMatchGW(client *natspkg.Client) match.MatchGW {
	return &MatchGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishOfferCreated announces a new driver offer to the trip's customer
func (g *MatchGW) PublishOfferCreated(ctx context.Context, offer *models.Offer) error {
	return g.producer.Publish(constants.SubjectOfferCreated, offer)
}

// PublishOfferAccepted notifies the winning driver on their own subject.
// The payload carries the full trip so the driver app can transition without
// another fetch.
func (g *MatchGW) PublishOfferAccepted(ctx context.Context, offer *models.Offer, trip *models.Trip) error {
	event := models.OfferEvent{
		Event: models.EventTripAccepted,
		Trip:  *trip,
	}
	subject := fmt.Sprintf(constants.SubjectOfferAccepted, offer.DriverID.String())
	return g.producer.Publish(subject, event)
}
