package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httppkg "github.com/ridepulse/ridepulse/internal/pkg/http"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/pkg/websocket"
	"github.com/ridepulse/ridepulse/services/dispatch"
)

// tripEnvelope matches the trip API's response wrapper
type tripEnvelope struct {
	Success bool        `json:"success"`
	Data    models.Trip `json:"data"`
}

type tripListEnvelope struct {
	Success bool           `json:"success"`
	Data    []*models.Trip `json:"data"`
}

// DispatchGW reaches the trip API over HTTP for the polling fallback and
// pushes events to connected driver clients over the websocket manager.
type DispatchGW struct {
	tripClient *httppkg.Client
	wsManager  *websocket.Manager
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(cfg *models.Config, wsManager *websocket.Manager) dispatch.DispatchGW {
	timeout := time.Duration(cfg.Dispatch.RequestTimeoutSec) * time.Second
	return &DispatchGW{
		tripClient: httppkg.NewClient(cfg.Services.TripsURL, timeout),
		wsManager:  wsManager,
	}
}

// FetchTrip fetches one trip. An authoritative 404/400 comes back as a
// StatusError so httppkg.IsGone can classify it.
func (g *DispatchGW) FetchTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var envelope tripEnvelope
	path := "/internal/trips/" + url.PathEscape(tripID)
	if err := g.tripClient.GetJSON(ctx, path, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// FetchActiveTrip fetches the driver's current non-terminal trip
func (g *DispatchGW) FetchActiveTrip(ctx context.Context, driverID string) (*models.Trip, error) {
	var envelope tripEnvelope
	path := "/internal/trips/active?role=driver&user_id=" + url.QueryEscape(driverID)
	if err := g.tripClient.GetJSON(ctx, path, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// FetchRequestedTrips fetches all currently open trips
func (g *DispatchGW) FetchRequestedTrips(ctx context.Context) ([]*models.Trip, error) {
	var envelope tripListEnvelope
	if err := g.tripClient.GetJSON(ctx, "/internal/trips/requested", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Notify delivers an event to the driver's connected websocket client
func (g *DispatchGW) Notify(driverID string, event string, payload interface{}) error {
	client, ok := g.wsManager.GetClient(driverID)
	if !ok {
		return fmt.Errorf("driver %s has no connected client", driverID)
	}
	return g.wsManager.SendMessage(client.Conn, event, payload)
}
