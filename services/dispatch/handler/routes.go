package handler

import (
	"github.com/labstack/echo/v4"
	natspkg "github.com/ridepulse/ridepulse/internal/pkg/nats"
	"github.com/ridepulse/ridepulse/internal/pkg/websocket"
	"github.com/ridepulse/ridepulse/services/dispatch"
)

// Handler combines the websocket endpoint and the NATS bridge for dispatch
type Handler struct {
	ws   *WSHandler
	nats *NATSHandler
}

// NewHandler creates a new combined handler
func NewHandler(dispatchUC dispatch.DispatchUC, ingestor dispatch.LocationIngestor, natsClient *natspkg.Client, wsManager *websocket.Manager) *Handler {
	return &Handler{
		ws:   NewWSHandler(dispatchUC, ingestor, wsManager),
		nats: NewNATSHandler(dispatchUC, natsClient),
	}
}

// RegisterRoutes registers the websocket endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/driver", h.ws.HandleDriverConnection)
	e.GET("/ws/rider", h.ws.HandleRiderConnection)
}

// InitNATSConsumers starts the realtime bridge
func (h *Handler) InitNATSConsumers() error {
	return h.nats.InitConsumers()
}

// Stop tears the NATS bridge down
func (h *Handler) Stop() {
	h.nats.Stop()
}
