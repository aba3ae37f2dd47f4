package handler

import (
	"context"
	"encoding/json"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/pkg/websocket"
	"github.com/ridepulse/ridepulse/services/dispatch"
)

// WSHandler owns the driver websocket endpoint. A connection is a driver
// session: the session starts on connect and is torn down on disconnect.
type WSHandler struct {
	dispatchUC dispatch.DispatchUC
	ingestor   dispatch.LocationIngestor
	manager    *websocket.Manager
}

// NewWSHandler creates a new dispatch websocket handler
func NewWSHandler(dispatchUC dispatch.DispatchUC, ingestor dispatch.LocationIngestor, manager *websocket.Manager) *WSHandler {
	return &WSHandler{
		dispatchUC: dispatchUC,
		ingestor:   ingestor,
		manager:    manager,
	}
}

// promptResponsePayload is the client's answer to an incoming-offer prompt
type promptResponsePayload struct {
	TripID string `json:"trip_id"`
	Accept bool   `json:"accept"`
}

// HandleDriverConnection handles GET /ws/driver
func (h *WSHandler) HandleDriverConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// HandleRiderConnection handles GET /ws/rider. A rider connection carries no
// session: it only registers the client so trip status and driver position
// can be mirrored over from the driver side of the match.
func (h *WSHandler) HandleRiderConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleRiderClient)
}

func (h *WSHandler) handleRiderClient(client *models.WebSocketClient, conn *gorilla.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return nil
		}
		// Riders only listen.
		_ = h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}

func (h *WSHandler) handleClient(client *models.WebSocketClient, conn *gorilla.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	if err := h.dispatchUC.StartSession(context.Background(), client.UserID); err != nil {
		logger.Error("Failed to start driver session",
			logger.String("driver_id", client.UserID),
			logger.Err(err))
		return err
	}
	defer func() {
		if err := h.dispatchUC.StopSession(client.UserID); err != nil {
			logger.Warn("Failed to stop driver session",
				logger.String("driver_id", client.UserID),
				logger.Err(err))
		}
	}()

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			// Disconnect, normal teardown path.
			return nil
		}
		h.handleMessage(client, conn, msg)
	}
}

func (h *WSHandler) handleMessage(client *models.WebSocketClient, conn *gorilla.Conn, msg models.WSMessage) {
	switch msg.Event {
	case "prompt_response":
		var payload promptResponsePayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			_ = h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid prompt response payload")
			return
		}
		if err := h.dispatchUC.RespondToPrompt(context.Background(), client.UserID, payload.TripID, payload.Accept); err != nil {
			_ = h.manager.SendErrorMessage(conn, constants.ErrorInternal, err.Error())
		}
	case "location_update":
		var update models.LocationUpdate
		if err := json.Unmarshal(msg.Data, &update); err != nil {
			_ = h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid location payload")
			return
		}
		update.DriverID = client.UserID
		if err := h.ingestor.IngestLocation(context.Background(), &update); err != nil {
			logger.Warn("Failed to ingest location sample",
				logger.String("driver_id", client.UserID),
				logger.Err(err))
		}
	default:
		_ = h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}
