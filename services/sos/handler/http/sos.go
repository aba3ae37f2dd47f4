package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/utils"
	"github.com/ridepulse/ridepulse/services/sos"
)

// SOSHandler handles HTTP requests for safety escalation
type SOSHandler struct {
	sosUC sos.SOSUC
}

// NewSOSHandler creates a new SOS HTTP handler
func NewSOSHandler(sosUC sos.SOSUC) *SOSHandler {
	return &SOSHandler{
		sosUC: sosUC,
	}
}

// TriggerSOSRequest is the request body for raising an alert
type TriggerSOSRequest struct {
	TripID string `json:"trip_id,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// TriggerSOS handles POST /sos
func (h *SOSHandler) TriggerSOS(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req TriggerSOSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	alert, err := h.sosUC.TriggerSOS(c.Request().Context(), userID, req.TripID, req.Notes)
	if err != nil {
		if errors.Is(err, sos.ErrNoActiveTrip) {
			return utils.BadRequestResponse(c, "No active trip to attach to this alert")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "SOS alert sent", alert)
}
