package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/utils"
	"github.com/ridepulse/ridepulse/services/location"
)

// LocationHandler handles HTTP requests for driver presence and tracking
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// GoOnlineRequest is the request body for going online
type GoOnlineRequest struct {
	VehicleType string   `json:"vehicle_type"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Heading     *float64 `json:"heading,omitempty"`
}

// TrackingModeRequest is the request body for a manual mode override
type TrackingModeRequest struct {
	Mode models.TrackingMode `json:"mode"`
}

// GoOnline handles POST /drivers/online
func (h *LocationHandler) GoOnline(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req GoOnlineRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	loc := models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Heading:   req.Heading,
	}
	decision, err := h.locationUC.GoOnline(c.Request().Context(), driverID, req.VehicleType, loc)
	if err != nil {
		if errors.Is(err, location.ErrAdmissionBlocked) {
			return c.JSON(http.StatusForbidden, utils.Response{
				Success: false,
				Message: decision.Prompt,
				Data:    decision,
			})
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver online", decision)
}

// GoOffline handles POST /drivers/offline
func (h *LocationHandler) GoOffline(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.locationUC.GoOffline(c.Request().Context(), driverID); err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver offline", nil)
}

// UpdateLocation handles POST /drivers/location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var update models.LocationUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	update.DriverID = driverID

	if err := h.locationUC.IngestLocation(c.Request().Context(), &update); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location received", nil)
}

// SetTrackingMode handles PUT /drivers/tracking-mode. Normal mode changes
// follow the trip lifecycle automatically; this endpoint exists for support
// tooling.
func (h *LocationHandler) SetTrackingMode(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req TrackingModeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	switch req.Mode {
	case models.TrackingModeIdle, models.TrackingModeNearDestination, models.TrackingModeActive:
	default:
		return utils.BadRequestResponse(c, "Unknown tracking mode")
	}

	if err := h.locationUC.SetTrackingMode(c.Request().Context(), driverID, req.Mode); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking mode updated", nil)
}
