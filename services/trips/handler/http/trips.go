package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/utils"
	"github.com/ridepulse/ridepulse/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// UpdateStatusRequest is the request body for a status change
type UpdateStatusRequest struct {
	Status models.TripStatus `json:"status"`
}

// RepriceRequest is the request body for a price change
type RepriceRequest struct {
	Price float64 `json:"price"`
}

// CreateTrip handles POST /trips
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	req.CustomerID = userID

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// GetTrip handles GET /trips/:tripID
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// GetActiveTrip handles GET /trips/active. A 404 here is an authoritative
// "no active trip" signal for the caller, not a transient failure.
func (h *TripHandler) GetActiveTrip(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := c.Get("user_role").(string)

	trip, err := h.tripUC.GetActiveTrip(c.Request().Context(), userID, role)
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "No active trip")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active trip retrieved successfully", trip)
}

// GetActiveTripInternal handles GET /internal/trips/active for
// service-to-service polling, with the caller identified by query params.
func (h *TripHandler) GetActiveTripInternal(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}
	role := c.QueryParam("role")

	trip, err := h.tripUC.GetActiveTrip(c.Request().Context(), userID, role)
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "No active trip")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active trip retrieved successfully", trip)
}

// ListRequestedTrips handles GET /trips/requested
func (h *TripHandler) ListRequestedTrips(c echo.Context) error {
	result, err := h.tripUC.ListRequestedTrips(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Requested trips retrieved successfully", result)
}

// UpdateStatus handles PUT /trips/:tripID/status
func (h *TripHandler) UpdateStatus(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.UpdateStatus(c.Request().Context(), tripID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, trips.ErrInvalidTransition):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip status updated successfully", trip)
}

// CancelTrip handles POST /trips/:tripID/cancel
func (h *TripHandler) CancelTrip(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	trip, err := h.tripUC.CancelTrip(c.Request().Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, trips.ErrInvalidTransition):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", trip)
}

// RepriceTrip handles PUT /trips/:tripID/price
func (h *TripHandler) RepriceTrip(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var req RepriceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.RepriceTrip(c.Request().Context(), tripID, req.Price)
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip repriced successfully", trip)
}
