package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/utils"
	"github.com/ridepulse/ridepulse/services/match"
	"github.com/ridepulse/ridepulse/services/trips"
)

// MatchHandler handles HTTP requests for offer and matching operations
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

// IgnoreTripRequest is the request body for declining a trip
type IgnoreTripRequest struct {
	Price float64 `json:"price"`
}

// RequestedFeed handles GET /matches/feed
func (h *MatchHandler) RequestedFeed(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	feed, err := h.matchUC.RequestedFeed(c.Request().Context(), driverID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Feed retrieved successfully", feed)
}

// SubmitOffer handles POST /matches/offers
func (h *MatchHandler) SubmitOffer(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.OfferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.DriverID = driverID

	offer, err := h.matchUC.SubmitOffer(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, match.ErrAlreadyOffered):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Offer submitted successfully", offer)
}

// IgnoreTrip handles POST /matches/trips/:tripID/ignore
func (h *MatchHandler) IgnoreTrip(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var req IgnoreTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.matchUC.IgnoreTrip(c.Request().Context(), driverID, tripID, req.Price); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip ignored", nil)
}

// ListTripOffers handles GET /matches/trips/:tripID/offers
func (h *MatchHandler) ListTripOffers(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	offers, err := h.matchUC.ListTripOffers(c.Request().Context(), tripID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Offers retrieved successfully", offers)
}

// AcceptOffer handles POST /matches/offers/:offerID/accept
func (h *MatchHandler) AcceptOffer(c echo.Context) error {
	offerID := c.Param("offerID")
	if offerID == "" {
		return utils.BadRequestResponse(c, "Offer ID is required")
	}

	offer, err := h.matchUC.AcceptOffer(c.Request().Context(), offerID)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrOfferNotFound):
			return utils.NotFoundResponse(c, "Offer not found")
		case errors.Is(err, match.ErrOfferNotPending):
			return utils.ConflictResponse(c, err.Error())
		case errors.Is(err, trips.ErrInvalidTransition):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Offer accepted successfully", offer)
}
