package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/middleware"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/trips"
	httpHandler "github.com/ridepulse/ridepulse/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
	jwtCfg   models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC, jwtCfg models.JWTConfig) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
		jwtCfg:   jwtCfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	tripGroup := e.Group("/trips", middleware.JWTAuthMiddleware(h.jwtCfg))

	tripGroup.POST("", h.tripHTTP.CreateTrip)
	tripGroup.GET("/active", h.tripHTTP.GetActiveTrip)
	tripGroup.GET("/requested", h.tripHTTP.ListRequestedTrips)
	tripGroup.GET("/:tripID", h.tripHTTP.GetTrip)
	tripGroup.PUT("/:tripID/status", h.tripHTTP.UpdateStatus)
	tripGroup.POST("/:tripID/cancel", h.tripHTTP.CancelTrip)
	tripGroup.PUT("/:tripID/price", h.tripHTTP.RepriceTrip)

	// Internal routes for service-to-service polling
	internal := e.Group("/internal/trips")
	internal.GET("/active", h.tripHTTP.GetActiveTripInternal)
	internal.GET("/requested", h.tripHTTP.ListRequestedTrips)
	internal.GET("/:tripID", h.tripHTTP.GetTrip)
}
