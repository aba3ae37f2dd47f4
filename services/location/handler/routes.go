package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/middleware"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/location"
	httpHandler "github.com/ridepulse/ridepulse/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
	jwtCfg       models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC, jwtCfg models.JWTConfig) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
		jwtCfg:       jwtCfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	driverGroup := e.Group("/drivers", middleware.JWTAuthMiddleware(h.jwtCfg))

	driverGroup.POST("/online", h.locationHTTP.GoOnline)
	driverGroup.POST("/offline", h.locationHTTP.GoOffline)
	driverGroup.POST("/location", h.locationHTTP.UpdateLocation)
	driverGroup.PUT("/tracking-mode", h.locationHTTP.SetTrackingMode)
}
