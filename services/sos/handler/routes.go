package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/middleware"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/sos"
	httpHandler "github.com/ridepulse/ridepulse/services/sos/handler/http"
)

// Handler combines all handlers for the SOS service
type Handler struct {
	sosHTTP *httpHandler.SOSHandler
	jwtCfg  models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(sosUC sos.SOSUC, jwtCfg models.JWTConfig) *Handler {
	return &Handler{
		sosHTTP: httpHandler.NewSOSHandler(sosUC),
		jwtCfg:  jwtCfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	sosGroup := e.Group("/sos", middleware.JWTAuthMiddleware(h.jwtCfg))

	sosGroup.POST("", h.sosHTTP.TriggerSOS)
}
