package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/middleware"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/match"
	httpHandler "github.com/ridepulse/ridepulse/services/match/handler/http"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchHTTP *httpHandler.MatchHandler
	jwtCfg    models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC, jwtCfg models.JWTConfig) *Handler {
	return &Handler{
		matchHTTP: httpHandler.NewMatchHandler(matchUC),
		jwtCfg:    jwtCfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	matchGroup := e.Group("/matches", middleware.JWTAuthMiddleware(h.jwtCfg))

	matchGroup.GET("/feed", h.matchHTTP.RequestedFeed)
	matchGroup.POST("/offers", h.matchHTTP.SubmitOffer)
	matchGroup.POST("/offers/:offerID/accept", h.matchHTTP.AcceptOffer)
	matchGroup.POST("/trips/:tripID/ignore", h.matchHTTP.IgnoreTrip)
	matchGroup.GET("/trips/:tripID/offers", h.matchHTTP.ListTripOffers)
}
