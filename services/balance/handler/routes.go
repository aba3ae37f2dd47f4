package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/pkg/middleware"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/services/balance"
	httpHandler "github.com/ridepulse/ridepulse/services/balance/handler/http"
)

// Handler combines all handlers for the balance service
type Handler struct {
	balanceHTTP *httpHandler.BalanceHandler
	jwtCfg      models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(balanceUC balance.BalanceUC, jwtCfg models.JWTConfig) *Handler {
	return &Handler{
		balanceHTTP: httpHandler.NewBalanceHandler(balanceUC),
		jwtCfg:      jwtCfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	balanceGroup := e.Group("/balance", middleware.JWTAuthMiddleware(h.jwtCfg))

	balanceGroup.GET("", h.balanceHTTP.GetBalance)
	balanceGroup.GET("/gate", h.balanceHTTP.CheckAdmission)
	balanceGroup.POST("/verify", h.balanceHTTP.VerifyPayment)
}
