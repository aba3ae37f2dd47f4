package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridepulse/ridepulse/internal/utils"
	"github.com/ridepulse/ridepulse/services/balance"
)

// BalanceHandler handles HTTP requests for balance resolution
type BalanceHandler struct {
	balanceUC balance.BalanceUC
}

// NewBalanceHandler creates a new balance HTTP handler
func NewBalanceHandler(balanceUC balance.BalanceUC) *BalanceHandler {
	return &BalanceHandler{
		balanceUC: balanceUC,
	}
}

// VerifyPaymentRequest is the request body for post-top-up verification
type VerifyPaymentRequest struct {
	Expected float64 `json:"expected"`
}

// GetBalance handles GET /balance
func (h *BalanceHandler) GetBalance(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.balanceUC.ResolveBalance(c.Request().Context(), driverID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance resolved", result)
}

// CheckAdmission handles GET /balance/gate
func (h *BalanceHandler) CheckAdmission(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	decision, err := h.balanceUC.CheckDriverAdmission(c.Request().Context(), driverID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Admission checked", decision)
}

// VerifyPayment handles POST /balance/verify
func (h *BalanceHandler) VerifyPayment(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Expected <= 0 {
		return utils.BadRequestResponse(c, "Expected amount must be positive")
	}

	h.balanceUC.StartPaymentVerification(driverID, req.Expected)

	return utils.SuccessResponse(c, http.StatusAccepted, "Payment verification started", nil)
}
