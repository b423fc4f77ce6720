package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/middleware"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/payment"
)

// PaymentHandler exposes the payment endpoints over HTTP.
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// TransferRequest is the request body for a wallet transfer. The sender
// is taken from the authenticated token, never from the body.
type TransferRequest struct {
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	RecipientID string         `json:"recipient_id"`
	Method      string         `json:"method"`
	Metadata    map[string]any `json:"metadata"`
}

// TransferResponse wraps the created transaction record.
type TransferResponse struct {
	Transaction *models.Transaction `json:"transaction"`
}

// Transfer handles POST /payments/transfer
func (h *PaymentHandler) Transfer(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req TransferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	metadata := req.Metadata
	if key := c.Request().Header.Get("Idempotency-Key"); key != "" {
		if metadata == nil {
			metadata = make(map[string]any)
		}
		metadata["idempotency_key"] = key
	}

	transfer := &models.MoneyTransfer{
		From:     userID,
		To:       req.RecipientID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Method:   req.Method,
		Metadata: metadata,
	}

	transaction, err := h.paymentUC.Transfer(c.Request().Context(), transfer)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return utils.UnauthorizedResponse(c, "Authentication required")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return c.JSON(http.StatusOK, TransferResponse{Transaction: transaction})
}
