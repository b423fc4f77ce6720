package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/middleware"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/payment"
	httpHandler "github.com/ridelink/ridelink/services/payment/handler/http"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	jwtConfig   models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payment.PaymentUC, jwtConfig models.JWTConfig) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
		jwtConfig:   jwtConfig,
	}
}

// RegisterRoutes registers all HTTP routes. Every payment route requires
// a valid bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	paymentGroup := e.Group("/payments", middleware.JWTAuthMiddleware(h.jwtConfig))
	paymentGroup.POST("/transfer", h.paymentHTTP.Transfer)
}
