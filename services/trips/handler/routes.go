package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/services/trips"
	httpHandler "github.com/ridelink/ridelink/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
	}
}

// RegisterRoutes registers all HTTP routes. Non-POST methods on the
// interpret path get Echo's default 405 response.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	tripGroup := e.Group("/trips")
	tripGroup.POST("/interpret", h.tripHTTP.InterpretTrip)
}
