package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/services/places"
	httpHandler "github.com/ridelink/ridelink/services/places/handler/http"
)

// Handler combines all handlers for the places service
type Handler struct {
	placeHTTP *httpHandler.PlaceHandler
}

// NewHandler creates a new combined handler
func NewHandler(placeUC places.PlaceUC) *Handler {
	return &Handler{
		placeHTTP: httpHandler.NewPlaceHandler(placeUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	placeGroup := e.Group("/places")
	placeGroup.POST("/nearby", h.placeHTTP.Nearby)
}
