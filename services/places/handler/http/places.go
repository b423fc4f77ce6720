package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/places"
)

const defaultRadiusMeters = 5000

// PlaceHandler exposes the place search endpoints over HTTP.
type PlaceHandler struct {
	placeUC places.PlaceUC
}

// NewPlaceHandler creates a new places HTTP handler
func NewPlaceHandler(placeUC places.PlaceUC) *PlaceHandler {
	return &PlaceHandler{placeUC: placeUC}
}

// NearbyRequest is the request body for a nearby place search.
type NearbyRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Radius    float64  `json:"radius" validate:"omitempty,gt=0"`
	Types     []string `json:"types"`
}

// NearbyResponse wraps the enriched place results.
type NearbyResponse struct {
	Places []models.Place `json:"places"`
}

// Nearby handles POST /places/nearby
func (h *PlaceHandler) Nearby(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "A valid latitude and longitude are required")
	}

	radius := req.Radius
	if radius <= 0 {
		radius = defaultRadiusMeters
	}

	center := models.GeoPoint{Lat: *req.Latitude, Lng: *req.Longitude}
	results, err := h.placeUC.FindNearby(c.Request().Context(), center, radius, req.Types)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return c.JSON(http.StatusOK, NearbyResponse{Places: results})
}
