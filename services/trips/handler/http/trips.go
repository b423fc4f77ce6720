package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/trips"
)

// TripHandler handles HTTP requests for trip interpretation
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// InterpretRequest is the request body for trip interpretation
type InterpretRequest struct {
	Input        string        `json:"input"`
	InputType    string        `json:"inputType"`
	AudioData    string        `json:"audioData,omitempty"`
	UserLocation *userLocation `json:"userLocation,omitempty"`
}

type userLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InterpretTrip handles POST requests turning free-form input into a
// structured trip draft
func (h *TripHandler) InterpretTrip(c echo.Context) error {
	var req InterpretRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.Input == "" && req.AudioData == "" {
		return utils.BadRequestResponse(c, "Input or audioData is required")
	}

	input := models.TripInput{
		Text:      req.Input,
		InputType: req.InputType,
		AudioData: req.AudioData,
	}
	if req.UserLocation != nil {
		input.UserLocation = &models.GeoPoint{
			Lat: req.UserLocation.Latitude,
			Lng: req.UserLocation.Longitude,
		}
	}

	draft, err := h.tripUC.InterpretTrip(c.Request().Context(), input)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return c.JSON(nethttp.StatusOK, draft)
}
