package http

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/match"
)

// MatchHandler handles HTTP requests for trip matching
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// SearchRequest is the request body for a matching search. Origin
// coordinates are required; pointer fields distinguish absent from zero.
type SearchRequest struct {
	OriginLat       *float64 `json:"origin_lat"`
	OriginLng       *float64 `json:"origin_lng"`
	DestLat         *float64 `json:"dest_lat"`
	DestLng         *float64 `json:"dest_lng"`
	TimeWindowStart string   `json:"time_window_start"`
	TimeWindowEnd   string   `json:"time_window_end"`
}

// SearchResponse wraps the candidate list
type SearchResponse struct {
	Matches []models.MatchCandidate `json:"matches"`
}

// SearchMatches handles POST requests for compatible stored trips
func (h *MatchHandler) SearchMatches(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.OriginLat == nil || req.OriginLng == nil {
		return utils.BadRequestResponse(c, "Missing location data")
	}

	windowStart, err := parseWindowBound(req.TimeWindowStart)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid time_window_start: "+err.Error())
	}
	windowEnd, err := parseWindowBound(req.TimeWindowEnd)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid time_window_end: "+err.Error())
	}

	query := &models.MatchQuery{
		Origin: &models.GeoPoint{Lat: *req.OriginLat, Lng: *req.OriginLng},
		Window: models.TimeWindow{Start: windowStart, End: windowEnd},
	}
	if req.DestLat != nil && req.DestLng != nil {
		query.Destination = &models.GeoPoint{Lat: *req.DestLat, Lng: *req.DestLng}
	}

	matches, err := h.matchUC.FindMatches(c.Request().Context(), query)
	if err != nil {
		// Store failures surface as client errors on this endpoint
		return utils.BadRequestResponse(c, err.Error())
	}

	return c.JSON(nethttp.StatusOK, SearchResponse{Matches: matches})
}

// parseWindowBound accepts RFC3339 timestamps and local civil timestamps
// without an offset
func parseWindowBound(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
