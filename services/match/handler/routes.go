package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/services/match"
	httpHandler "github.com/ridelink/ridelink/services/match/handler/http"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchHTTP *httpHandler.MatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC) *Handler {
	return &Handler{
		matchHTTP: httpHandler.NewMatchHandler(matchUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	matchGroup := e.Group("/matches")
	matchGroup.POST("/search", h.matchHTTP.SearchMatches)
}
