package gateway

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
	natspkg "github.com/ridelink/ridelink/internal/pkg/nats"
)

// MatchGateway publishes match domain events
type MatchGateway struct {
	natsClient *natspkg.Client
}

// NewMatchGateway creates a new match gateway
func NewMatchGateway(natsClient *natspkg.Client) *MatchGateway {
	return &MatchGateway{natsClient: natsClient}
}

// PublishMatchSearched publishes a match.searched event
func (g *MatchGateway) PublishMatchSearched(_ context.Context, event models.MatchSearchedEvent) error {
	return g.natsClient.PublishJSON(natspkg.SubjectMatchSearched, event)
}
