package gateway

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
	natspkg "github.com/ridelink/ridelink/internal/pkg/nats"
)

// TripGateway publishes trip domain events
type TripGateway struct {
	natsClient *natspkg.Client
}

// NewTripGateway creates a new trip gateway
func NewTripGateway(natsClient *natspkg.Client) *TripGateway {
	return &TripGateway{natsClient: natsClient}
}

// PublishTripInterpreted publishes a trip.interpreted event
func (g *TripGateway) PublishTripInterpreted(_ context.Context, event models.TripInterpretedEvent) error {
	return g.natsClient.PublishJSON(natspkg.SubjectTripInterpreted, event)
}
