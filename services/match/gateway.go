package match

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// MatchGW defines the interface for match event publication
type MatchGW interface {
	PublishMatchSearched(ctx context.Context, event models.MatchSearchedEvent) error
}
