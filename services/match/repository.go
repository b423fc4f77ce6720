package match

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// MatchRepo defines the interface for match data access. The
// spatial-temporal filter itself lives in the store's find_matching_trips
// procedure; this side only invokes it.
type MatchRepo interface {
	FindMatchingTrips(ctx context.Context, query *models.MatchQuery, radiusMeters float64) ([]models.MatchCandidate, error)
}
