package match

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// MatchUC defines the interface for trip matching business logic
type MatchUC interface {
	// FindMatches returns stored trips compatible with the query's origin,
	// optional destination and departure window.
	FindMatches(ctx context.Context, query *models.MatchQuery) ([]models.MatchCandidate, error)
}
