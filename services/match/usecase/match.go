package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/pkg/observability"
)

// FindMatches validates the query and delegates the spatial-temporal
// filter to the store. Results pass through unranked; ordering is the
// store's contract. An inverted window is not an error, it just matches
// nothing.
func (uc *MatchUC) FindMatches(ctx context.Context, query *models.MatchQuery) ([]models.MatchCandidate, error) {
	if query == nil || query.Origin == nil {
		return nil, fmt.Errorf("%w: missing location data", apperrors.ErrValidation)
	}

	observability.MatchSearchesTotal.Inc()

	candidates, err := uc.matchRepo.FindMatchingTrips(ctx, query, uc.cfg.Match.RadiusMeters)
	if err != nil {
		return nil, err
	}
	if candidates == nil {
		candidates = []models.MatchCandidate{}
	}

	observability.MatchCandidates.Observe(float64(len(candidates)))

	event := models.MatchSearchedEvent{
		RequestID: uuid.New().String(),
		Origin:    *query.Origin,
		Window:    query.Window,
		Results:   len(candidates),
	}
	if err := uc.matchGW.PublishMatchSearched(ctx, event); err != nil {
		logger.Warn("Failed to publish match searched event", logger.Err(err))
	}

	return candidates, nil
}
