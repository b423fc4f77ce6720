package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// MatchRepo implements the match repository interface against the trip
// store's find_matching_trips procedure.
type MatchRepo struct {
	db *sqlx.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *sqlx.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// FindMatchingTrips invokes the store's geospatial-temporal filter. The
// destination is optional; NULLs widen the candidate pool to
// origin-compatible trips.
func (r *MatchRepo) FindMatchingTrips(ctx context.Context, query *models.MatchQuery, radiusMeters float64) ([]models.MatchCandidate, error) {
	var destLat, destLng *float64
	if query.Destination != nil {
		destLat = &query.Destination.Lat
		destLng = &query.Destination.Lng
	}

	sqlQuery := `
		SELECT trip_id, driver_id,
			origin_lat, origin_lng,
			destination_lat, destination_lng,
			departure_time, seats_available, distance_meters
		FROM find_matching_trips($1, $2, $3, $4, $5, $6, $7)
	`

	var candidates []models.MatchCandidate
	err := r.db.SelectContext(ctx, &candidates, sqlQuery,
		query.Origin.Lat,
		query.Origin.Lng,
		destLat,
		destLng,
		query.Window.Start,
		query.Window.End,
		radiusMeters,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: find_matching_trips: %v", apperrors.ErrStore, err)
	}

	return candidates, nil
}
