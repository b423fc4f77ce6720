package places

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// PlaceUC defines the place lookup usecase
type PlaceUC interface {
	// FindNearby returns places of the given types around a point,
	// ordered by distance, enriched with distance and geohash.
	FindNearby(ctx context.Context, center models.GeoPoint, radiusMeters float64, placeTypes []string) ([]models.Place, error)
}
