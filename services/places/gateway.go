package places

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// PlaceProvider is the external place search backend.
type PlaceProvider interface {
	SearchNearby(ctx context.Context, center models.GeoPoint, radiusMeters float64, placeTypes []string) ([]models.Place, error)
}
