package usecase

import (
	"context"
	"math"

	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
)

// defaultPlaceTypes is used when the caller does not constrain the search.
var defaultPlaceTypes = []string{"electric_vehicle_charging_station"}

// FindNearby returns places around a point ordered by distance, with
// each result carrying its distance from the query point and a geohash
// cell for clustering.
func (uc *PlaceUC) FindNearby(ctx context.Context, center models.GeoPoint, radiusMeters float64, placeTypes []string) ([]models.Place, error) {
	if len(placeTypes) == 0 {
		placeTypes = defaultPlaceTypes
	}

	results, err := uc.provider.SearchNearby(ctx, center, radiusMeters, placeTypes)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.Place, 0, len(results))
	for _, place := range results {
		place.DistanceKm = roundKm(utils.CalculateDistance(center, place.Location))
		place.Geohash = utils.EncodeLocation(place.Location, utils.GeohashPrecision)
		enriched = append(enriched, place)
	}

	return enriched, nil
}

// roundKm keeps two decimal places, enough for display.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
