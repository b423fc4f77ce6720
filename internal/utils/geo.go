package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// GeohashPrecision is the default cell precision used for clustering keys.
// Precision 6 is roughly a 1.2km x 0.6km cell.
const GeohashPrecision = 6

// EncodeLocation converts a point to a geohash string
func EncodeLocation(point models.GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Lat, point.Lng, precision)
}

// DecodeGeohash converts a geohash string back to a point
func DecodeGeohash(hash string) models.GeoPoint {
	lat, lng := geohash.Decode(hash)
	return models.GeoPoint{Lat: lat, Lng: lng}
}

// CalculateDistance calculates the distance between two points in
// kilometers using the Haversine formula
func CalculateDistance(p1, p2 models.GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := p1.Lat * math.Pi / 180.0
	lon1 := p1.Lng * math.Pi / 180.0
	lat2 := p2.Lat * math.Pi / 180.0
	lon2 := p2.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
