package models

// Place is a flattened result from the external places-search provider,
// enriched with the distance from the query point and a geohash cell for
// client-side clustering.
type Place struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Location   GeoPoint `json:"location"`
	Types      []string `json:"types,omitempty"`
	Rating     float64  `json:"rating,omitempty"`
	Ratings    int      `json:"ratings,omitempty"`
	DistanceKm float64  `json:"distance_km"`
	Geohash    string   `json:"geohash"`
}
