package models

import "time"

// MatchQuery carries the parameters for a trip-matching search. Origin is
// required; destination is optional and widens the candidate pool when
// absent.
type MatchQuery struct {
	Origin      *GeoPoint
	Destination *GeoPoint
	Window      TimeWindow
}

// MatchCandidate is a row returned by the store's find_matching_trips
// procedure. The engine passes it through without interpreting it beyond
// what the store already filtered; ordering is the store's contract
// (distance ascending).
type MatchCandidate struct {
	TripID         string    `json:"trip_id" db:"trip_id"`
	DriverID       string    `json:"driver_id" db:"driver_id"`
	OriginLat      float64   `json:"origin_lat" db:"origin_lat"`
	OriginLng      float64   `json:"origin_lng" db:"origin_lng"`
	DestinationLat float64   `json:"destination_lat" db:"destination_lat"`
	DestinationLng float64   `json:"destination_lng" db:"destination_lng"`
	DepartureTime  time.Time `json:"departure_time" db:"departure_time"`
	SeatsAvailable int       `json:"seats_available" db:"seats_available"`
	DistanceMeters float64   `json:"distance_meters" db:"distance_meters"`
}

// MatchSearchedEvent is published after each matching query.
type MatchSearchedEvent struct {
	RequestID string    `json:"request_id"`
	Origin    GeoPoint  `json:"origin"`
	Window    TimeWindow `json:"window"`
	Results   int       `json:"results"`
}
