package models

import "time"

// GeoPoint is a WGS-84 coordinate pair. Both fields are required; no
// further range validation is performed.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TimeWindow bounds a departure-time search. Callers are expected to pass
// start <= end; an inverted window simply matches nothing.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
