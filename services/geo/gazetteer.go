package geo

import (
	"context"
	"strings"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// knownLocations is the curated gazetteer of regional localities with
// city-level coordinates. Alias entries mapping to identical coordinates
// are intentional (historical names).
var knownLocations = map[string]models.GeoPoint{
	"kigali":        {Lat: -1.9441, Lng: 30.0619},
	"huye":          {Lat: -2.5969, Lng: 29.7389},
	"musanze":       {Lat: -1.4992, Lng: 29.635},
	"rubavu":        {Lat: -1.6775, Lng: 29.26},
	"nyagatare":     {Lat: -1.2986, Lng: 30.3275},
	"muhanga":       {Lat: -2.0839, Lng: 29.7528},
	"ruhango":       {Lat: -2.2167, Lng: 29.7833},
	"nairobi":       {Lat: -1.2921, Lng: 36.8219},
	"mombasa":       {Lat: -4.0435, Lng: 39.6682},
	"kampala":       {Lat: 0.3476, Lng: 32.5825},
	"dar es salaam": {Lat: -6.7924, Lng: 39.2083},
	"bujumbura":     {Lat: -3.3614, Lng: 29.3599},
	"gisenyi":       {Lat: -1.7028, Lng: 29.2567},
	"butare":        {Lat: -2.5969, Lng: 29.7389}, // same city as Huye
	"cyangugu":      {Lat: -2.4847, Lng: 28.9075},
	"rwamagana":     {Lat: -1.9494, Lng: 30.4347},
	"kayonza":       {Lat: -1.8608, Lng: 30.6567},
	"byumba":        {Lat: -1.5764, Lng: 30.0672},
	"gitarama":      {Lat: -2.0747, Lng: 29.7567}, // Muhanga old name
}

// GazetteerStrategy resolves well-known place names without a network
// call. This tier is authoritative: a hit ends the chain.
type GazetteerStrategy struct{}

// NewGazetteerStrategy creates the gazetteer tier
func NewGazetteerStrategy() *GazetteerStrategy {
	return &GazetteerStrategy{}
}

// Name returns the tier name used in metrics
func (s *GazetteerStrategy) Name() string { return "gazetteer" }

// Resolve looks the name up case-insensitively after trimming whitespace
func (s *GazetteerStrategy) Resolve(_ context.Context, name string) (*models.GeoPoint, bool) {
	normalized := NormalizeName(name)
	if point, ok := knownLocations[normalized]; ok {
		p := point
		return &p, true
	}
	return nil, false
}

// NormalizeName lowercases and trims a place name for lookup keys
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
