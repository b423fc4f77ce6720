package usecase

import (
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/trips"
)

// TripUC implements the trip interpretation use case interface
type TripUC struct {
	cfg       *models.Config
	generator trips.Generator
	resolver  trips.GeoResolver
	tripGW    trips.TripGW
}

// NewTripUC creates a new trip interpretation use case
func NewTripUC(
	cfg *models.Config,
	generator trips.Generator,
	resolver trips.GeoResolver,
	tripGW trips.TripGW,
) *TripUC {
	return &TripUC{
		cfg:       cfg,
		generator: generator,
		resolver:  resolver,
		tripGW:    tripGW,
	}
}
