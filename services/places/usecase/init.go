package usecase

import (
	"github.com/ridelink/ridelink/services/places"
)

// PlaceUC implements the place lookup usecase
type PlaceUC struct {
	provider places.PlaceProvider
}

// NewPlaceUC creates a new place usecase
func NewPlaceUC(provider places.PlaceProvider) *PlaceUC {
	return &PlaceUC{provider: provider}
}
