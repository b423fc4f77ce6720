package trips

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// TripUC defines the interface for trip interpretation business logic
type TripUC interface {
	// InterpretTrip turns free-form text or voice input into a structured
	// trip draft with geocoded endpoints where resolution succeeds.
	InterpretTrip(ctx context.Context, input models.TripInput) (*models.TripDraft, error)
}

// GeoResolver resolves a place name to coordinates, best-effort. A false
// return means the name could not be resolved; that is not an error.
type GeoResolver interface {
	Resolve(ctx context.Context, name string) (*models.GeoPoint, bool)
}
