package trips

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// Generator is the boundary to the external inference provider. Isolating
// it keeps prompt construction and response parsing testable against
// captured responses.
type Generator interface {
	// GenerateText sends a text prompt and returns the first candidate's
	// trimmed text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateFromAudio sends a prompt plus inline audio and returns the
	// first candidate's trimmed text.
	GenerateFromAudio(ctx context.Context, prompt, audioBase64 string) (string, error)
}

// TripGW defines the interface for trip event publication
type TripGW interface {
	PublishTripInterpreted(ctx context.Context, event models.TripInterpretedEvent) error
}
