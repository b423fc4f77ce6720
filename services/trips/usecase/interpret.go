package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/pkg/observability"
)

// InterpretTrip runs the interpretation pipeline: optional transcription,
// prompted extraction, then best-effort geocoding of both endpoints.
func (uc *TripUC) InterpretTrip(ctx context.Context, input models.TripInput) (*models.TripDraft, error) {
	text := input.Text

	if input.InputType == "voice" && input.AudioData != "" {
		transcribed, err := uc.transcribe(ctx, input.AudioData)
		if err != nil {
			observability.InterpretationsTotal.WithLabelValues("provider_error").Inc()
			return nil, err
		}
		text = transcribed
	}

	draft, err := uc.interpret(ctx, text, input.UserLocation, time.Now())
	if err != nil {
		return nil, err
	}

	uc.resolveEndpoints(ctx, draft)

	event := models.TripInterpretedEvent{
		RequestID: uuid.New().String(),
		Draft:     *draft,
		InputType: input.InputType,
	}
	if err := uc.tripGW.PublishTripInterpreted(ctx, event); err != nil {
		// Event delivery is best-effort; the draft is still returned
		logger.Warn("Failed to publish trip interpreted event", logger.Err(err))
	}

	observability.InterpretationsTotal.WithLabelValues("success").Inc()
	return draft, nil
}

// transcribe converts a voice payload to text via the inference provider
func (uc *TripUC) transcribe(ctx context.Context, audioBase64 string) (string, error) {
	observability.TranscriptionsTotal.Inc()
	return uc.generator.GenerateFromAudio(ctx, transcribePrompt, audioBase64)
}

// interpret sends the extraction prompt and parses the structured reply
func (uc *TripUC) interpret(ctx context.Context, text string, userLocation *models.GeoPoint, now time.Time) (*models.TripDraft, error) {
	prompt := buildInterpretPrompt(text, userLocation, now)

	raw, err := uc.generator.GenerateText(ctx, prompt)
	if err != nil {
		observability.InterpretationsTotal.WithLabelValues("provider_error").Inc()
		return nil, err
	}

	draft, err := parseDraft(raw)
	if err != nil {
		observability.InterpretationsTotal.WithLabelValues("parse_error").Inc()
		return nil, err
	}

	return draft, nil
}

// resolveEndpoints geocodes origin and destination concurrently. The two
// lookups are independent; a miss leaves the coordinate nil by policy.
func (uc *TripUC) resolveEndpoints(ctx context.Context, draft *models.TripDraft) {
	var wg sync.WaitGroup

	if draft.Origin != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if point, ok := uc.resolver.Resolve(ctx, draft.Origin); ok {
				draft.OriginCoordinates = point
			}
		}()
	}

	if draft.Destination != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if point, ok := uc.resolver.Resolve(ctx, draft.Destination); ok {
				draft.DestinationCoordinates = point
			}
		}()
	}

	wg.Wait()
}
