package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

const (
	maxSuggestions   = 3
	errSnippetLength = 100
)

// stripCodeFences removes markdown code-fence markers a model sometimes
// wraps around its JSON reply.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseDraft parses a provider reply strictly as a trip draft. It is a
// pure function so it can be tested against captured responses. A parse
// failure carries a truncated snippet of the offending text for
// diagnostics.
func parseDraft(raw string) (*models.TripDraft, error) {
	clean := stripCodeFences(raw)

	var draft models.TripDraft
	if err := json.Unmarshal([]byte(clean), &draft); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInterpretation, snippet(clean, errSnippetLength))
	}

	// Guard the draft invariants even when the model drifts
	if draft.Seats < 1 {
		draft.Seats = 1
	}
	if draft.Confidence < 0 {
		draft.Confidence = 0
	}
	if draft.Confidence > 100 {
		draft.Confidence = 100
	}
	if len(draft.Suggestions) > maxSuggestions {
		draft.Suggestions = draft.Suggestions[:maxSuggestions]
	}

	return &draft, nil
}

func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
