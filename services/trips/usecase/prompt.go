package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// transcribePrompt biases the transcription vocabulary toward regional
// place names.
const transcribePrompt = `
Transcribe this audio input accurately.
The audio is about a trip request in Rwanda, Kenya, Uganda, Tanzania, or Burundi.
Common place names include: Kigali, Huye, Musanze, Nairobi, Kampala, Dar es Salaam, etc.
Return only the transcribed text, nothing else.
`

// buildInterpretPrompt embeds the current date/time, optional user
// location and the raw input together with the temporal-inference rules
// the model is instructed to follow. The rules are a contract with the
// model; the engine does not re-validate them post-hoc.
func buildInterpretPrompt(input string, userLocation *models.GeoPoint, now time.Time) string {
	todayStr := now.Format("2006-01-02")
	currentTime := now.Format("15:04")

	var locationLine string
	if userLocation != nil {
		locationLine = fmt.Sprintf("- User's current location: %v, %v\n", userLocation.Lat, userLocation.Lng)
	}

	var b strings.Builder
	b.WriteString("You are a trip scheduling assistant for a ride-sharing app in Sub-Saharan Africa (Rwanda, Kenya, Uganda, Tanzania, Burundi).\n\n")
	b.WriteString("Current context:\n")
	fmt.Fprintf(&b, "- Today's date: %s\n", todayStr)
	fmt.Fprintf(&b, "- Current time: %s\n", currentTime)
	b.WriteString(locationLine)
	b.WriteString("\nParse the following trip request and extract structured information.\n\n")
	fmt.Fprintf(&b, "User input: %q\n\n", input)
	b.WriteString(`Instructions:
1. Extract origin and destination city/location names
2. Infer departure time from context:
   - "tomorrow" = next day at 08:00
   - "morning" = today/tomorrow at 08:00
   - "afternoon" = today/tomorrow at 14:00
   - "evening" = today/tomorrow at 18:00
   - "now" or "immediately" = current time
   - Specific times like "3pm" or "15:00" = that time today (or tomorrow if already past)
3. Extract number of seats (default to 1 if not mentioned)
4. Extract vehicle preference if mentioned (Moto Taxi, Cab, Liffan, Truck, Rent, Other)
5. Provide confidence score (0-100) based on clarity of the request
6. Generate 2-3 helpful suggestions for the trip

Respond with ONLY valid JSON in this exact format (no markdown, no code blocks):
{
  "origin": "city/location name",
  "destination": "city/location name",
  "departureTime": "YYYY-MM-DDTHH:mm:ss",
  "seats": number,
  "vehiclePreference": "vehicle type or null",
  "confidence": number (0-100),
  "suggestions": ["suggestion 1", "suggestion 2", "suggestion 3"]
}
`)

	return b.String()
}
