package models

// Vehicle preference values a draft may carry.
const (
	VehicleMotoTaxi = "Moto Taxi"
	VehicleCab      = "Cab"
	VehicleLiffan   = "Liffan"
	VehicleTruck    = "Truck"
	VehicleRent     = "Rent"
	VehicleOther    = "Other"
)

// TripDraft is the structured form of a free-text or voice trip request.
// Coordinates are attached after geocoding and stay nil when resolution
// fails; a nil coordinate is a degraded-confidence signal, not an error.
type TripDraft struct {
	Origin                 string    `json:"origin"`
	Destination            string    `json:"destination"`
	DepartureTime          string    `json:"departureTime"` // ISO-8601 local civil time, no offset
	Seats                  int       `json:"seats"`
	VehiclePreference      *string   `json:"vehiclePreference"`
	OriginCoordinates      *GeoPoint `json:"originCoordinates,omitempty"`
	DestinationCoordinates *GeoPoint `json:"destinationCoordinates,omitempty"`
	Confidence             int       `json:"confidence"`
	Suggestions            []string  `json:"suggestions,omitempty"`
}

// TripInput carries one interpretation request through the pipeline.
// Either Text or AudioData must be present; AudioData is only consulted
// when InputType is "voice".
type TripInput struct {
	Text         string
	InputType    string
	AudioData    string // base64 encoded audio
	UserLocation *GeoPoint
}

// TripInterpretedEvent is published after a draft has been produced and
// geocoded. Notification delivery is a downstream consumer's concern.
type TripInterpretedEvent struct {
	RequestID string    `json:"request_id"`
	Draft     TripDraft `json:"draft"`
	InputType string    `json:"input_type"`
}
