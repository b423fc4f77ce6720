package apperrors

import "errors"

var (
	// ErrValidation is returned when a required field is missing or
	// malformed. Always client-caused, always a 400.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned when no authenticated identity is
	// present on a request that requires one.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrProvider is returned when an external inference, geocoding or
	// places call returns a non-success response. Never retried.
	ErrProvider = errors.New("provider request failed")

	// ErrInterpretation is returned when the inference provider's reply
	// cannot be parsed into the expected structured shape. The wrapping
	// error carries a truncated snippet of the offending text.
	ErrInterpretation = errors.New("failed to parse AI response")

	// ErrStore is returned when a store query or procedure call fails.
	ErrStore = errors.New("store request failed")
)

// IsValidation reports whether err is client-caused input validation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsUnauthorized reports whether err is a missing or invalid identity.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsStore reports whether err originated in the persistence layer.
func IsStore(err error) bool { return errors.Is(err, ErrStore) }
