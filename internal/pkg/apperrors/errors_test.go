package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpersMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: missing location data", ErrValidation)

	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsUnauthorized(wrapped))
	assert.False(t, IsStore(wrapped))
}

func TestHelpersRejectUnrelatedErrors(t *testing.T) {
	err := errors.New("something else")

	assert.False(t, IsValidation(err))
	assert.False(t, IsUnauthorized(err))
	assert.False(t, IsStore(err))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrValidation, ErrUnauthorized, ErrProvider, ErrInterpretation, ErrStore}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b))
		}
	}
}
