package geo

import (
	"context"
	"testing"

	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

// stubStrategy is a fixed-answer tier for chain-order tests.
type stubStrategy struct {
	name   string
	point  *models.GeoPoint
	found  bool
	called int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Resolve(_ context.Context, _ string) (*models.GeoPoint, bool) {
	s.called++
	return s.point, s.found
}

func TestResolver_FirstTierShortCircuits(t *testing.T) {
	first := &stubStrategy{name: "first", point: &models.GeoPoint{Lat: 1, Lng: 2}, found: true}
	second := &stubStrategy{name: "second", point: &models.GeoPoint{Lat: 9, Lng: 9}, found: true}

	r := NewResolver(first, second)
	point, ok := r.Resolve(context.Background(), "somewhere")

	assert.True(t, ok)
	assert.Equal(t, 1.0, point.Lat)
	assert.Equal(t, 1, first.called)
	assert.Equal(t, 0, second.called)
}

func TestResolver_FallsThroughToNextTier(t *testing.T) {
	first := &stubStrategy{name: "first"}
	second := &stubStrategy{name: "second", point: &models.GeoPoint{Lat: 3, Lng: 4}, found: true}

	r := NewResolver(first, second)
	point, ok := r.Resolve(context.Background(), "somewhere")

	assert.True(t, ok)
	assert.Equal(t, 3.0, point.Lat)
	assert.Equal(t, 1, first.called)
	assert.Equal(t, 1, second.called)
}

func TestResolver_AllTiersMiss(t *testing.T) {
	first := &stubStrategy{name: "first"}
	second := &stubStrategy{name: "second"}

	r := NewResolver(first, second)
	point, ok := r.Resolve(context.Background(), "nowhere")

	assert.False(t, ok)
	assert.Nil(t, point)
	assert.Equal(t, 1, first.called)
	assert.Equal(t, 1, second.called)
}

func TestResolver_EmptyNameSkipsAllTiers(t *testing.T) {
	tier := &stubStrategy{name: "tier", point: &models.GeoPoint{Lat: 1, Lng: 1}, found: true}

	r := NewResolver(tier)
	point, ok := r.Resolve(context.Background(), "")

	assert.False(t, ok)
	assert.Nil(t, point)
	assert.Equal(t, 0, tier.called)
}

func TestResolver_GazetteerOnlyChainResolvesOffline(t *testing.T) {
	r := NewResolver(NewGazetteerStrategy())

	point, ok := r.Resolve(context.Background(), "Huye")

	assert.True(t, ok)
	assert.Equal(t, -2.5969, point.Lat)
	assert.Equal(t, 29.7389, point.Lng)
}
