// Package geo resolves free-text place names to coordinates through an
// ordered chain of resolver strategies: curated gazetteer first, then a
// Redis-backed cache of earlier lookups, then the Nominatim geocoder.
// Resolution is best-effort by policy: the chain never returns an error,
// only found or not-found.
package geo

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/pkg/observability"
)

// Strategy is a single resolver tier. Implementations report found or
// not-found; failures inside a tier are that tier's concern and surface as
// not-found.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, name string) (*models.GeoPoint, bool)
}

// Resolver tries each strategy in order and short-circuits on the first hit.
type Resolver struct {
	strategies []Strategy
}

// NewResolver creates a resolver from an ordered list of strategies
func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// Resolve returns the coordinates for a place name, or not-found when no
// tier can resolve it. It never fails.
func (r *Resolver) Resolve(ctx context.Context, name string) (*models.GeoPoint, bool) {
	if name == "" {
		return nil, false
	}

	for _, s := range r.strategies {
		if point, ok := s.Resolve(ctx, name); ok {
			observability.GeocodeResolutions.WithLabelValues(s.Name()).Inc()
			return point, true
		}
	}

	observability.GeocodeResolutions.WithLabelValues("miss").Inc()
	return nil, false
}
