package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// NominatimStrategy geocodes unknown names against the OpenStreetMap
// Nominatim service. Any network or parsing failure is swallowed and
// reported as not-found; geocoding must never abort the interpretation
// pipeline. A hit is written back to the cache tier when one is attached.
type NominatimStrategy struct {
	baseURL   string
	userAgent string
	client    *http.Client
	cache     *CacheStrategy
}

// NewNominatimStrategy creates the network tier. cache may be nil.
func NewNominatimStrategy(cfg models.NominatimConfig, cache *CacheStrategy) *NominatimStrategy {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NominatimStrategy{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: timeout},
		cache:     cache,
	}
}

// Name returns the tier name used in metrics
func (s *NominatimStrategy) Name() string { return "nominatim" }

// nominatimResult is one entry of the Nominatim search response. The
// service returns coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve queries Nominatim with the raw (non-normalized) name, limited to
// one result
func (s *NominatimStrategy) Resolve(ctx context.Context, name string) (*models.GeoPoint, bool) {
	point, err := s.search(ctx, name)
	if err != nil {
		logger.Warn("Geocoding failed",
			logger.String("name", name),
			logger.Err(err))
		return nil, false
	}
	if point == nil {
		return nil, false
	}

	if s.cache != nil {
		s.cache.Store(ctx, name, point)
	}

	return point, true
}

func (s *NominatimStrategy) search(ctx context.Context, name string) (*models.GeoPoint, error) {
	reqURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", s.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Required by the Nominatim usage policy
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	return &models.GeoPoint{Lat: lat, Lng: lng}, nil
}
