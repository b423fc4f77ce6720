package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

const (
	maxResultCount = 20
	fieldMask      = "places.id,places.displayName,places.formattedAddress,places.location,places.types,places.rating,places.userRatingCount"
)

// GooglePlacesClient talks to the Places API (New) searchNearby endpoint.
type GooglePlacesClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGooglePlacesClient creates a new places search client
func NewGooglePlacesClient(cfg models.PlacesConfig) *GooglePlacesClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GooglePlacesClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type searchNearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	RankPreference      string              `json:"rankPreference"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchNearbyResponse struct {
	Places []placeResult `json:"places"`
}

type placeResult struct {
	ID               string   `json:"id"`
	DisplayName      *text    `json:"displayName"`
	FormattedAddress string   `json:"formattedAddress"`
	Location         latLng   `json:"location"`
	Types            []string `json:"types"`
	Rating           float64  `json:"rating"`
	UserRatingCount  int      `json:"userRatingCount"`
}

type text struct {
	Text string `json:"text"`
}

// SearchNearby queries the provider for places of the given types around
// a point, ranked by distance.
func (g *GooglePlacesClient) SearchNearby(ctx context.Context, center models.GeoPoint, radiusMeters float64, placeTypes []string) ([]models.Place, error) {
	reqBody := searchNearbyRequest{
		IncludedTypes:  placeTypes,
		MaxResultCount: maxResultCount,
		RankPreference: "DISTANCE",
		LocationRestriction: locationRestriction{
			Circle: circle{
				Center: latLng{Latitude: center.Lat, Longitude: center.Lng},
				Radius: radiusMeters,
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/places:searchNearby", g.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", g.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: places search: %v", apperrors.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warn("Places search returned non-OK status",
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(body)))
		return nil, fmt.Errorf("%w: places search status %d", apperrors.ErrProvider, resp.StatusCode)
	}

	var result searchNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode places response: %v", apperrors.ErrProvider, err)
	}

	places := make([]models.Place, 0, len(result.Places))
	for _, p := range result.Places {
		name := ""
		if p.DisplayName != nil {
			name = p.DisplayName.Text
		}
		places = append(places, models.Place{
			ID:      p.ID,
			Name:    name,
			Address: p.FormattedAddress,
			Location: models.GeoPoint{
				Lat: p.Location.Latitude,
				Lng: p.Location.Longitude,
			},
			Types:   p.Types,
			Rating:  p.Rating,
			Ratings: p.UserRatingCount,
		})
	}

	return places, nil
}
