package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func nominatimConfig(baseURL string) models.NominatimConfig {
	return models.NominatimConfig{
		BaseURL:        baseURL,
		UserAgent:      "RideLink-Test/1.0",
		TimeoutSeconds: 2,
	}
}

func TestNominatimResolve_Success(t *testing.T) {
	var gotQuery, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUserAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-2.0603","lon":"29.3478"}]`))
	}))
	defer server.Close()

	s := NewNominatimStrategy(nominatimConfig(server.URL), nil)
	point, ok := s.Resolve(context.Background(), "Kibuye, Rwanda")

	assert.True(t, ok)
	assert.Equal(t, -2.0603, point.Lat)
	assert.Equal(t, 29.3478, point.Lng)
	assert.Equal(t, "Kibuye, Rwanda", gotQuery)
	assert.Equal(t, "RideLink-Test/1.0", gotUserAgent)
}

func TestNominatimResolve_EmptyResultIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	s := NewNominatimStrategy(nominatimConfig(server.URL), nil)
	point, ok := s.Resolve(context.Background(), "Nowhere Specific")

	assert.False(t, ok)
	assert.Nil(t, point)
}

func TestNominatimResolve_ServerErrorIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := NewNominatimStrategy(nominatimConfig(server.URL), nil)
	point, ok := s.Resolve(context.Background(), "Kibuye")

	assert.False(t, ok)
	assert.Nil(t, point)
}

func TestNominatimResolve_MalformedBodyIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	s := NewNominatimStrategy(nominatimConfig(server.URL), nil)
	_, ok := s.Resolve(context.Background(), "Kibuye")

	assert.False(t, ok)
}

func TestNominatimResolve_UnreachableHostIsSwallowed(t *testing.T) {
	s := NewNominatimStrategy(nominatimConfig("http://127.0.0.1:1"), nil)

	_, ok := s.Resolve(context.Background(), "Kibuye")

	assert.False(t, ok)
}

func TestNominatimResolve_UnparsableCoordinatesAreSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"not-a-number","lon":"29.3478"}]`))
	}))
	defer server.Close()

	s := NewNominatimStrategy(nominatimConfig(server.URL), nil)
	_, ok := s.Resolve(context.Background(), "Kibuye")

	assert.False(t, ok)
}

func TestNominatimResolve_WritesBackToCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"-2.0603","lon":"29.3478"}]`))
	}))
	defer server.Close()

	store := newMemStore()
	cache := NewCacheStrategy(store, time.Hour)

	s := NewNominatimStrategy(nominatimConfig(server.URL), cache)
	_, ok := s.Resolve(context.Background(), "Kibuye")
	assert.True(t, ok)

	cached, ok := cache.Resolve(context.Background(), "Kibuye")
	assert.True(t, ok)
	assert.Equal(t, -2.0603, cached.Lat)
	assert.Equal(t, 29.3478, cached.Lng)
}
