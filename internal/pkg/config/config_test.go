package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnv("TEST_STRING_MISSING", "default"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "not-a-number")

	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_INT_BAD", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_INT_MISSING", 7))
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "1000.5")

	assert.Equal(t, 1000.5, GetEnvAsFloat("TEST_FLOAT", 1))
	assert.Equal(t, 1.0, GetEnvAsFloat("TEST_FLOAT_MISSING", 1))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BOOL_BAD", "not-a-bool")

	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("TEST_BOOL_BAD", false))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", "a, b ,c")

	assert.Equal(t, []string{"a", "b", "c"}, GetEnvAsSlice("TEST_SLICE", nil))
	assert.Equal(t, []string{"x"}, GetEnvAsSlice("TEST_SLICE_MISSING", []string{"x"}))
}

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	configs := InitConfig("")

	assert.Equal(t, "ridelink", configs.App.Name)
	assert.Equal(t, 9990, configs.Server.Port)
	assert.Equal(t, 1000.0, configs.Match.RadiusMeters)
	assert.Equal(t, "gemini-2.0-flash-exp", configs.Gemini.Model)
	assert.Equal(t, "https://nominatim.openstreetmap.org", configs.Nominatim.BaseURL)
	assert.Equal(t, 1440, configs.Geocode.CacheTTLMinutes)
	assert.Contains(t, configs.CORS.AllowedOrigins, "https://ridelink.app")
}
