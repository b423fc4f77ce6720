package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	handler := NewPingHandler("ridelink")
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var info BuildInfo
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &info))
	assert.Equal(t, "ridelink", info.ServiceName)
	assert.NotEmpty(t, info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "ridelink")

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		request := httptest.NewRequest(http.MethodGet, path, nil)
		recorder := httptest.NewRecorder()
		e.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code, "path %s", path)
		assert.Equal(t, "OK", recorder.Body.String())
	}
}
