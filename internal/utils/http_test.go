package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func assertErrorBody(t *testing.T, recorder *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, recorder.Code)

	var body ErrorBody
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, message, body.Error)
}

func TestBadRequestResponse(t *testing.T) {
	c, recorder := newTestContext()

	err := BadRequestResponse(c, "Missing location data")

	assert.NoError(t, err)
	assertErrorBody(t, recorder, http.StatusBadRequest, "Missing location data")
}

func TestUnauthorizedResponse_DefaultMessage(t *testing.T) {
	c, recorder := newTestContext()

	err := UnauthorizedResponse(c, "")

	assert.NoError(t, err)
	assertErrorBody(t, recorder, http.StatusUnauthorized, "Unauthorized")
}

func TestNotFoundResponse_DefaultMessage(t *testing.T) {
	c, recorder := newTestContext()

	err := NotFoundResponse(c, "")

	assert.NoError(t, err)
	assertErrorBody(t, recorder, http.StatusNotFound, "Resource not found")
}

func TestMethodNotAllowedResponse(t *testing.T) {
	c, recorder := newTestContext()

	err := MethodNotAllowedResponse(c)

	assert.NoError(t, err)
	assertErrorBody(t, recorder, http.StatusMethodNotAllowed, "Method not allowed")
}

func TestInternalServerErrorResponse(t *testing.T) {
	c, recorder := newTestContext()

	err := InternalServerErrorResponse(c, "inference provider error")

	assert.NoError(t, err)
	assertErrorBody(t, recorder, http.StatusInternalServerError, "inference provider error")
}
