package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/ridelink/ridelink/internal/pkg/jwt"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func jwtTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "ridelink",
	}
}

func runProtected(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()
	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/payments/transfer", nil)
	if authHeader != "" {
		request.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	var reached bool
	var userID string
	handler := JWTAuthMiddleware(jwtTestConfig())(func(c echo.Context) error {
		reached = true
		userID = UserIDFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
	return recorder, reached, userID
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &models.Config{JWT: jwtTestConfig()}
	token, _, err := jwtpkg.GenerateToken("user-1", "rider", cfg)
	assert.NoError(t, err)

	recorder, reached, userID := runProtected(t, "Bearer "+token)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-1", userID)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	recorder, reached, _ := runProtected(t, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	recorder, reached, _ := runProtected(t, "Token abc123")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	recorder, reached, _ := runProtected(t, "Bearer not.a.token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUserIDFromContext_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, UserIDFromContext(c))
}
