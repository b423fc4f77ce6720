package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// CORSMiddleware builds one configuration-driven CORS policy applied to
// every endpoint. The allow-list comes from config instead of per-endpoint
// literals.
func CORSMiddleware(config models.CORSConfig) echo.MiddlewareFunc {
	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			"x-client-info",
			"apikey",
		},
		AllowCredentials: true,
	})
}
