package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/ridelink/ridelink/internal/pkg/jwt"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT bearer authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set("user_id", fmt.Sprintf("%v", userID))
			if role, ok := (*claims)["role"]; ok {
				c.Set("user_role", fmt.Sprintf("%v", role))
			}

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user ID set by the JWT
// middleware, or empty string when the request is unauthenticated.
func UserIDFromContext(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok {
		return v
	}
	return ""
}
