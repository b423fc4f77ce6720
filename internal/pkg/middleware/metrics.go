package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/observability"
)

// MetricsMiddleware records request counts and latencies per route
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			observability.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			observability.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
