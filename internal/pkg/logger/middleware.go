package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EchoMiddleware logs every HTTP request with method, path, status and
// latency. Level follows the response class: 5xx error, 4xx warn, else info.
func EchoMiddleware(log *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			entry := log.Logger.With(
				zap.Int("status", statusCode),
				zap.String("latency", latency.String()),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("client_ip", c.RealIP()),
				zap.String("method", method),
				zap.String("path", path),
				zap.String("user_id", userID),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			switch {
			case statusCode >= 500:
				if err != nil {
					entry.Error("Server error", zap.Error(err))
				} else {
					entry.Error("Server error")
				}
			case statusCode >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}

			return err
		}
	}
}
