package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/viebus/viebus/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every request with latency and status using
// the structured logger.
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status

			fields := []logger.Field{
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
				logger.Int("status", status),
				logger.Duration("latency", latency),
				logger.String("request_id", GetRequestID(c)),
			}
			if err != nil {
				fields = append(fields, logger.Err(err))
			}

			switch {
			case status >= 500:
				zapLogger.Error("Server error", fields...)
			case status >= 400:
				zapLogger.Warn("Client error", fields...)
			default:
				zapLogger.Info("Request processed", fields...)
			}

			return nil
		}
	}
}
