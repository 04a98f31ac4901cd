package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request handled by echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Transaction is only present when the New Relic middleware runs first
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			latency := time.Since(start)
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, c.Request().Method, path, c.RealIP(), requestID, c.Response().Status, latency, err)

			return nil
		}
	}
}
