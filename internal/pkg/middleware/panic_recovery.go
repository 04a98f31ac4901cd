package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with the
// stack trace and answers with a 500 envelope.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) error {
	stackTrace := string(debug.Stack())
	req := c.Request()
	requestID := getRequestID(c)

	fields := []logger.Field{
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	}

	if txn := newrelic.FromContext(req.Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  fmt.Sprintf("%T", r),
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
		zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing", fields...)
	} else {
		zapLogger.Error("Panic recovered during request processing", fields...)
	}

	if c.Response().Committed {
		return nil
	}
	return utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request")
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	if requestID := c.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	if requestID := c.Get("request_id"); requestID != nil {
		return fmt.Sprintf("%v", requestID)
	}
	return ""
}
