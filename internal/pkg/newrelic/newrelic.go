package newrelic

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
)

// InitNewRelic initializes New Relic application based on configuration
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	logger.Info("Initializing New Relic",
		logger.String("app_name", configs.NewRelic.AppName),
		logger.Bool("forward_logs", configs.NewRelic.ForwardLogs))

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.ErrorField(err))
		return nil
	}

	return nrApp
}

// EchoMiddleware starts a transaction per request. It is a no-op when nrApp is nil.
func EchoMiddleware(nrApp *newrelic.Application) echo.MiddlewareFunc {
	if nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(nrApp)
}
