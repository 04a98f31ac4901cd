package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/locations/internal/pkg/config"
	"github.com/piresc/locations/internal/pkg/database"
	"github.com/piresc/locations/internal/pkg/health"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/middleware"
	nrpkg "github.com/piresc/locations/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/locations/internal/pkg/nsq"
	"github.com/piresc/locations/internal/pkg/server"
	"github.com/piresc/locations/services/locations/gateway"
	"github.com/piresc/locations/services/locations/handler"
	"github.com/piresc/locations/services/locations/repository"
	"github.com/piresc/locations/services/locations/usecase"
)

func main() {
	appName := "locations-service"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.ErrorField(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	if configs.Database.AutoMigrate {
		if err := database.RunMigrations(context.Background(), postgresClient.GetDB(), database.Migrations); err != nil {
			zapLogger.Fatal("Failed to run migrations", logger.ErrorField(err))
		}
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	// NSQ is optional; without it domain events are dropped
	var publisher gateway.Publisher
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.ErrorField(err))
		}
		publisher = producer
		shutdown.Register("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
	} else {
		zapLogger.Warn("NSQ_ADDRESS not set, location events will not be published")
	}

	cacheTTL := time.Duration(configs.Redis.CacheTTL) * time.Minute

	// Initialize repositories
	locationRepo := repository.NewLocationRepo(postgresClient)
	postalRepo := repository.NewPostalCodeRepo(postgresClient.GetDB(), redisClient, cacheTTL)
	geocodeCache := repository.NewGeocodeCache(redisClient, cacheTTL)

	// Initialize gateways
	locationGW := gateway.NewLocationGW(publisher)
	geocoder := gateway.NewGoogleGeocoder(configs.Geocoder, zapLogger)

	// Initialize usecase
	locationUC, err := usecase.NewLocationUC(configs, locationRepo, postalRepo, locationGW, geocoder, geocodeCache)
	if err != nil {
		zapLogger.Fatal("Failed to create location usecase", logger.ErrorField(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.CheckerFunc(func(ctx context.Context) error {
		return postgresClient.GetDB().PingContext(ctx)
	}))
	healthService.AddChecker("redis", health.CheckerFunc(func(ctx context.Context) error {
		return redisClient.GetClient().Ping(ctx).Err()
	}))
	if producer != nil {
		healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
			return producer.Ping()
		}))
	}
	health.RegisterHealthEndpoints(e, appName, healthService)

	// Register service routes
	handler.NewHandler(locationUC, configs).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger,
		fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second,
	)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.ErrorField(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to release resources", logger.ErrorField(err))
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}
}
