package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wheelshare/wheelshare/internal/pkg/config"
	"github.com/wheelshare/wheelshare/internal/pkg/database"
	"github.com/wheelshare/wheelshare/internal/pkg/health"
	"github.com/wheelshare/wheelshare/internal/pkg/logger"
	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	natspkg "github.com/wheelshare/wheelshare/internal/pkg/nats"
	nrpkg "github.com/wheelshare/wheelshare/internal/pkg/newrelic"
	"github.com/wheelshare/wheelshare/internal/pkg/payment"
	"github.com/wheelshare/wheelshare/internal/pkg/server"

	rentalsHandler "github.com/wheelshare/wheelshare/services/rentals/handler"
	rentalsGateway "github.com/wheelshare/wheelshare/services/rentals/gateway"
	rentalsRepository "github.com/wheelshare/wheelshare/services/rentals/repository"
	rentalsUsecase "github.com/wheelshare/wheelshare/services/rentals/usecase"
	reviewsHandler "github.com/wheelshare/wheelshare/services/reviews/handler"
	reviewsGateway "github.com/wheelshare/wheelshare/services/reviews/gateway"
	reviewsRepository "github.com/wheelshare/wheelshare/services/reviews/repository"
	reviewsUsecase "github.com/wheelshare/wheelshare/services/reviews/usecase"
	tripsHandler "github.com/wheelshare/wheelshare/services/trips/handler"
	tripsGateway "github.com/wheelshare/wheelshare/services/trips/gateway"
	tripsRepository "github.com/wheelshare/wheelshare/services/trips/repository"
	tripsUsecase "github.com/wheelshare/wheelshare/services/trips/usecase"
	usersHandler "github.com/wheelshare/wheelshare/services/users/handler"
	usersRepository "github.com/wheelshare/wheelshare/services/users/repository"
	usersUsecase "github.com/wheelshare/wheelshare/services/users/usecase"
	vehiclesHandler "github.com/wheelshare/wheelshare/services/vehicles/handler"
	vehiclesRepository "github.com/wheelshare/wheelshare/services/vehicles/repository"
	vehiclesUsecase "github.com/wheelshare/wheelshare/services/vehicles/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

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
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Payment collaborator
	paymentClient := payment.NewClient(configs.Payment, configs.APIKey.Payment)

	// Repositories
	vehicleRepo := vehiclesRepository.NewVehicleRepository(configs, db, redisClient)
	tripRepo := tripsRepository.NewTripRepo(configs, db)
	rentalRepo := rentalsRepository.NewRentalRepo(configs, db)
	reviewRepo := reviewsRepository.NewReviewRepo(configs, db)
	userRepo := usersRepository.NewUserRepo(configs, db)

	// Gateways
	tripGW := tripsGateway.NewTripGW(natsClient)
	rentalGW := rentalsGateway.NewRentalGW(natsClient)
	reviewGW := reviewsGateway.NewReviewGW(natsClient)

	// Use cases
	vehicleUC := vehiclesUsecase.NewVehicleUC(configs, vehicleRepo)
	tripUC := tripsUsecase.NewTripUC(configs, tripRepo, vehicleUC, tripGW, paymentClient)
	rentalUC := rentalsUsecase.NewRentalUC(configs, rentalRepo, vehicleUC, rentalGW, paymentClient)
	reviewUC := reviewsUsecase.NewReviewUC(configs, reviewRepo, reviewGW)
	userUC := usersUsecase.NewUserUC(configs, userRepo)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthSvc.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthSvc.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthSvc)

	// Register service routes
	apiKey := middleware.NewAPIKeyMiddleware(&configs.APIKey)
	usersHandler.NewHandler(userUC, configs).RegisterRoutes(e, apiKey)
	vehiclesHandler.NewHandler(vehicleUC, configs).RegisterRoutes(e, apiKey)
	tripsHandler.NewHandler(tripUC, configs).RegisterRoutes(e)
	rentalsHandler.NewHandler(rentalUC, configs).RegisterRoutes(e)
	reviewsHandler.NewHandler(reviewUC, configs).RegisterRoutes(e, apiKey)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
