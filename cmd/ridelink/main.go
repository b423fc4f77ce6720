package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/config"
	"github.com/ridelink/ridelink/internal/pkg/database"
	"github.com/ridelink/ridelink/internal/pkg/health"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/middleware"
	natspkg "github.com/ridelink/ridelink/internal/pkg/nats"
	"github.com/ridelink/ridelink/internal/pkg/observability"
	"github.com/ridelink/ridelink/internal/pkg/server"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/geo"
	matchgw "github.com/ridelink/ridelink/services/match/gateway"
	matchhandler "github.com/ridelink/ridelink/services/match/handler"
	matchrepo "github.com/ridelink/ridelink/services/match/repository"
	matchuc "github.com/ridelink/ridelink/services/match/usecase"
	paymentgw "github.com/ridelink/ridelink/services/payment/gateway"
	paymenthandler "github.com/ridelink/ridelink/services/payment/handler"
	paymentrepo "github.com/ridelink/ridelink/services/payment/repository"
	paymentuc "github.com/ridelink/ridelink/services/payment/usecase"
	placesgw "github.com/ridelink/ridelink/services/places/gateway"
	placeshandler "github.com/ridelink/ridelink/services/places/handler"
	placesuc "github.com/ridelink/ridelink/services/places/usecase"
	tripsgw "github.com/ridelink/ridelink/services/trips/gateway"
	tripshandler "github.com/ridelink/ridelink/services/trips/handler"
	tripsuc "github.com/ridelink/ridelink/services/trips/usecase"
)

func main() {
	appName := "ridelink"
	configs := config.InitConfig(".env")

	// Initialize logger
	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis connection
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS connection
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Geocoding tiers: gazetteer, then cache, then Nominatim
	cacheTier := geo.NewCacheStrategy(redisClient, time.Duration(configs.Geocode.CacheTTLMinutes)*time.Minute)
	resolver := geo.NewResolver(
		geo.NewGazetteerStrategy(),
		cacheTier,
		geo.NewNominatimStrategy(configs.Nominatim, cacheTier),
	)

	// Trips service
	geminiClient := tripsgw.NewGeminiClient(configs.Gemini)
	tripGateway := tripsgw.NewTripGateway(natsClient)
	tripUC := tripsuc.NewTripUC(configs, geminiClient, resolver, tripGateway)
	tripHandler := tripshandler.NewHandler(tripUC)

	// Match service
	matchRepository := matchrepo.NewMatchRepository(postgresClient.GetDB())
	matchGateway := matchgw.NewMatchGateway(natsClient)
	matchUC := matchuc.NewMatchUC(configs, matchRepository, matchGateway)
	matchHandler := matchhandler.NewHandler(matchUC)

	// Payment service
	paymentRepository := paymentrepo.NewPaymentRepository(postgresClient.GetDB())
	paymentGateway := paymentgw.NewPaymentGateway(natsClient)
	paymentUC := paymentuc.NewPaymentUC(paymentRepository, paymentGateway)
	paymentHandler := paymenthandler.NewHandler(paymentUC, configs.JWT)

	// Places service
	placesClient := placesgw.NewGooglePlacesClient(configs.Places)
	placeUC := placesuc.NewPlaceUC(placesClient)
	placeHandler := placeshandler.NewHandler(placeUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()
	e.Use(middleware.CORSMiddleware(configs.CORS))
	e.Use(middleware.MetricsMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	observability.RegisterMetricsEndpoint(e)

	tripHandler.RegisterRoutes(e)
	matchHandler.RegisterRoutes(e)
	paymentHandler.RegisterRoutes(e)
	placeHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)

	sm := server.NewShutdownManager(zapLogger)
	sm.Register(func(context.Context) error { return postgresClient.Close() })
	sm.Register(func(context.Context) error { return redisClient.Close() })
	sm.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = sm.Shutdown(shutdownCtx)
}
