package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ridepulse/ridepulse/internal/pkg/config"
	"github.com/ridepulse/ridepulse/internal/pkg/database"
	"github.com/ridepulse/ridepulse/internal/pkg/health"
	"github.com/ridepulse/ridepulse/internal/pkg/logger"
	"github.com/ridepulse/ridepulse/internal/pkg/nats"
	"github.com/ridepulse/ridepulse/internal/pkg/server"
	"github.com/ridepulse/ridepulse/internal/pkg/websocket"

	balancegateway "github.com/ridepulse/ridepulse/services/balance/gateway"
	balancehandler "github.com/ridepulse/ridepulse/services/balance/handler"
	balancerepository "github.com/ridepulse/ridepulse/services/balance/repository"
	balanceusecase "github.com/ridepulse/ridepulse/services/balance/usecase"
	dispatchgateway "github.com/ridepulse/ridepulse/services/dispatch/gateway"
	dispatchhandler "github.com/ridepulse/ridepulse/services/dispatch/handler"
	dispatchusecase "github.com/ridepulse/ridepulse/services/dispatch/usecase"
	locationgateway "github.com/ridepulse/ridepulse/services/location/gateway"
	locationhandler "github.com/ridepulse/ridepulse/services/location/handler"
	locationprovider "github.com/ridepulse/ridepulse/services/location/provider"
	locationrepository "github.com/ridepulse/ridepulse/services/location/repository"
	locationusecase "github.com/ridepulse/ridepulse/services/location/usecase"
	matchgateway "github.com/ridepulse/ridepulse/services/match/gateway"
	matchhandler "github.com/ridepulse/ridepulse/services/match/handler"
	matchrepository "github.com/ridepulse/ridepulse/services/match/repository"
	matchusecase "github.com/ridepulse/ridepulse/services/match/usecase"
	sosgateway "github.com/ridepulse/ridepulse/services/sos/gateway"
	soshandler "github.com/ridepulse/ridepulse/services/sos/handler"
	sosusecase "github.com/ridepulse/ridepulse/services/sos/usecase"
	tripsgateway "github.com/ridepulse/ridepulse/services/trips/gateway"
	tripshandler "github.com/ridepulse/ridepulse/services/trips/handler"
	tripsrepository "github.com/ridepulse/ridepulse/services/trips/repository"
	tripsusecase "github.com/ridepulse/ridepulse/services/trips/usecase"
)

func main() {
	appName := "ridepulse-dispatch"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	// Infrastructure clients
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	wsManager := websocket.NewManager(configs.JWT)

	// Trip lifecycle
	tripRepo := tripsrepository.NewTripRepository(configs, postgresClient.GetDB())
	tripGW := tripsgateway.NewTripGW(natsClient)
	tripUC := tripsusecase.NewTripUC(configs, tripRepo, tripGW)
	tripHandler := tripshandler.NewHandler(tripUC, configs.JWT)

	// Offer/matching
	matchRepo := matchrepository.NewMatchRepository(configs, postgresClient.GetDB(), redisClient)
	matchGW := matchgateway.NewMatchGW(natsClient)
	matchUC := matchusecase.NewMatchUC(configs, matchRepo, tripRepo, matchGW)
	matchHandler := matchhandler.NewHandler(matchUC, configs.JWT)

	// Balance gate
	balanceRepo := balancerepository.NewBalanceRepo(redisClient)
	balanceGW := balancegateway.NewBalanceGW(configs)
	balanceUC := balanceusecase.NewBalanceUC(configs, balanceRepo, balanceGW)
	balanceHandler := balancehandler.NewHandler(balanceUC, configs.JWT)

	// Location tracking
	streamProvider := locationprovider.NewStreamProvider()
	locationRepo := locationrepository.NewLocationRepo(redisClient)
	locationGW := locationgateway.NewLocationGW(natsClient)
	locationUC := locationusecase.NewLocationUC(configs, locationRepo, locationGW, streamProvider, balanceUC)
	locationHandler := locationhandler.NewHandler(locationUC, configs.JWT)

	// Dispatch sessions
	dispatchGW := dispatchgateway.NewDispatchGW(configs, wsManager)
	dispatchUC := dispatchusecase.NewDispatchUC(configs, dispatchGW, matchUC, locationUC)
	dispatchHandler := dispatchhandler.NewHandler(dispatchUC, locationUC, natsClient, wsManager)

	// Safety escalation
	sosGW := sosgateway.NewSOSGW(configs, natsClient)
	sosUC := sosusecase.NewSOSUC(configs, sosGW, dispatchGW, dispatchUC, streamProvider)
	sosHandler := soshandler.NewHandler(sosUC, configs.JWT)

	if err := dispatchHandler.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()

	// Register health and metrics endpoints
	health.RegisterHealthEndpoints(e, appName)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Register service routes
	tripHandler.RegisterRoutes(e)
	matchHandler.RegisterRoutes(e)
	balanceHandler.RegisterRoutes(e)
	locationHandler.RegisterRoutes(e)
	dispatchHandler.RegisterRoutes(e)
	sosHandler.RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(ctx context.Context) error {
		dispatchHandler.Stop()
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		logger.Error("Shutdown finished with errors", logger.Err(err))
	}
}
