package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"dispatch/internal/app"
	"dispatch/internal/auth"
	"dispatch/internal/config"
	"dispatch/internal/handler"
	internalRedis "dispatch/internal/redis"
	"dispatch/internal/repository/mongodb"
	"dispatch/internal/service"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before the stores so we can instrument them).
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize MongoDB with New Relic instrumentation.
	client, db, err := app.NewMongo(ctx, cfg.Mongo, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer client.Disconnect(context.Background())
	log.Println("Connected to MongoDB")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(client, db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(client *mongo.Client, db *mongo.Database, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	lockStore := internalRedis.NewLockStore(redisClient)

	// Initialize repositories.
	userRepo := mongodb.NewUserRepository(db)
	riderRepo := mongodb.NewRiderRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	warehouseRepo := mongodb.NewWarehouseRepository(db)
	couponRepo := mongodb.NewCouponRepository(db)
	txRunner := mongodb.NewTxRunner(client)

	// Initialize services.
	tokenManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userService := service.NewUserService(userRepo, orderRepo, tokenManager)
	riderService := service.NewRiderService(riderRepo, orderRepo, tokenManager)
	orderService := service.NewOrderService(orderRepo, userRepo, riderRepo, couponRepo, txRunner)
	dispatchService := service.NewDispatchService(riderRepo, orderRepo, lockStore, txRunner)
	warehouseService := service.NewWarehouseService(warehouseRepo)
	couponService := service.NewCouponService(couponRepo)

	// Initialize handlers.
	userHandler := handler.NewUserHandler(userService)
	riderHandler := handler.NewRiderHandler(riderService, dispatchService)
	orderHandler := handler.NewOrderHandler(orderService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	couponHandler := handler.NewCouponHandler(couponService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		UserHandler:      userHandler,
		RiderHandler:     riderHandler,
		OrderHandler:     orderHandler,
		WarehouseHandler: warehouseHandler,
		CouponHandler:    couponHandler,
		TokenManager:     tokenManager,
		RedisClient:      redisClient,
		NewRelicApp:      nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
