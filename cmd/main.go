// Package main is the entry point for the application
// It initializes all components and starts the HTTP server
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/shivam970806/VMS/config"
	httpDelivery "github.com/shivam970806/VMS/delivery/http"
	"github.com/shivam970806/VMS/domain/event"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/pkg/jwt"
	"github.com/shivam970806/VMS/pkg/kafka"
	"github.com/shivam970806/VMS/pkg/logger"
	"github.com/shivam970806/VMS/pkg/metrics"
	"github.com/shivam970806/VMS/pkg/postgres"
	"github.com/shivam970806/VMS/pkg/redis"
	kafkaRepository "github.com/shivam970806/VMS/repository/kafka"
	pgRepository "github.com/shivam970806/VMS/repository/postgres"
	"github.com/shivam970806/VMS/usecase"
)

// openDatabase connects to the configured driver and reports whether migrations should run
func openDatabase(cfg *config.Config) (postgres.PostgresClient, bool, error) {
	if cfg.Infrastructure.Driver == config.DriverSQLite {
		client, err := postgres.NewSQLiteClient(postgres.SQLiteConfig{
			DSN:   cfg.Infrastructure.SQLite.DSN,
			Debug: cfg.Infrastructure.SQLite.Debug,
		})
		return client, cfg.Infrastructure.SQLite.IsUseMigrate, err
	}

	client, err := postgres.NewPostgresClient(postgres.Config{
		Host:            cfg.Infrastructure.Postgres.Host,
		Port:            cfg.Infrastructure.Postgres.Port,
		User:            cfg.Infrastructure.Postgres.User,
		Password:        cfg.Infrastructure.Postgres.Password,
		DBName:          cfg.Infrastructure.Postgres.DBName,
		Schema:          cfg.Infrastructure.Postgres.Schema,
		SSLMode:         cfg.Infrastructure.Postgres.SSLMode,
		MaxIdleConns:    cfg.Infrastructure.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Infrastructure.Postgres.MaxOpenConns,
		ConnMaxIdleTime: cfg.Infrastructure.Postgres.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.Infrastructure.Postgres.ConnMaxLifetime,
		ConnectTimeout:  cfg.Infrastructure.Postgres.ConnectTimeout,
		Debug:           cfg.Infrastructure.Postgres.Debug,
	})
	return client, cfg.Infrastructure.Postgres.IsUseMigrate, err
}

// main is the entry point of the application
// It performs the following steps:
// 1. Loads configuration from files or environment variables
// 2. Initializes the logger
// 3. Sets up the database connection and runs migrations
// 4. Connects the optional redis and kafka clients
// 5. Initializes the repository, usecase, and handler layers
// 6. Sets up HTTP routes
// 7. Starts the HTTP server with graceful shutdown
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewJSONDefault().Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// configure logger
	logOpts := []logger.Option{logger.WithLevel(logger.ParseLevel(cfg.Logger.Level))}
	if cfg.Logger.Format == "text" {
		logOpts = append(logOpts, logger.WithTextFormat())
	}
	appLogger := logger.NewWithOptions(logOpts...)

	dbClient, migrate, err := openDatabase(cfg)
	if err != nil {
		appLogger.Error("Failed to connect to database", "driver", cfg.Infrastructure.Driver, "error", err)
		os.Exit(1)
	}

	if migrate {
		// Run database migrations
		if err := dbClient.Migrate(model.Models()...); err != nil {
			appLogger.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	healthChecks := map[string]httpDelivery.HealthCheck{
		"database": dbClient.Ping,
	}

	var (
		appMetrics    *metrics.Metrics
		recorder      usecase.PerformanceRecorder
		limitRecorder httpDelivery.RateLimitRecorder
	)
	if cfg.Metrics.Enabled {
		appMetrics = metrics.NewDefault(cfg.Metrics.Prefix)
		recorder = appMetrics
		limitRecorder = appMetrics
	}

	var redisClient redis.RedisClient
	if cfg.Infrastructure.Redis.Enabled {
		redisClient, err = redis.NewWithConfig(cfg.Infrastructure.Redis.Config)
		if err != nil {
			appLogger.Error("Failed to connect to redis", "addrs", cfg.Infrastructure.Redis.Addrs, "error", err)
			os.Exit(1)
		}
		healthChecks["redis"] = redisClient.Ping
	}

	var (
		kafkaClient kafka.KafkaClient
		publisher   event.PerformancePublisher = event.NopPublisher{}
	)
	if cfg.Infrastructure.Kafka.Enabled {
		kafkaClient, err = kafka.NewWithConfig(cfg.Infrastructure.Kafka.Config)
		if err != nil {
			appLogger.Error("Failed to create kafka client", "brokers", cfg.Infrastructure.Kafka.Brokers, "error", err)
			os.Exit(1)
		}
		if l, ok := appLogger.(*logger.Logger); ok {
			if c, ok := kafkaClient.(*kafka.Client); ok {
				c.SetLogger(l.Logger)
			}
		}
		publisher = kafkaRepository.NewPerformancePublisher(kafkaClient, cfg.Infrastructure.Kafka.Topics.PerformanceUpdated, 0, appLogger)
		healthChecks["kafka"] = kafkaClient.Ping
	}

	jwtClient, err := jwt.NewWithConfig(jwt.TokenConfig{
		AccessTokenSecret: cfg.Security.JWT.AccessTokenSecret,
		AccessTokenExpiry: cfg.Security.JWT.AccessTokenExpiry,
		Issuer:            cfg.Security.JWT.Issuer,
	})
	if err != nil {
		appLogger.Error("Failed to initialize JWT client", "error", err)
		os.Exit(1)
	}

	// Initialize repository
	db := dbClient.GetDB()
	transactor := pgRepository.NewTransactor(db, appLogger)
	vendorRepo := pgRepository.NewVendorRepository(db, appLogger)
	orderRepo := pgRepository.NewPurchaseOrderRepository(db, appLogger)
	historyRepo := pgRepository.NewHistoricalPerformanceRepository(db, appLogger)

	// Initialize usecase
	performanceUsecase := usecase.NewPerformanceUseCase(transactor, vendorRepo, orderRepo, historyRepo, recorder, appLogger)
	orderUsecase := usecase.NewPurchaseOrderUseCase(transactor, vendorRepo, orderRepo, performanceUsecase, publisher, recorder, appLogger)
	vendorUsecase := usecase.NewVendorUseCase(transactor, vendorRepo, orderRepo, historyRepo, appLogger)

	// Initialize handlers
	vendorHandler := httpDelivery.NewVendorHandler(vendorUsecase, appLogger)
	orderHandler := httpDelivery.NewPurchaseOrderHandler(orderUsecase, appLogger)
	performanceHandler := httpDelivery.NewPerformanceHandler(performanceUsecase, appLogger)
	healthHandler := httpDelivery.NewHealthHandler(appLogger, healthChecks)

	// Initialize router
	router := httpDelivery.NewRouter(vendorHandler, orderHandler, performanceHandler, healthHandler, jwtClient, appLogger)
	router.Metrics = appMetrics
	if cfg.Server.RateLimit.Enabled {
		router.RateLimiter = httpDelivery.NewRateLimiter(redisClient, cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Window, limitRecorder, appLogger)
	}

	// Setup routes
	httpHandler := router.SetupRoutes()

	// Start server
	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Create channel to listen for interrupt signal
	quit := make(chan os.Signal, 1)

	// Register the channel to receive specific signals
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start HTTP server in a separate goroutine
	go func() {
		appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version, "port", cfg.Server.Port, "driver", cfg.Infrastructure.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit
	appLogger.Info("Shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Shutdown the server gracefully
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if kafkaClient != nil {
		if err := kafkaClient.Close(); err != nil {
			appLogger.Warn("Error closing kafka client", "error", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Warn("Error closing redis client", "error", err)
		}
	}

	// Close database connection
	if err := dbClient.Close(); err != nil {
		appLogger.Warn("Error closing database connection", "error", err)
	}

	appLogger.Info("Server exited")
}
