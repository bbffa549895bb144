package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/point-processor/internal/domain/lock"
	"github.com/amirhossein-jamali/point-processor/internal/domain/port/persistence"
	pointUseCase "github.com/amirhossein-jamali/point-processor/internal/domain/usecase/point"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/database"
	applogger "github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/config"

	coreport "github.com/amirhossein-jamali/point-processor/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := applogger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(applogger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Storage driver selection: in-memory tables by default, postgres when configured
	var (
		userPointRepo persistence.UserPointRepository
		historyRepo   persistence.PointHistoryRepository
		closeStorage  func() error
	)
	switch cfg.Storage.Driver {
	case "postgres":
		userPointRepo, historyRepo, closeStorage, err = setupPostgres(cfg, appLogger, tp)
		if err != nil {
			appLogger.Error("Failed to set up postgres storage", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer func() { _ = closeStorage() }()
	default:
		latency := cfg.TableLatency()
		userPointRepo = memory.NewUserPointTable(tp).WithLatency(latency)
		historyRepo = memory.NewPointHistoryTable(tp).WithLatency(latency)
	}

	locks := lock.NewKeyedLock(cfg.LockTimeout())
	pointService := pointUseCase.NewPointService(userPointRepo, historyRepo, locks, appLogger)
	pointHandler := handler.NewPointHandler(pointService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, pointHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":    cfg.Server.Port,
			"env":     cfg.Environment,
			"storage": cfg.Storage.Driver,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// setupPostgres connects to the database and builds the gorm-backed repositories
func setupPostgres(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (persistence.UserPointRepository, persistence.PointHistoryRepository, func() error, error) {
	dbConfig := &database.Config{
		Host:            cfg.Storage.Database.Host,
		Port:            cfg.Storage.Database.Port,
		Username:        cfg.Storage.Database.Username,
		Password:        cfg.Storage.Database.Password,
		Database:        cfg.Storage.Database.Database,
		SSLMode:         cfg.Storage.Database.SSLMode,
		MaxOpenConns:    cfg.Storage.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Storage.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Logger.Level,
	}

	conn, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		return nil, nil, nil, err
	}

	userPointRepo := repository.NewUserPointRepository(conn.DB, tp, appLogger)
	historyRepo := repository.NewPointHistoryRepository(conn.DB, appLogger)
	return userPointRepo, historyRepo, conn.Close, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Lock.TimeoutSeconds <= 0 {
		missing = append(missing, "lock.timeoutSeconds")
	}
	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	switch cfg.Storage.Driver {
	case "memory":
	case "postgres":
		if cfg.Storage.Database.Host == "" {
			missing = append(missing, "storage.database.host (or PP_DB_HOST environment variable)")
		}
		if cfg.Storage.Database.Username == "" {
			missing = append(missing, "storage.database.username (or PP_DB_USERNAME environment variable)")
		}
		if cfg.Storage.Database.Database == "" {
			missing = append(missing, "storage.database.database (or PP_DB_NAME environment variable)")
		}
	default:
		return fmt.Errorf("invalid storage.driver value: %s, must be memory or postgres", cfg.Storage.Driver)
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
