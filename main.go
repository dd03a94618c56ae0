package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menuapi-backend/config"
	"menuapi-backend/controllers"
	"menuapi-backend/events"
	"menuapi-backend/repository"
	"menuapi-backend/routes"
	"menuapi-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.SetupLogger(cfg.Server)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher := newPublisher(cfg.Kafka, logger)
	defer publisher.Close()

	r := routes.SetupRouter(routes.Handlers{
		Auth:        controllers.NewAuthController(services.NewAuthService(store, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())),
		Restaurants: controllers.NewRestaurantController(services.NewRestaurantService(store, publisher)),
		Sections:    controllers.NewSectionController(services.NewSectionService(store, publisher)),
		Items:       controllers.NewItemController(services.NewItemService(store, publisher)),
	}, routes.Options{
		JWTSecret:      cfg.Auth.JWTSecret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	printRoutes(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Server.Port, "db_driver", cfg.Database.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects the configured backend, migrates it and starts the pool monitor.
func openStore(cfg *config.Config, logger *slog.Logger) (repository.Store, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		return repository.NewMemory(), func() {}, nil
	}

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Migrate(db, cfg.Database.Driver); err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	monitor := services.NewPoolMonitor(sqlDB, logger)
	if cfg.Monitor.PoolStatsSchedule != "" {
		if err := monitor.StartScheduler(cfg.Monitor.PoolStatsSchedule); err != nil {
			return nil, nil, err
		}
	}

	return repository.New(db), func() {
		monitor.Stop()
		if err := sqlDB.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}, nil
}

func newPublisher(cfg config.KafkaConfig, logger *slog.Logger) events.Publisher {
	if len(cfg.Brokers) == 0 {
		return events.Nop{}
	}
	logger.Info("publishing change events", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		slog.Debug("route", "method", route.Method, "path", route.Path)
	}
}
