package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/contentstore/minio"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/eventbroker/nats"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/handlers/http/chi"
	access2 "github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/handlers/http/chi/v1/access"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/handlers/http/chi/v1/event"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/handlers/http/chi/v1/record"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/repository/memory"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/repository/postgres"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/config"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/access"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/eventlog"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/geofence"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/registry"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/relay"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var uow port.UnitOfWork
	switch cfg.Store.Driver {
	case "memory":
		uow = memory.NewUnitOfWork(memory.NewStore())
		logger.Info("using in memory store")
	default:
		db, err := initDB(cfg.Database)
		if err != nil {
			logger.Error("failed to init database", "error", err)
			os.Exit(1)
		}
		defer func(db *sql.DB) {
			err := db.Close()
			if err != nil {
				logger.Error("failed to close database", "error", err)
				os.Exit(1)
			}
		}(db)
		logger.Info("db connection established")
		uow = postgres.NewUnitOfWork(db)
	}

	//storage
	contentStore, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//event broker
	publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close nats connection", "error", err)
		}
	}()

	//services
	clock := port.ClockFunc(time.Now)
	registryService := registry.NewRegistryService(uow, clock)
	accessService := access.NewAccessService(uow, clock)
	geofenceService := geofence.NewGeofenceService(uow)
	eventLogService := eventlog.NewEventLogService(uow)
	relayService := relay.NewRelayService(uow, publisher, logger, cfg.Relay.BatchSize)

	//http
	recordHandler := record.NewRecordHandlerV1(registryService, accessService, geofenceService, contentStore, logger)
	accessHandler := access2.NewAccessHandlerV1(accessService, logger)
	eventHandler := event.NewEventHandlerV1(eventLogService, logger)

	router := chi.NewRouter(logger, recordHandler, accessHandler, eventHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init relay task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initRelayTask(ctx, relayService, cfg.Relay.Interval, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initRelayTask(ctx context.Context, service port.RelayService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("relay task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			err := service.PublishPending(ctx)
			if err != nil {
				logger.Error("failed to relay events", "error", err)
			}
		case <-ctx.Done():
			logger.Info("relay task stopped")
			return
		}
	}

}
