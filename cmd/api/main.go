package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/stockroomhq/inventory-backend/api/routes"
	"github.com/stockroomhq/inventory-backend/internal/inventory"
	"github.com/stockroomhq/inventory-backend/pkg/config"
	"github.com/stockroomhq/inventory-backend/pkg/db"
	"github.com/stockroomhq/inventory-backend/pkg/logger"
	"github.com/stockroomhq/inventory-backend/pkg/migrate"
)

func main() {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "inventory-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "db.connect", err)
		return
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "db.migrate", err)
		return
	}

	repo, err := inventory.NewRepository(dbClient.DB())
	if err != nil {
		logg.Error(ctx, "inventory.repository", err)
		return
	}
	svc, err := inventory.NewService(repo, dbClient)
	if err != nil {
		logg.Error(ctx, "inventory.service", err)
		return
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := routes.New(routes.Deps{
		Inventory: svc,
		Logger:    logg,
		Registry:  registry,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "addr", server.Addr), "server.listening")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "server.failed", err)
		}
	case <-ctx.Done():
		logg.Info(context.Background(), "server.shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(context.Background(), "server.shutdown.failed", err)
		}
	}
}
