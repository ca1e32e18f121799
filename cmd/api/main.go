package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/wallprints/catalog-backend/api/routes"
	"github.com/wallprints/catalog-backend/internal/catalog"
	"github.com/wallprints/catalog-backend/internal/reference"
	"github.com/wallprints/catalog-backend/internal/resolution"
	"github.com/wallprints/catalog-backend/pkg/config"
	"github.com/wallprints/catalog-backend/pkg/db"
	"github.com/wallprints/catalog-backend/pkg/logger"
	"github.com/wallprints/catalog-backend/pkg/metrics"
	"github.com/wallprints/catalog-backend/pkg/migrate"
	"github.com/wallprints/catalog-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	referenceRepo := reference.NewRepository(dbClient.DB())
	catalogRepo := catalog.NewRepository(dbClient.DB())
	resolutionMetrics := metrics.NewResolutionMetrics(prometheus.DefaultRegisterer)

	catalogResolver, err := resolution.NewService(resolution.ServiceParams{
		Store:   referenceRepo,
		Logger:  logg,
		Metrics: resolutionMetrics,
		Source:  "catalog",
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog resolver", err)
		os.Exit(1)
	}
	adhocResolver, err := resolution.NewService(resolution.ServiceParams{
		Store:   referenceRepo,
		Logger:  logg,
		Metrics: resolutionMetrics,
		Source:  "adhoc",
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create adhoc resolver", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Cache:           redisClient,
			Products:        catalogRepo,
			LayoutCache:     redisClient,
			CatalogResolver: catalogResolver,
			AdhocResolver:   adhocResolver,
		}),
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		closeErr := multierr.Combine(
			server.Shutdown(shutdownCtx),
			redisClient.Close(),
			dbClient.Close(),
		)
		if closeErr != nil {
			logg.Error(ctx, "shutdown finished with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
