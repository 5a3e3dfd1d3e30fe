package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/calderasoft/erp-backend/api/controllers"
	"github.com/calderasoft/erp-backend/api/routes"
	"github.com/calderasoft/erp-backend/internal/analytics"
	"github.com/calderasoft/erp-backend/internal/dashboard"
	"github.com/calderasoft/erp-backend/internal/finance"
	"github.com/calderasoft/erp-backend/internal/inventory"
	"github.com/calderasoft/erp-backend/internal/mrp"
	"github.com/calderasoft/erp-backend/internal/procurement"
	"github.com/calderasoft/erp-backend/internal/projects"
	"github.com/calderasoft/erp-backend/internal/sales"
	"github.com/calderasoft/erp-backend/pkg/config"
	"github.com/calderasoft/erp-backend/pkg/db"
	"github.com/calderasoft/erp-backend/pkg/logger"
	"github.com/calderasoft/erp-backend/pkg/metrics"
	"github.com/calderasoft/erp-backend/pkg/migrate"
	"github.com/calderasoft/erp-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

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

	var redisClient *redis.Client
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	financeService, err := finance.NewService(finance.NewRepository(dbClient.DB()), dbClient)
	requireResource(logg, "finance service", err)

	inventoryService, err := inventory.NewService(inventory.NewRepository(dbClient.DB()), logg, cfg.FeatureFlags.DegradedFallback)
	requireResource(logg, "inventory service", err)

	salesService, err := sales.NewService(sales.NewRepository(dbClient.DB()), dbClient, inventoryService)
	requireResource(logg, "sales service", err)

	procurementService, err := procurement.NewService(procurement.NewRepository(dbClient.DB()), dbClient, inventoryService)
	requireResource(logg, "procurement service", err)

	projectsService, err := projects.NewService(projects.NewRepository(dbClient.DB()), dbClient)
	requireResource(logg, "projects service", err)

	mrpService, err := mrp.NewService(mrp.NewRepository(dbClient.DB()))
	requireResource(logg, "mrp service", err)

	analyticsService, err := analytics.NewService(analytics.NewRepository(dbClient.DB()))
	requireResource(logg, "analytics service", err)

	var dashboardCache redis.Cache
	if redisClient != nil && cfg.FeatureFlags.DashboardCache {
		dashboardCache = redisClient
	}
	dashboardService, err := dashboard.NewService(dashboard.NewRepository(dbClient.DB()), logg, dashboardCache, cfg.Dashboard.CacheTTL, cfg.FeatureFlags.DegradedFallback)
	requireResource(logg, "dashboard service", err)

	deps := map[string]controllers.Pinger{"database": dbClient}
	if redisClient != nil {
		deps["redis"] = redisClient
	}

	router := routes.NewRouter(cfg, logg, registry, httpMetrics, deps, routes.Services{
		Finance:     financeService,
		Inventory:   inventoryService,
		Sales:       salesService,
		Procurement: procurementService,
		Projects:    projectsService,
		MRP:         mrpService,
		Analytics:   analyticsService,
		Dashboard:   dashboardService,
	})

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
		Addr:    addr,
		Handler: router,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	var closeErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		closeErr = multierr.Append(closeErr, err)
	}
	if redisClient != nil {
		closeErr = multierr.Append(closeErr, redisClient.Close())
	}
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}

func requireResource(logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "resource not working: "+resource, err)
	os.Exit(1)
}
