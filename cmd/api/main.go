package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmfuentes/smartcart-backend/api/routes"
	"github.com/dmfuentes/smartcart-backend/internal/catalog"
	"github.com/dmfuentes/smartcart-backend/internal/deals"
	"github.com/dmfuentes/smartcart-backend/internal/list"
	"github.com/dmfuentes/smartcart-backend/internal/planner"
	"github.com/dmfuentes/smartcart-backend/internal/pricing"
	"github.com/dmfuentes/smartcart-backend/internal/quantity"
	"github.com/dmfuentes/smartcart-backend/internal/retailers"
	"github.com/dmfuentes/smartcart-backend/pkg/config"
	"github.com/dmfuentes/smartcart-backend/pkg/db"
	"github.com/dmfuentes/smartcart-backend/pkg/logger"
	"github.com/dmfuentes/smartcart-backend/pkg/metrics"
	"github.com/dmfuentes/smartcart-backend/pkg/migrate"
	"github.com/dmfuentes/smartcart-backend/pkg/redis"
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
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis is optional: without it quotes are computed fresh on every plan.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Warn(context.Background(), "redis unavailable, continuing without quote cache")
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logg.Error(context.Background(), "error closing redis", err)
				}
			}()
		}
	}

	var quoteCache redis.QuoteCache
	var redisPinger redis.Pinger
	if redisClient != nil {
		quoteCache = redisClient
		redisPinger = redisClient
	}

	registry := prometheus.NewRegistry()
	plannerMetrics := metrics.NewPlannerMetrics(registry)

	catalogService := catalog.NewService(catalog.ServiceParams{
		Log: logg.Component("catalog"),
	})
	quantityService := quantity.NewService(quantity.ServiceParams{
		Catalog: catalogService,
		Log:     logg.Component("quantity"),
	})

	listService, err := list.NewService(list.ServiceParams{
		Repo:       list.NewRepository(dbClient.DB()),
		Catalog:    catalogService,
		Normalizer: quantityService,
		Log:        logg.Component("list"),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create list service", err)
		os.Exit(1)
	}

	retailerService, err := retailers.NewService(retailers.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create retailer service", err)
		os.Exit(1)
	}

	dealService, err := deals.NewService(deals.ServiceParams{
		Repo:      deals.NewRepository(dbClient.DB()),
		Retailers: retailers.NewRepository(dbClient.DB()),
		Cache:     quoteCache,
		Log:       logg.Component("deals"),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create deal service", err)
		os.Exit(1)
	}

	pricingService, err := pricing.NewService(pricing.ServiceParams{
		Catalog: catalogService,
		Deals:   dealService,
		Cache:   quoteCache,
		Config:  cfg.Pricing,
		Log:     logg.Component("pricing"),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing service", err)
		os.Exit(1)
	}

	plannerService, err := planner.NewService(planner.ServiceParams{
		Lists:       listService,
		Retailers:   retailerService,
		Oracle:      pricingService,
		Suggestions: listService,
		Metrics:     plannerMetrics,
		Pricing:     cfg.Pricing,
		Planner:     cfg.Planner,
		Log:         logg.Component("planner"),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create planner service", err)
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
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisPinger,
			registry,
			catalogService,
			quantityService,
			listService,
			retailerService,
			dealService,
			plannerService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
