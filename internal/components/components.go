package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Vinayak4780/Guard/internal/api"
	"github.com/Vinayak4780/Guard/internal/api/handlers/http/system"
	"github.com/Vinayak4780/Guard/internal/auth"
	"github.com/Vinayak4780/Guard/internal/config"
	"github.com/Vinayak4780/Guard/internal/geocode"
	"github.com/Vinayak4780/Guard/internal/metrics"
	"github.com/Vinayak4780/Guard/internal/redis"
	"github.com/Vinayak4780/Guard/internal/service"
	"github.com/Vinayak4780/Guard/internal/storage/postgres"
	"github.com/Vinayak4780/Guard/internal/workers"
	"github.com/Vinayak4780/Guard/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	ExportQ    *redis.ExportQueue
	Dispatcher *workers.ExportDispatcher // nil when export is disabled
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	m := metrics.New()
	exportQueue := redis.NewExportQueue(redisClient.Client, cfg.Export.QueueKey)

	scanDeps := service.ScanDeps{
		Locations: storage.QRLocation,
		Events:    storage.ScanEvent,
		Guards:    storage.Identity,
		Metrics:   m,
	}
	if !cfg.Export.Disabled {
		scanDeps.Export = exportQueue
	}
	if cfg.Geocode.Enabled() {
		scanDeps.Geocoder = geocode.NewCached(
			geocode.NewTomTom(cfg.Geocode),
			redis.NewGeocodeCache(redisClient),
			cfg.Geocode.CacheTTL,
			logger,
		)
		logger.Info("reverse geocoding enabled")
	}

	tokens := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	svc := service.NewService(
		service.NewScanService(scanDeps, service.ScanConfig{
			RadiusMeters:   cfg.Scan.RadiusMeters,
			GeocodeTimeout: cfg.Geocode.Timeout,
		}, logger),
		service.NewQRLocationService(storage.QRLocation, logger),
		service.NewHistoryService(storage.ScanEvent, logger),
		service.NewStatsService(service.StatsDeps{
			Stats:      storage.Stat,
			Events:     storage.ScanEvent,
			Locations:  storage.QRLocation,
			Identities: storage.Identity,
		}, logger),
		service.NewIdentityService(storage.Identity, tokens, logger),
	)

	if cfg.Auth.AdminEmail != "" {
		created, err := svc.BootstrapAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		if err != nil {
			logger.Error("bootstrap admin failed", slog.Any("error", err))
			return nil, fmt.Errorf("bootstrap admin: %w", err)
		}
		logger.Info("bootstrap admin checked", slog.Bool("created", created))
	}

	sys := system.NewHandler(logger,
		map[string]system.Pinger{"postgres": storage, "redis": redisClient},
		exportQueue,
		system.Info{
			Env:             cfg.Env,
			RadiusMeters:    cfg.Scan.RadiusMeters,
			GeocodeEnabled:  cfg.Geocode.Enabled(),
			ExportEnabled:   !cfg.Export.Disabled,
			ExportWorkers:   cfg.Export.Workers,
			ScanRateLimitPS: cfg.RateLimit.ScanRPS,
		},
	)

	httpServer := api.NewServer(ctx, cfg, logger, svc, tokens, sys, m.Handler())
	logger.Info("Initialized server")

	var dispatcher *workers.ExportDispatcher
	if !cfg.Export.Disabled {
		dispatcher = workers.NewExportDispatcher(exportQueue, workers.DispatcherConfig{
			URL:     cfg.Export.URL,
			Workers: cfg.Export.Workers,
		}, m, logger)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		ExportQ:    exportQueue,
		Dispatcher: dispatcher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped", slog.Duration("latency", time.Since(start)))
}
