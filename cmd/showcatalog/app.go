package main

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/bzweiacker/showcatalog/internal/cache"
	"github.com/bzweiacker/showcatalog/internal/catalog"
	"github.com/bzweiacker/showcatalog/internal/client"
	"github.com/bzweiacker/showcatalog/internal/config"
	"github.com/bzweiacker/showcatalog/internal/images"
	"github.com/bzweiacker/showcatalog/internal/metrics"
)

// app wires the configured services together for the CLI commands.
// Everything is constructed explicitly here; no package-level singletons.
type app struct {
	cfg           *config.Config
	apiClient     client.Client
	service       *catalog.Service
	loader        *images.Loader
	imageCache    cache.Cache
	metricsServer *http.Server
}

func newApp() *app {
	return &app{}
}

// start builds the client, cache, loader, and service from config, and
// brings up the optional sentry and metrics sidecars.
func (a *app) start() error {
	cfg := config.GetConfig()
	logger := config.GetLogger()
	a.cfg = cfg

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize sentry, continuing without error reporting")
		}
	}

	ttl := time.Hour // default
	if cfg.Cache.TTL != "" {
		if parsed, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			logger.Warn().Err(err).Str("ttl", cfg.Cache.TTL).Msg("Invalid cache TTL, using default 1h")
		} else {
			ttl = parsed
		}
	}

	imageCache, err := cache.New(cfg.Cache.Provider, cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           ttl,
		RedisAddress:  cfg.Cache.RedisAddress,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
		Group:         "images",
		Logger:        cacheLogger{},
	})
	if err != nil {
		return err
	}
	a.imageCache = imageCache

	a.apiClient = client.NewClient(cfg)
	a.service = catalog.NewService(a.apiClient, cfg.Categories)
	a.loader = images.NewLoader(a.apiClient, imageCache)

	if cfg.Metrics.Enabled {
		a.metricsServer = metrics.NewHTTPServer(cfg.Metrics.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", a.metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("Metrics server stopped unexpectedly")
			}
		}()
	}

	return nil
}

// stop shuts the metrics sidecar down and releases the cache.
func (a *app) stop() error {
	logger := config.GetLogger()

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}
	if a.apiClient != nil {
		a.apiClient.Close()
	}
	if a.imageCache != nil {
		return a.imageCache.Close()
	}
	return nil
}

// cacheLogger adapts the zerolog logger to the cache package's Logger.
type cacheLogger struct{}

func (cacheLogger) Error(msg string, err error) {
	logger := config.GetLogger()
	logger.Error().Err(err).Msg(msg)
}
