// Package main is the entry point for the flight offer service.
//
//	@title						Flight Offer API
//	@version					1.0.0
//	@description				Searches priced flight offers from an upstream provider, with location autocomplete and a sample-data fallback.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-offer-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-offer-service/docs"

	"github.com/flight-search/flight-offer-service/internal/config"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/cache"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/timeutil"

	// Application layers
	flighthttp "github.com/flight-search/flight-offer-service/internal/adapter/http"
	"github.com/flight-search/flight-offer-service/internal/adapter/http/middleware"
	"github.com/flight-search/flight-offer-service/internal/adapter/provider/duffel"
	"github.com/flight-search/flight-offer-service/internal/adapter/provider/fallback"
	"github.com/flight-search/flight-offer-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: logger.ServiceName,
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("cache_driver", cfg.Cache.Driver).
		Bool("fallback_enabled", cfg.Search.FallbackEnabled).
		Msg("Configuration loaded")

	if !cfg.HasProviderCredentials() {
		log.Warn().Msg("DUFFEL_API_KEY is not set, searches will be answered with fallback offers")
	}

	locationCache := setupCache(cfg, log)
	defer func() {
		if err := locationCache.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing cache")
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithConfig(e, log.Logger, middleware.RecoveryConfig{
		DisablePrintStack: cfg.IsProduction(),
	})

	setupRoutes(e, cfg, locationCache, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupCache builds the location cache. An unreachable Redis degrades to
// the in-process cache instead of failing startup.
func setupCache(cfg *config.Config, log *logger.Logger) cache.Cache {
	c, err := cache.New(cache.Options{
		Driver: cfg.Cache.Driver,
		Redis: cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		},
		MaxEntries: cfg.Cache.MaxEntries,
	})
	if err != nil {
		log.Warn().Err(err).Str("driver", cfg.Cache.Driver).Msg("Cache unavailable, using in-memory cache")
		return cache.NewMemoryCacheWithLimit(nil, cfg.Cache.MaxEntries)
	}
	return c
}

// setupRoutes wires the provider, use cases and handler and registers routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, locationCache cache.Cache, log *logger.Logger) {
	client := duffel.NewClient(duffel.Config{
		APIKey:     cfg.Provider.APIKey,
		BaseURL:    cfg.Provider.BaseURL,
		APIVersion: cfg.Provider.APIVersion,
		Timeout:    cfg.Provider.Timeout,
	}, nil, log)

	offerSearch := usecase.NewOfferSearchUseCase(client, fallback.Offers, &usecase.OfferSearchConfig{
		SearchTimeout:   cfg.Search.Timeout,
		DisableFallback: !cfg.Search.FallbackEnabled,
		Poll: usecase.PollerConfig{
			MaxAttempts: cfg.Polling.MaxAttempts,
			Interval:    cfg.Polling.Interval,
		},
	}, log)

	upcoming := usecase.NewUpcomingFlightsUseCase(offerSearch, cfg.Search.UpcomingDestinations, timeutil.NewRealClock())

	locations := usecase.NewLocationSearchUseCase(client, locationCache, fallback.SearchAirports, &usecase.LocationSearchConfig{
		CacheTTL: cfg.Cache.LocationTTL,
	}, log)

	handler := flighthttp.NewFlightHandler(offerSearch, upcoming, locations, client)
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
