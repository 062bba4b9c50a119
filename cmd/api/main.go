package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/campusinsider/campus-insider/internal/adapters/cache"
	"github.com/campusinsider/campus-insider/internal/adapters/database"
	"github.com/campusinsider/campus-insider/internal/api/handlers"
	"github.com/campusinsider/campus-insider/internal/api/middleware"
	"github.com/campusinsider/campus-insider/internal/api/routes"
	"github.com/campusinsider/campus-insider/internal/application/services"
	"github.com/campusinsider/campus-insider/internal/domain/providers"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/redis"
	"github.com/campusinsider/campus-insider/internal/infrastructure/observability"
	"github.com/campusinsider/campus-insider/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			if err := runtime.Start(); err != nil {
				log.Warn().Err(err).Msg("failed to start runtime instrumentation")
			}
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Redis is optional; the server degrades to uncached reads and
	// in-process session storage without it.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("Redis client initialized")
	}

	// Adapters
	universityAdapter := database.NewUniversityAdapter(pgClient)
	locationAdapter := database.NewLocationAdapter(pgClient)
	ratingAdapter := database.NewRatingAdapter(pgClient)
	requestAdapter := database.NewLocationRequestAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)
	tagAdapter := database.NewTagAdapter(pgClient)

	// Services
	authService := services.NewAuthService(userAdapter, universityAdapter, cacheProvider)
	directoryService := services.NewDirectoryService(universityAdapter, locationAdapter)
	locationService := services.NewLocationService(locationAdapter, ratingAdapter, tagAdapter)
	ratingService := services.NewRatingService(locationAdapter, ratingAdapter, userAdapter)
	requestService := services.NewRequestService(requestAdapter)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	universityHandler := handlers.NewUniversityHandler(directoryService)
	locationHandler := handlers.NewLocationHandler(locationService, ratingService, requestService)
	adminHandler := handlers.NewAdminHandler(directoryService, requestService, authService)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Info().Msg("cache middleware initialized")
	}

	router := routes.NewRouter(
		authHandler,
		universityHandler,
		locationHandler,
		adminHandler,
		authService,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
