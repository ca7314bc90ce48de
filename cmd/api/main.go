package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/utsav/utsav-api/internal/booking"
	"github.com/utsav/utsav-api/internal/catalog"
	"github.com/utsav/utsav-api/internal/config"
	"github.com/utsav/utsav-api/internal/dashboard"
	"github.com/utsav/utsav-api/internal/middleware"
	"github.com/utsav/utsav-api/internal/pkg/database"
	"github.com/utsav/utsav-api/internal/pkg/jwt"
	"github.com/utsav/utsav-api/internal/pkg/logger"
	pkgresponse "github.com/utsav/utsav-api/internal/pkg/response"
	"github.com/utsav/utsav-api/internal/pkg/upstream"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Utsav API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret)

	registry, err := catalog.NewDefaultRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service-type registry")
	}

	upstreamClient := upstream.NewClient(
		cfg.UpstreamBaseURL,
		cfg.UpstreamToken,
		time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second,
		"Utsav/1.0 catalog-api",
	)

	// ---------- Repositories ----------
	bookingRepo := booking.NewRepository(db)

	// ---------- Services ----------
	listingsCache := catalog.NewCache(redis, cfg.CatalogCacheTTL)
	catalogService := catalog.NewService(registry, upstreamClient, listingsCache)
	bookingService := booking.NewService(registry, upstreamClient, bookingRepo)
	dashboardService := dashboard.NewService(upstreamClient)

	// ---------- Handlers ----------
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(bookingService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/catalog", catalogHandler.Routes())
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		r.Mount("/vendor", dashboardHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
