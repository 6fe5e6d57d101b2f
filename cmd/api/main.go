// @title						Volcano Insurance API
// @version					1.0
// @description				Quotes and policies for volcano insurance.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"volcano-insurance-api/internal/auth"
	"volcano-insurance-api/internal/config"
	"volcano-insurance-api/internal/migrations"
	"volcano-insurance-api/internal/observability"
	"volcano-insurance-api/internal/postal"
	"volcano-insurance-api/internal/repository"
	"volcano-insurance-api/internal/service"
	"volcano-insurance-api/internal/usaddress"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := observability.NewLogger(config.LogLevel, config.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrations.Up(config.DBSource); err != nil {
		log.Fatal().Err(err).Msg("cannot run migrations")
	}

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	var zips service.ZipValidator = repo
	if config.ZipValidator == "http" {
		client := postal.NewClient(config.PostalAPIURL, config.PostalLookupTimeout, metrics, logger)
		zips = postal.NewCachedValidator(client, config.PostalCacheSize, config.PostalNegativeTTL, nil, metrics)
	}

	tokens := auth.NewTokenManager(config.JWTSecret, config.JWTTTL, nil)
	resolver := service.NewAddressResolver(usaddress.NewTagger(), zips, repo, config.PostalLookupTimeout)

	router := newRouter(routerDeps{
		quotes:   service.NewQuoteService(resolver, repo, nil, nil, metrics),
		checkout: service.NewCheckoutService(repo, nil, metrics),
		users:    service.NewUserService(repo, tokens),
		db:       repo,
		tokens:   tokens,
		limiter:  newLimiter(config.RateLimitRPS, config.RateLimitBurst),
		metrics:  metrics,
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Str("zip_validator", config.ZipValidator).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
