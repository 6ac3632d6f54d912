// Package main starts the ordering API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pizzanow/ordering-system/internal/api"
	"github.com/pizzanow/ordering-system/internal/core/service"
	"github.com/pizzanow/ordering-system/internal/infrastructure/config"
	"github.com/pizzanow/ordering-system/internal/infrastructure/crypto"
	"github.com/pizzanow/ordering-system/internal/infrastructure/db/postgres"
	infraredis "github.com/pizzanow/ordering-system/internal/infrastructure/db/redis"
	"github.com/pizzanow/ordering-system/internal/infrastructure/token"
	"github.com/pizzanow/ordering-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, cfg.Database.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("database initialization failed")
	}
	defer pool.Close()

	rdb, err := infraredis.Connect(ctx, infraredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis initialization failed")
	}
	defer rdb.Close()

	tokens, err := token.NewIssuer(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("token issuer initialization failed")
	}

	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)
	authService := service.NewAuthService(postgres.NewUserRepository(pool), hasher, tokens, log)
	orderService := service.NewOrderService(postgres.NewOrderRepository(pool), infraredis.NewIdempotencyStore(rdb), log)

	e := api.NewRouter(api.Dependencies{
		AuthService:  authService,
		OrderService: orderService,
		Tokens:       tokens,
		Pool:         pool,
		Redis:        rdb,
		Logger:       log,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting ordering server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		log.Info().Msg("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("application terminated with error")
	}
}
