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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/gobank/internal/adapter/http"
	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	redisRepo "github.com/iho/gobank/internal/adapter/repository/redis"
	"github.com/iho/gobank/internal/app"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/infrastructure/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := run(cfg, log.Logger); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx := context.Background()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	bank, err := app.New(cfg, reg, logger)
	if err != nil {
		return err
	}

	loaded, err := bank.Start(ctx)
	if err != nil {
		return err
	}
	logger.Info().
		Int("accounts", loaded.Accounts).
		Int("entries", loaded.Entries.Loaded).
		Str("data_dir", cfg.DataDir).
		Msg("state loaded")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	switch {
	case errors.Is(err, redis.ErrDisabled):
		logger.Info().Msg("REDIS_URL not set, idempotency keys disabled")
	case err != nil:
		bank.Shutdown(ctx)
		return err
	default:
		defer redisClient.Close()
		logger.Info().Msg("connected to redis")
	}

	fatal := make(chan error, 1)
	onFatal := func(err error) {
		select {
		case fatal <- err:
		default:
		}
	}

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)

	router := newRouter(cfg, bank, redisClient, reg, logger, onFatal, stopCleanup)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal, a server failure or corrupted state
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var exitErr error
	select {
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down server...")
	case err := <-serveErr:
		exitErr = fmt.Errorf("server failed: %w", err)
	case err := <-fatal:
		exitErr = err
		logger.WithLevel(zerolog.FatalLevel).Err(err).Msg("invariant violated, stopping")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	flushed, err := bank.Shutdown(shutdownCtx)
	if err != nil {
		return errors.Join(exitErr, err)
	}
	logger.Info().
		Int("entries_written", flushed.EntriesWritten).
		Int("accounts_saved", flushed.AccountsSaved).
		Msg("server stopped")

	return exitErr
}

// newRouter builds the HTTP handler. redisClient may be nil.
func newRouter(
	cfg *config.Config,
	bank *app.Bank,
	redisClient *goredis.Client,
	reg *prometheus.Registry,
	logger zerolog.Logger,
	onFatal func(error),
	stop <-chan struct{},
) http.Handler {
	checks := map[string]handler.Pinger{"persistence": bank}

	routerCfg := httpAdapter.RouterConfig{
		AccountHandler:  handler.NewAccountHandler(bank.AccountUC),
		TransferHandler: handler.NewTransferHandler(bank.TransferUC),
		EntryHandler:    handler.NewEntryHandler(bank.EntryUC),
		LedgerHandler:   handler.NewLedgerHandler(bank.LedgerUC),
		Logger:          logger,
		OnFatal:         onFatal,
		Gatherer:        reg,
		HTTPMetrics:     middleware.NewHTTPMetrics(reg),
		IdempotencyTTL:  cfg.IdempotencyTTL,
	}

	if redisClient != nil {
		routerCfg.IdempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		checks["redis"] = handler.RedisPinger{Client: redisClient}
	}
	routerCfg.HealthHandler = handler.NewHealthHandler(checks)

	if cfg.RateLimitRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go rl.RunCleanup(10*time.Minute, time.Hour, stop)
		routerCfg.RateLimiter = rl
	}

	return httpAdapter.NewRouter(routerCfg)
}
