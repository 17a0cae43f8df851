package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviereview/database"
	"moviereview/internal/config"
	httpapi "moviereview/internal/microservices/http-api"
	"moviereview/internal/logging"
	"moviereview/internal/ratelimit"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	limiter, closeLimiter := buildLimiter(cfg, logger)
	defer closeLimiter()

	router := httpapi.NewRouter(httpapi.Dependencies{
		DB:      db,
		Config:  cfg,
		Limiter: limiter,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("server_shutdown_failed", "error", err)
		}
		logger.Info("server_stopped_gracefully")
	case err := <-errChan:
		logger.Error("server_error", "error", err)
		os.Exit(1)
	}
}

// buildLimiter prefers the shared Redis window and falls back to an
// in-process limiter when REDIS_URL is unset or unreachable.
func buildLimiter(cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, func()) {
	local := ratelimit.NewLocalLimiter(cfg.RateLimitPerMinute)
	if cfg.RedisURL == "" {
		return local, func() {}
	}

	client, err := ratelimit.NewRedisClient(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		logger.Warn("redis_limiter_disabled", "error", err)
		return local, func() {}
	}
	rl, err := ratelimit.NewRedisLimiter(client, cfg.RateLimitPerMinute, time.Minute, logger)
	if err != nil {
		logger.Warn("redis_limiter_disabled", "error", err)
		_ = client.Close()
		return local, func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rl.Ping(ctx); err != nil {
		logger.Warn("redis_unreachable_using_local_limiter", "error", err)
		_ = rl.Close()
		return local, func() {}
	}

	logger.Info("redis_limiter_enabled")
	return rl, func() { _ = rl.Close() }
}
