package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-advisor/config"
	httpLayer "loan-advisor/http"
	"loan-advisor/observability"
	"loan-advisor/repository"
	"loan-advisor/service"
)

func main() {
	cfg, err := config.Load(os.Getenv("LOAN_ADVISOR_CONFIG"))
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	var overrides repository.OverrideStore
	if cfg.RedisAddr != "" {
		store := repository.NewRedisOverrideStore(cfg.RedisAddr)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := store.Ping(pingCtx); err != nil {
			logger.Warn("redis unreachable at startup, custom templates degrade to built-ins", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		overrides = store
	} else {
		overrides = repository.NewMemoryOverrideStore()
	}

	catalog := repository.NewCatalog(overrides, logger)
	simulation := service.NewSimulationService(catalog, logger)
	recommendation := service.NewRecommendationService(catalog, cfg.MaxDSRPct, logger)

	limiter := httpLayer.NewRateLimiter(cfg.RateLimitBurst, cfg.RateLimitRefill, metrics.RateLimitRejected)
	defer limiter.Stop()

	mux := httpLayer.NewRouter(httpLayer.RouterDeps{
		Simulation:     simulation,
		Recommendation: recommendation,
		Catalog:        catalog,
		Limiter:        limiter,
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown incomplete", "error", err)
	}
	logger.Info("server exited")
}
