package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"home-goal/config"
	httpLayer "home-goal/http"
	"home-goal/logging"
	"home-goal/metrics"
	"home-goal/repository"
	"home-goal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	m := metrics.New("homegoal", true)

	limiter, cleanup := buildLimiter(cfg, logger)
	defer cleanup()

	loanService := service.NewLoanService(cfg.Policy, logger.Named("loan"))
	planService := service.NewPlanService(loanService, cfg.Policy, logger.Named("plan"))
	termService := service.NewTermRecommendationService(loanService, cfg.Policy, logger.Named("term"))

	httpLogger := logger.Named("http")
	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		Goals:    httpLayer.NewGoalHandler(loanService, planService, httpLogger, m),
		Terms:    httpLayer.NewTermRecommendationHandler(termService, httpLogger, m),
		Limiter:  limiter,
		Logger:   httpLogger,
		Recorder: m,
		Metrics:  m.Handler(),
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", logging.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", logging.Err(err))
		return err
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", logging.Err(err))
		return err
	}

	logger.Info("server exited")
	return nil
}

// buildLimiter returns the configured limiter (nil when disabled) and a
// cleanup func that releases its resources.
func buildLimiter(cfg *config.Config, logger logging.Logger) (httpLayer.Limiter, func()) {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return nil, func() {}
	}

	switch rl.Backend {
	case config.BackendRedis:
		client := repository.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		// Si Redis no responde el middleware deja pasar las peticiones
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, rate limiting degraded", logging.Err(err))
		}

		counter := repository.NewRedisCounter(client, cfg.Redis.KeyPrefix)
		return httpLayer.NewWindowLimiter(counter, rl.Capacity, rl.Window), func() { _ = client.Close() }
	default:
		limiter := httpLayer.NewRateLimiter(rl.Capacity, rl.Window)
		return limiter, limiter.Stop
	}
}
