package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"debt-tracker/internal/config"
	"debt-tracker/internal/dto"
	"debt-tracker/internal/handlers"
	"debt-tracker/internal/middleware"
	"debt-tracker/internal/repositories"
	"debt-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Config
	cfg := config.Load()

	// 2. Setup Logger
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Result cache
	metrics := services.NewPrometheusMetrics()

	cacheRepo, closeCache := newCacheRepository(cfg)
	defer closeCache()

	var cache services.ResultCacheInterface
	if cacheRepo != nil {
		cache = services.NewResultCache(cacheRepo, services.ResultCacheConfig{
			TTL:              cfg.Cache.TTL,
			OperationTimeout: cfg.Cache.OperationTimeout,
			Breaker: services.CircuitBreakerConfig{
				MaxFailures:     cfg.Cache.BreakerMaxFailure,
				ResetTimeout:    cfg.Cache.BreakerTimeout,
				HalfOpenMaxSucc: 1,
			},
		}, metrics)
	}

	// 4. Services & Handlers
	portfolioService := services.NewPortfolioService(cache, metrics, services.NewAnalysisLogger(slog.Default()), services.PortfolioConfig{
		MaxAccounts:   cfg.Planner.MaxAccounts,
		DashboardTopN: cfg.Planner.DashboardTopN,
	})

	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, dto.TransferDefaults{
		FeePct:      cfg.Planner.DefaultFeePct,
		IntroMonths: cfg.Planner.DefaultIntroMonths,
	})
	healthHandler := handlers.NewHealthCheckHandler(cache)

	// 5. Setup Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	limiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.Security.RateLimitPerSecond,
		Burst:             cfg.Security.RateLimitBurst,
	})
	go limiter.Run(ctx)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))
	e.Use(limiter.Middleware())

	// 6. Routes
	handlers.RegisterRoutes(e, portfolioHandler, healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// 7. Serve until signalled
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting",
			"env", cfg.Server.Environment,
			"address", cfg.Server.Address(),
			"cache", cacheMode(cfg),
		)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server exited successfully")
	return nil
}

// newCacheRepository picks Redis, the in-process cache, or none
func newCacheRepository(cfg *config.Config) (repositories.ResultCacheRepositoryInterface, func()) {
	if !cfg.Cache.Enabled {
		return nil, func() {}
	}

	if !cfg.Cache.UsesRedis() {
		return repositories.NewMemoryResultCache(cfg.Cache.MemoryMaxEntries, cfg.Cache.TTL), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	return repositories.NewRedisResultCache(client), func() {
		if err := client.Close(); err != nil {
			slog.Error("Failed to close redis client", "error", err)
		}
	}
}

func cacheMode(cfg *config.Config) string {
	switch {
	case !cfg.Cache.Enabled:
		return "disabled"
	case cfg.Cache.UsesRedis():
		return "redis"
	default:
		return "memory"
	}
}
