// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AaryaRajwade/SE-RMS/internal/admin"
	"github.com/AaryaRajwade/SE-RMS/internal/auth"
	"github.com/AaryaRajwade/SE-RMS/internal/config"
	"github.com/AaryaRajwade/SE-RMS/internal/core"
	"github.com/AaryaRajwade/SE-RMS/internal/health"
	"github.com/AaryaRajwade/SE-RMS/internal/middleware"
	"github.com/AaryaRajwade/SE-RMS/internal/property"
	"github.com/AaryaRajwade/SE-RMS/internal/server"
	"github.com/AaryaRajwade/SE-RMS/internal/user"
)

const drainDelay = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		return err
	}
	defer func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown failed", "error", err)
		}
	}()

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close failed", "error", err)
		}
	}()

	rdb, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close failed", "error", err)
		}
	}()

	tokenManager, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}

	userRepo := user.NewRepository(db.DB)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	authService := auth.NewService(tokenManager, userService)
	authHandler := auth.NewHandler(authService)

	propertyRepo := property.NewRepository(db.DB)
	propertyService := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertyService)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: rdb.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  rdb.Ping,
	})

	healthHandler := health.NewHandler(cfg.App.Version)
	healthHandler.AddChecker("database", health.CheckerFunc(db.Ping))
	healthHandler.AddChecker("redis", health.CheckerFunc(rdb.Ping))

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	rateLimiter := middleware.NewRateLimiter(rdb.Client, middleware.RateLimitConfig{
		Limit: middleware.PerMinute(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
		),
		KeyFunc:  middleware.KeyByIP,
		FailOpen: true,
	})

	authenticator := middleware.Authenticator(tokenManager)
	optionalAuth := middleware.OptionalAuthenticator(tokenManager)

	router := srv.Router()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(rateLimiter.Handler)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	authHandler.RegisterRoutes(router)
	userHandler.RegisterAdminRoutes(router, authenticator, middleware.RequireAdmin)
	propertyHandler.RegisterRoutes(
		router,
		authenticator,
		optionalAuth,
		middleware.RequireAdmin,
	)
	adminHandler.RegisterRoutes(router, authenticator, middleware.RequireAdmin)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		return err
	}

	logger.Info("server stopped cleanly")
	return nil
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(
		"app", cfg.App.Name,
		"env", cfg.App.Environment,
	)
}
