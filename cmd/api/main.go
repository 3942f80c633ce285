package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ItsCoreyE/creatorsite/internal/auth"
	"github.com/ItsCoreyE/creatorsite/internal/config"
	"github.com/ItsCoreyE/creatorsite/internal/discord"
	"github.com/ItsCoreyE/creatorsite/internal/handlers"
	middlewareCustom "github.com/ItsCoreyE/creatorsite/internal/middleware"
	"github.com/ItsCoreyE/creatorsite/internal/repositories"
	"github.com/ItsCoreyE/creatorsite/internal/routes"
	"github.com/ItsCoreyE/creatorsite/internal/services"
	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
	"github.com/ItsCoreyE/creatorsite/pkg/httpclient"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	// Connect to Redis
	redisClient, err := repositories.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	// Repositories
	statsRepo := repositories.NewStatsRepository(redisClient)
	milestoneRepo := repositories.NewMilestoneRepository(redisClient)

	// Session manager and login rate limiter
	sessions := auth.NewSessionManager(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL)
	rateLimitService := services.NewRateLimitService(services.RateLimitConfig{
		MaxFailures:   cfg.Admin.MaxFailures,
		FailureWindow: cfg.Admin.FailureWindow,
		LockoutPeriod: cfg.Admin.LockoutPeriod,
	}, logger)

	// Discord notifier behind the retrying dispatcher
	dispatcher := httpclient.New(logger)
	notifier := discord.NewNotifier(dispatcher, discord.Config{
		MilestoneWebhookURL: cfg.Discord.MilestoneWebhookURL,
		StatsWebhookURL:     cfg.Discord.StatsWebhookURL,
		MilestoneRoleID:     cfg.Discord.MilestoneRoleID,
		StatsRoleID:         cfg.Discord.StatsRoleID,
		EnableMentions:      cfg.Discord.EnableMentions,
		CreatorUserID:       cfg.Discord.CreatorUserID,
		CreatorName:         cfg.Discord.CreatorName,
	}, logger)

	// Services
	authService := services.NewAuthService(sessions, rateLimitService, cfg.Admin.Password, logger)
	statsService := services.NewStatsService(statsRepo, notifier, logger)
	milestoneService := services.NewMilestoneService(milestoneRepo, notifier, logger)

	// Handlers
	ipConfig := &pkghttp.IPConfig{TrustedProxies: cfg.Server.TrustedProxies}
	cookieConfig := auth.CookieConfig{Secure: cfg.Server.Env != "development"}

	adminHandler := handlers.NewAdminHandler(authService, ipConfig, cookieConfig)
	statsHandler := handlers.NewStatsHandler(statsService)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneService)
	notificationHandler := handlers.NewNotificationHandler(milestoneService, statsService)
	robloxHandler := handlers.NewRobloxHandler(dispatcher, logger)

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(middlewareCustom.CORSConfig{AllowedOrigins: cfg.Server.AllowedOrigins}))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Register routes
	routes.RegisterRoutes(router, adminHandler, statsHandler, milestoneHandler,
		notificationHandler, robloxHandler, sessions)

	// Health check with Redis
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := repositories.HealthCheck(r.Context(), redisClient); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","redis":"down"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","redis":"up"}`))
	})

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Evict stale rate limiter records in the background
	sweepStop := make(chan struct{})
	go rateLimitService.SweepLoop(cfg.Admin.SweepInterval, sweepStop)

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	close(sweepStop)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
