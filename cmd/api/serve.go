package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/GunarsK-portfolio/recipe-service/internal/config"
	"github.com/GunarsK-portfolio/recipe-service/internal/database"
	"github.com/GunarsK-portfolio/recipe-service/internal/handlers"
	"github.com/GunarsK-portfolio/recipe-service/internal/logger"
	"github.com/GunarsK-portfolio/recipe-service/internal/metrics"
	"github.com/GunarsK-portfolio/recipe-service/internal/repository"
	"github.com/GunarsK-portfolio/recipe-service/internal/routes"
	"github.com/GunarsK-portfolio/recipe-service/internal/service"
	"github.com/GunarsK-portfolio/recipe-service/internal/session"
	"github.com/GunarsK-portfolio/recipe-service/pkg/redis"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")

	return cmd
}

func runServe(ctx context.Context, port string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}

	log := logger.New(cfg)

	db, err := database.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, sqlDB, database.CommandUp); err != nil {
			return err
		}
	}

	checks := map[string]handlers.Pinger{"database": database.Ping(db)}

	var revoker session.Revoker
	if cfg.RedisEnabled() {
		redisClient, err := redis.NewClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		revoker = session.NewRedisRevoker(redisClient)
		checks["redis"] = redis.Ping(redisClient)
	} else {
		log.Warn("REDIS_HOST not set, logged out cookies stay valid until they expire")
	}

	codec, err := session.NewCodec(cfg.SessionSecret, cfg.SessionMaxAge)
	if err != nil {
		return err
	}
	sessions := session.NewStore(codec, session.NewCookieHelper(cfg.Cookie), revoker, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsCollector := metrics.New(registry)

	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	authService := service.NewAuthService(userRepo)
	recipeService := service.NewRecipeService(recipeRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.Setup(router, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService, sessions, metricsCollector, log),
		Recipes: handlers.NewRecipeHandler(recipeService, metricsCollector, log),
		Health:  handlers.NewHealthHandler(checks),
	}, sessions, cfg, metricsCollector, metrics.Handler(registry), log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting recipe service", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
