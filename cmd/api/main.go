package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/castanedalj/tienda-backend/internal/api"
	"github.com/castanedalj/tienda-backend/internal/config"
	"github.com/castanedalj/tienda-backend/internal/db"
	"github.com/castanedalj/tienda-backend/internal/logger"
	"github.com/castanedalj/tienda-backend/internal/metrics"
	"github.com/castanedalj/tienda-backend/internal/repository/postgres"
	"github.com/castanedalj/tienda-backend/internal/services"
	"github.com/castanedalj/tienda-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	userSvc := services.NewUserService(repos.Users, cfg)
	productSvc := services.NewProductService(repos.Products, repos.AuditLogs, wp)

	metrics.Init()
	r := api.NewRouter(cfg, userSvc, productSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
