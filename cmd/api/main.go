// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Blue Velvet catalog API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Run database migrations (idempotent).
//  4. Connect to PostgreSQL (pgxpool) and Redis.
//  5. Configure object storage and the token verifier.
//  6. Wire the category domain and warm its snapshot.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/bluevelvet/internal/api"
	"github.com/taibuivan/bluevelvet/internal/core/category"
	"github.com/taibuivan/bluevelvet/internal/platform/config"
	"github.com/taibuivan/bluevelvet/internal/platform/constants"
	"github.com/taibuivan/bluevelvet/internal/platform/migration"
	pgstore "github.com/taibuivan/bluevelvet/internal/platform/postgres"
	redisstore "github.com/taibuivan/bluevelvet/internal/platform/redis"
	"github.com/taibuivan/bluevelvet/internal/platform/sec"
	"github.com/taibuivan/bluevelvet/internal/platform/storage"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("catalog_locale", cfg.CatalogLocale),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 4. PostgreSQL + Redis ─────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Storage + Token Verifier ───────────────────────────────────────
	options := category.Options{
		Cache:          category.NewRedisSnapshotCache(rdb, cfg.CatalogCacheTTL, log),
		Locale:         cfg.CatalogLocale,
		PageSize:       cfg.CatalogPageSize,
		StorefrontSize: constants.StorefrontPageSize,
	}

	images, err := storage.New(storage.Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	must(log, err, "configure object storage")
	if images != nil {
		options.Images = images
	} else {
		log.Warn("object_storage_disabled")
	}

	verifier, err := sec.NewVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize token verifier")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	categoryService := category.NewService(category.NewPostgresRepository(pool), options, log)
	if _, err := categoryService.Snapshot(startupCtx); err != nil {
		log.Warn("category_snapshot_warmup_failed", slog.Any("error", err))
	}

	liveness, readiness := api.NewHealthHandlers([]api.Check{
		{Name: "postgres", Probe: pgstore.Probe(pool)},
		{Name: "redis", Probe: redisstore.Probe(rdb)},
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Category:  category.NewHandler(categoryService),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Limited to startup wiring. After startup every error is returned.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
