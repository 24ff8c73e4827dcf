package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"outreach-engine/internal/adapter/discovery"
	"outreach-engine/internal/adapter/enrich"
	httpadapter "outreach-engine/internal/adapter/http"
	"outreach-engine/internal/adapter/postgres"
	rediscache "outreach-engine/internal/adapter/redis"
	"outreach-engine/internal/adapter/usecase"
	"outreach-engine/internal/config"
	"outreach-engine/internal/db"
)

// main loads configuration, optionally migrates and seeds the database,
// wires the repositories, adapters and use cases, then serves HTTP until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout, "outreach-engine")
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	var pages enrich.PageCache
	if cfg.Redis.Enabled {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			// enrichment still works without the cache
			logger.Warn("redis unavailable, page cache disabled", slog.Any("error", err))
		} else {
			defer client.Close()
			pages = rediscache.NewPageCache(client, cfg.Redis.PageTTL)
		}
	}

	campaigns := postgres.NewCampaignRepository(pool)
	prospects := postgres.NewProspectRepository(pool)
	leads := postgres.NewLeadRepository(pool)
	deals := postgres.NewDealRepository(pool)

	inspector := enrich.NewInspector(cfg.Enrich, pages, logger)
	provider := discovery.New(cfg.Discovery)

	outreachSvc := usecase.NewOutreachUseCase(campaigns, prospects, leads, deals, cfg.Tuning, logger)
	leadSvc := usecase.NewLeadUseCase(leads, provider, inspector, cfg.Tuning, cfg.Enrich, logger)
	dealSvc := usecase.NewDealUseCase(deals, cfg.Tuning, logger)

	handler := httpadapter.NewHandler(outreachSvc, leadSvc, dealSvc, pool.Ping, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err = <-errCh:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
