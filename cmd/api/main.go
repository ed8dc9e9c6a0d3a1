package main

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"photoshare/internal/api/config"
	"photoshare/internal/pkg/cron"
	"photoshare/internal/pkg/database"
	"photoshare/internal/pkg/docstore"
	"photoshare/internal/pkg/logger"
	"photoshare/internal/pkg/redis"
	"photoshare/internal/pkg/storage"
	"photoshare/internal/wire"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	logger.InitLogger()

	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}
	if err = database.AutoMigrate(db); err != nil {
		log.Error("Fatal error: failed to migrate database schema", "err", err)
		panic(err)
	}

	err = redis.InitRedis(cfg.Redis)
	if err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		panic(err)
	}

	store, err := buildSnapshotStore(cfg)
	if err != nil {
		log.Error("Fatal error: failed to initialize snapshot store", "err", err)
		panic(err)
	}

	err = storage.Init()
	if err != nil {
		log.Error("Fatal error: failed to initialize object storage", "err", err)
		panic(err)
	}

	app, err := wire.BuildApplication(db, store, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	err = cron.InitCron(app.CronMgr)
	if err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}

// buildSnapshotStore picks the ranking snapshot backend from config.
// The file backend is the default.
func buildSnapshotStore(cfg *config.Config) (docstore.Store, error) {
	switch cfg.Ranking.SnapshotStore {
	case "redis":
		return docstore.NewRedisStore(redis.GetRdbClient()), nil
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoDB, err := docstore.ConnectMongo(ctx, cfg.Mongo.URL, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		return docstore.NewMongoStore(mongoDB, cfg.Mongo.Collection), nil
	case "", "file":
		return docstore.NewFileStore(cfg.Ranking.SnapshotDir)
	default:
		return nil, fmt.Errorf("unknown snapshot store %q", cfg.Ranking.SnapshotStore)
	}
}
