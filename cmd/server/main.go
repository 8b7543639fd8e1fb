// Lecture platform API server.
//
// @title           Lecture Platform API
// @version         1.0
// @description     User authentication and lecture management with video storage.
// @BasePath        /api
//
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/lecturehall/lecture-api/internal/api"
	"github.com/lecturehall/lecture-api/internal/core/service"
	"github.com/lecturehall/lecture-api/internal/infrastructure/config"
	mongodb "github.com/lecturehall/lecture-api/internal/infrastructure/db/mongo"
	redisdb "github.com/lecturehall/lecture-api/internal/infrastructure/db/redis"
	"github.com/lecturehall/lecture-api/internal/infrastructure/queue"
	"github.com/lecturehall/lecture-api/internal/infrastructure/storage"
	"github.com/lecturehall/lecture-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; session tokens are trivially forgeable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	store, err := storage.NewObjectStore(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Region:    cfg.Storage.Region,
		UseSSL:    cfg.Storage.UseSSL,
		Bucket:    cfg.Storage.Bucket,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("object store init failed")
	}
	if err := store.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure bucket failed")
	}

	auditService := service.NewAuditService(mongodb.NewAuditRepository(db))
	dispatcher := queue.NewDispatcher(0, auditService, logger.For("audit"))
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, store, dispatcher, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}

	log.Info().Msg("server exited cleanly")
}
