package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/memberhub/portal/internal/api"
	mongodb "github.com/memberhub/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/memberhub/portal/internal/infrastructure/db/redis"
	"github.com/memberhub/portal/internal/pkg/config"
	"github.com/memberhub/portal/pkg/logger"
)

func main() {
	// Optional .env file for local development; real environments set vars directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo init")
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis init")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e, err := api.NewRouter(db, rdb, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router init")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("member portal listening")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
