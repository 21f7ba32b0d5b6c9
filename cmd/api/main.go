package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/northstar/goals-api/internal/api"
	"github.com/northstar/goals-api/internal/infrastructure/config"
	"github.com/northstar/goals-api/internal/infrastructure/db/postgres"
	redisdb "github.com/northstar/goals-api/internal/infrastructure/db/redis"
	"github.com/northstar/goals-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments use the process environment.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Amounts serialize as plain JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.DatabaseURL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttle enabled")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
