package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"holidaze/internal/adapters/noroff"
	"holidaze/internal/adapters/observability"
	redisad "holidaze/internal/adapters/redis"
	"holidaze/internal/app"
	"holidaze/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, "holidaze-warmer")

	log.Info().
		Str("base", cfg.NoroffBase).
		Int("workers", cfg.WarmWorkers).
		Int("pages", cfg.WarmPages).
		Msg("warmer starting")

	client, err := noroff.New(cfg.NoroffBase, cfg.NoroffKey, cfg.NoroffRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Noroff client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	warm := app.NewWarmService(app.NewVenueQueryService(client, cache, cfg.CacheTTL))
	stats, err := warm.Run(ctx, cfg.WarmPages, cfg.WarmPageSize, cfg.WarmWorkers)
	if err != nil {
		log.Error().Err(err).Msg("warm incomplete")
	}
	log.Info().
		Int("pages", stats.Pages).
		Int("venues", stats.Venues).
		Int("missing", stats.Missing).
		Int("failed", stats.Failed).
		Msg("warm completed")
}
