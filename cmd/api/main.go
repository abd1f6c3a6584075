package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "holidaze/internal/adapters/http_server"
	"holidaze/internal/adapters/noroff"
	"holidaze/internal/adapters/observability"
	redisad "holidaze/internal/adapters/redis"
	"holidaze/internal/adapters/session"
	"holidaze/internal/app"
	"holidaze/internal/domain"
	"holidaze/internal/shared"
	mysqlrepo "holidaze/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, "holidaze-api")

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	client, err := noroff.New(cfg.NoroffBase, cfg.NoroffKey, cfg.NoroffRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Noroff client")
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; reads will go upstream")
	}

	// the submission log is optional
	var audit domain.SubmissionLog
	if cfg.MySQLDSN != "" {
		db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("mysql unavailable")
		}
		if err := mysqlrepo.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		log.Info().Msg("database connection ok")
		audit = mysqlrepo.New(db)
		defer db.Close()
	}

	sessions, err := session.NewManager([]byte(cfg.SessionHash), []byte(cfg.SessionBlock), cfg.AppEnv != "dev" && cfg.AppEnv != "development")
	if err != nil {
		log.Fatal().Err(err).Msg("session keys invalid")
	}

	venues := app.NewVenueQueryService(client, cache, cfg.CacheTTL)

	// http
	srv := server.New(cfg.RequestTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Venues:   venues,
		Quotes:   app.NewQuoteService(venues),
		Bookings: app.NewBookingService(venues, client, audit),
		Listings: app.NewListingService(venues, client),
		Accounts: app.NewAccountService(client),
		Sessions: sessions,
	})

	if err := srv.ListenAndServe(ctx, cfg.HTTPAddr, 10*time.Second); err != nil {
		log.Error().Err(err).Msg("http server failed")
	}
	_ = cache.Close()
	log.Info().Msg("API stopped")
}
