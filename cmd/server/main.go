package main

import (
	"context"

	"github.com/brokerdesk/employee-portal/internal/api"
	"github.com/brokerdesk/employee-portal/internal/api/metrics"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
	"github.com/brokerdesk/employee-portal/internal/core/service"
	"github.com/brokerdesk/employee-portal/internal/infrastructure/config"
	"github.com/brokerdesk/employee-portal/internal/infrastructure/db/postgres"
	redisdb "github.com/brokerdesk/employee-portal/internal/infrastructure/db/redis"
	"github.com/brokerdesk/employee-portal/internal/session"
	"github.com/brokerdesk/employee-portal/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(ctx, db, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	var (
		sessions ports.SessionStore
		rdb      *goredis.Client
	)
	switch cfg.Session.Backend {
	case "redis":
		rdb, err = redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		sessions = session.NewRedisStore(rdb)
	default:
		mem := session.NewMemoryStore()
		mem.OnSizeChange(func(n int) {
			metrics.SessionsActive.Set(float64(n))
		})
		sessions = mem
	}

	authService := service.NewAuthService(
		postgres.NewEmployeeRepository(db), sessions, cfg.Session.TTL, log)
	customerService := service.NewCustomerService(
		postgres.NewCustomerRepository(db), log)

	e := api.NewRouter(api.Deps{
		Config:    cfg,
		Logger:    log,
		DB:        db,
		Redis:     rdb,
		Auth:      authService,
		Customers: customerService,
	})

	log.Info().Str("port", cfg.Port).Str("session_backend", cfg.Session.Backend).Msg("starting employee portal")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
