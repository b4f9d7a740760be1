package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/RouNNdeL/bada-project/internal/config"
	"github.com/RouNNdeL/bada-project/internal/domain/geo"
	"github.com/RouNNdeL/bada-project/internal/infra/db"
	httpx "github.com/RouNNdeL/bada-project/internal/infra/http"
	"github.com/RouNNdeL/bada-project/internal/infra/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	// Checkout cannot place orders without a default shipping country,
	// so complain at startup instead of at the first checkout.
	country, err := geo.NewRepo(pool).CountryByName(ctx, cfg.Store.DefaultCountry)
	switch {
	case err != nil:
		log.Error("default country lookup failed", "err", err)
	case country == nil:
		log.Warn("default country missing", "name", cfg.Store.DefaultCountry)
	default:
		log.Info("default shipping country", "name", country.Name, "id", country.ID)
	}

	srv := httpx.New(cfg.HTTP.Addr, pool, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
