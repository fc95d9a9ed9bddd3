package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"QualityStore/internal/app"
	"QualityStore/internal/cart"
	"QualityStore/internal/catalog"
	"QualityStore/internal/config"
	"QualityStore/internal/customer"
	"QualityStore/internal/session"
	"QualityStore/internal/storage"
	"QualityStore/internal/users"
	"QualityStore/pkg/kit"
)

func main() {
	service := "quality-store"

	cfg, err := config.Load()
	if err != nil {
		kit.NewLogger(service, "info").Fatal("load config failed", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if cfg.UsingDevSecret() {
		log.Warn("JWT_SECRET not set; signing tokens with the built-in development secret")
	}

	var (
		stores  app.Stores
		cleanup []func(context.Context) error
	)

	if cfg.DatabaseURL != "" {
		db, err := storage.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal("connect postgres failed", zap.Error(err))
		}
		cleanup = append(cleanup, func(context.Context) error { return db.Close() })
		stores = postgresStores(db)
		log.Info("using postgres stores")
	} else {
		log.Info("DATABASE_URL not set; using in-memory stores")
	}

	if cfg.RedisURL != "" {
		rs, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatal("init redis session store failed", zap.Error(err))
		}
		cleanup = append(cleanup, func(context.Context) error { return rs.Close() })
		stores.Sessions = rs
		log.Info("using redis session store")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := app.NewHandler(app.Deps{
		Stores:         stores,
		JWTSecret:      cfg.JWTSecret,
		OwnerKeySecret: cfg.OwnerKeySecret,
		OwnerPhones:    cfg.OwnerPhones,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimit:      app.RateLimit{
			Requests:          cfg.RateLimitPerMinute,
			Window:            time.Minute,
			TrustForwardedFor: cfg.TrustProxy,
		},
	}, app.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log, cleanup...); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func postgresStores(db *sql.DB) app.Stores {
	return app.Stores{
		Catalog:   catalog.NewPostgresStore(db),
		Customers: customer.NewPostgresStore(db),
		Carts:     cart.NewPostgresStore(db),
		Users:     users.NewPostgresStore(db),
	}
}
