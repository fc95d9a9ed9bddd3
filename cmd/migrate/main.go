package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"QualityStore/internal/catalog"
	"QualityStore/internal/config"
	"QualityStore/internal/storage"
	"QualityStore/pkg/kit"
)

func main() {
	seed := flag.Bool("seed", true, "insert the sample catalog after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		kit.NewLogger("migrate", "info").Fatal("load config failed", zap.Error(err))
	}

	log := kit.NewLogger("migrate", cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("connect postgres failed", zap.Error(err))
	}
	defer db.Close()

	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	version, err := storage.Version(ctx, db)
	if err != nil {
		log.Fatal("read schema version failed", zap.Error(err))
	}
	log.Info("schema up to date", zap.Int64("version", version))

	if !*seed {
		return
	}
	if err := catalog.NewPostgresStore(db).Seed(ctx, catalog.SeedProducts()); err != nil {
		log.Fatal("seed catalog failed", zap.Error(err))
	}
	log.Info("catalog seeded", zap.Int("products", len(catalog.SeedProducts())))
}
