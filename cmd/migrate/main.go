// Command migrate creates or updates the shop schema and exits.
package main

import (
	"context"
	"os"

	"shop/cmd"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/migrations"
	"shop/internal/pkg/logger"
)

func main() {
	ctx := context.Background()
	log := logger.NewLogger("shop-migrate", false)

	configs, err := cmd.LoadConfig(".")
	if err != nil {
		log.Error(ctx, "load config", logger.WithError(err))
		os.Exit(1)
	}

	db, err := postgres.Open(ctx, configs.Postgres(), log)
	if err != nil {
		log.Error(ctx, "open database", logger.WithError(err))
		os.Exit(1)
	}
	defer func() { _ = postgres.Close(db) }()

	if err = migrations.Migrate(ctx, db); err != nil {
		log.Error(ctx, "migrate", logger.WithError(err))
		_ = postgres.Close(db)
		os.Exit(1)
	}

	log.Info(ctx, "schema is up to date", logger.Any("tables", migrations.Tables()))
}
