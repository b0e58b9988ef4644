// Command migrate applies the embedded SQL migrations to the configured
// database. It is meant to run before the server on every deploy.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/records-api/internal/adapter/postgres"
	"github.com/heartmarshall/records-api/internal/app"
	"github.com/heartmarshall/records-api/internal/config"
	"github.com/heartmarshall/records-api/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := migrations.Up(ctx, db, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
