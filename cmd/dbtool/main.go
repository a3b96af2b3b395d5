package main

import (
	"context"
	"database/sql"
	"delivery-estimate-service/internal/adapters/repositories"
	"delivery-estimate-service/internal/config"
	"delivery-estimate-service/internal/platform/db"
	"delivery-estimate-service/internal/platform/logger"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
)

// dbtool initializes the offers schema and replaces its rows with the JSON catalog.
// DATABASE_URL selects Postgres; without it the SQLite file at DB_PATH is used.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(config.Get("APP_ENV", "development"), config.Get("LOG_LEVEL", "info")); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, dialect, err := open(ctx)
	if err != nil {
		fatal("open database failed", err)
	}
	defer conn.Close()

	seedPath := config.Get("OFFERS_PATH", "data/seeds/offers.json")
	if err := initAndSeed(ctx, conn, dialect, seedPath); err != nil {
		fatal("dbtool failed", err)
	}
}

func open(ctx context.Context) (*sql.DB, repositories.Dialect, error) {
	if url := config.Get("DATABASE_URL", ""); url != "" {
		conn, err := db.Open(ctx, url)
		return conn, repositories.DialectPostgres, err
	}
	conn, err := db.OpenSQLite(ctx, config.Get("DB_PATH", "data/app.db"))
	return conn, repositories.DialectSQLite, err
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	log := logger.Get()

	log.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Info("schema ready")

	log.Info("seeding offers", zap.String("path", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath); err != nil {
		return err
	}
	log.Info("seeding complete")

	return nil
}

func fatal(msg string, err error) {
	logger.Get().Error(msg, zap.Error(err))
	logger.Sync()
	os.Exit(1)
}
