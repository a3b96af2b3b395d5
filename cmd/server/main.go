package main

import (
	"context"
	"database/sql"
	"delivery-estimate-service/internal/adapters/metrics"
	"delivery-estimate-service/internal/adapters/repositories"
	"delivery-estimate-service/internal/api"
	"delivery-estimate-service/internal/config"
	"delivery-estimate-service/internal/platform/db"
	"delivery-estimate-service/internal/platform/logger"
	"delivery-estimate-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the configured offer source and Prometheus recorder behind ports
// and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Error("server stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Get()

	offers, closeDB, err := openOffers(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPromRecorder(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	router := api.NewRouter(offers, recorder, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("offer_source", cfg.OfferSource),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openOffers builds the offer repository for cfg.OfferSource. The returned
// close function releases any database handle.
func openOffers(ctx context.Context, cfg *config.Config) (ports.OfferRepository, func(), error) {
	noop := func() {}

	switch cfg.OfferSource {
	case config.OfferSourceJSON:
		repo, err := repositories.NewJSONOfferRepository(cfg.OffersPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open offers: %w", err)
		}
		return repo, noop, nil

	case config.OfferSourcePostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("open offers: %w", err)
		}
		return repositories.NewSQLOfferRepository(conn), closer(conn), nil

	case config.OfferSourceSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open offers: %w", err)
		}
		// Local runs get a ready table seeded from the JSON catalog.
		if err := repositories.InitSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("open offers: %w", err)
		}
		if err := repositories.SeedFromJSON(ctx, conn, repositories.DialectSQLite, cfg.OffersPath); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("open offers: %w", err)
		}
		return repositories.NewSQLOfferRepository(conn), closer(conn), nil

	default:
		return repositories.NewStaticOfferRepository(), noop, nil
	}
}

func closer(conn *sql.DB) func() {
	return func() {
		if err := conn.Close(); err != nil {
			logger.Get().Warn("close database", zap.Error(err))
		}
	}
}
