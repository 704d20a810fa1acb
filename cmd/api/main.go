package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "puppy-service/internal/adapters/storage/postgres"
	"puppy-service/internal/config"
	"puppy-service/internal/platform/logger"
	"puppy-service/internal/router"
)

// @title Puppy Service API
// @version 1.0
// @description CRUD de cachorros sobre la tabla puppies.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	log = logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		opts := pg.OpenOptions{}
		if cfg.LogSQL {
			sqlLog := log.With().Str("component", "pgx").Logger()
			opts.QueryLogger = &sqlLog
		}

		db, err = pg.Open(cfg.DatabaseURL, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		defer db.Close()
		log.Info().Msg("database connected")
	} else {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
	}

	r := router.NewRouter(router.Options{
		Logger:             log,
		DB:                 db,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		StoreTimeout:       cfg.DBQueryTimeout,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server error")
			return
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
