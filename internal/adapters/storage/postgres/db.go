package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"puppy-service/internal/domain/puppies"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

var (
	ErrNotFound = fmt.Errorf("postgres: %w", puppies.ErrNotFound)
)

const pingTimeout = 3 * time.Second

type OpenOptions struct {
	// Si no es nil, cada query se loguea vía pgx tracelog.
	QueryLogger *zerolog.Logger
}

// Open abre un pool database/sql sobre pgx y verifica la conexión.
// El tamaño del pool queda con los defaults de database/sql.
func Open(dsn string, opts OpenOptions) (*sql.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}

	if opts.QueryLogger != nil {
		cfg.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(*opts.QueryLogger),
			LogLevel: tracelog.LogLevelInfo,
		}
	}

	db := stdlib.OpenDB(*cfg)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return db, nil
}
