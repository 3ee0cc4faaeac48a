// Package storage opens the configured task and user store and applies its schema.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"meeting-task-extractor/config"
	"meeting-task-extractor/migrations"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/postgres"
	pkgSQLite "meeting-task-extractor/pkg/sqlite"
)

// Storage holds exactly one open backend.
type Storage struct {
	Driver   string
	Postgres *pgxpool.Pool
	SQLite   *sql.DB
}

// Open connects to the backend selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config, l log.Logger) (Storage, error) {
	s := Storage{Driver: cfg.Storage.Driver}

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{
			DSN:                cfg.Postgres.DSN,
			MaxConns:           cfg.Postgres.MaxConns,
			MinConns:           cfg.Postgres.MinConns,
			SlowQueryThreshold: cfg.Postgres.SlowQueryThreshold,
		}, l)
		if err != nil {
			return s, fmt.Errorf("postgres.Connect: %w", err)
		}
		s.Postgres = pool
	case config.StorageDriverSQLite:
		db, err := pkgSQLite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return s, fmt.Errorf("sqlite.Open: %w", err)
		}
		s.SQLite = db
		l.Infof(ctx, "sqlite.Open: database ready path=%s", cfg.SQLite.Path)
	default:
		return s, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return s, nil
}

// Migrate applies the embedded schema. Statements are idempotent.
func (s Storage) Migrate(ctx context.Context) error {
	stmts, err := migrations.Statements(s.Driver)
	if err != nil {
		return err
	}
	if s.Postgres != nil {
		return postgres.Migrate(ctx, s.Postgres, stmts)
	}
	return pkgSQLite.Migrate(ctx, s.SQLite, stmts)
}

func (s Storage) Close() {
	if s.Postgres != nil {
		s.Postgres.Close()
	}
	if s.SQLite != nil {
		_ = s.SQLite.Close()
	}
}
