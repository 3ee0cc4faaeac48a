package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"meeting-task-extractor/pkg/log"
)

// Config for the pgx connection pool.
type Config struct {
	DSN                string
	MaxConns           int32
	MinConns           int32
	SlowQueryThreshold time.Duration
}

// Connect opens a pool, attaches the slow-query tracer and pings once.
func Connect(ctx context.Context, cfg Config, l log.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse db config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	poolCfg.MaxConnIdleTime = time.Minute
	poolCfg.ConnConfig.Tracer = NewSlowQueryTracer(l, cfg.SlowQueryThreshold)

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
	defer pingCancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	l.Infof(ctx, "postgres.Connect: pool ready host=%s db=%s max_conns=%d",
		poolCfg.ConnConfig.Host, poolCfg.ConnConfig.Database, poolCfg.MaxConns)
	return pool, nil
}

// Migrate runs statements in order inside one transaction.
func Migrate(ctx context.Context, pool *pgxpool.Pool, stmts []string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres.Migrate: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range stmts {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres.Migrate: statement %d: %w", i+1, err)
		}
	}

	return tx.Commit(ctx)
}
