// Package db opens the PostgreSQL pool shared by the API, the migrator and
// the seeder. The storefront serves a small handmade catalog, so the pool is
// sized for a handful of concurrent request handlers rather than bulk work.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultMaxConns caps the pool when no explicit size is configured.
// Catalog reads are cheap single-row or single-page queries.
const DefaultMaxConns = 8

const pingTimeout = 5 * time.Second

// Connect opens a pgx pool for dsn and verifies connectivity with a ping
// before handing it out. A maxConns of zero or less uses DefaultMaxConns.
func Connect(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
