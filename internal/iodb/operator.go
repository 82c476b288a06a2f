// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/db"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
// Uses sensible hardcoded pool settings that work well for
// most use cases.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// Hardcoded pool settings (can be made configurable
	// later if needed)
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool for advanced
// operations.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists checks if a table exists in the current
// database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableCheckError(tableName, err)
	}

	return exists, nil
}

// CountRows returns the number of rows in a table.
func (p *pgxOperator) CountRows(
	ctx context.Context,
	tableName string,
) (int64, error) {
	if p.pool == nil {
		return 0, NotConnectedError()
	}

	// tableName comes from configuration, not user input; it is still
	// quoted to survive unusual names.
	query := fmt.Sprintf(`SELECT count(*) FROM %q`, tableName)

	var count int64
	err := p.pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, QueryError(query, err)
	}

	return count, nil
}
