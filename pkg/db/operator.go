package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/remaplab/remapdb/pkg/config"
)

// Operator defines the interface for basic database management
// operations. It provides connection lifecycle management and exposes
// the pgxpool.Pool for higher-level components (Generator, Store) to
// execute their specialized SQL internally.
//
// Design rationale:
// - Keeps interface minimal to avoid bloat with mixed semantics
// - Pool() enables components to use performance-critical features
//   (batched inserts, bulk reads)
// - Mapping table creation is handled by GORM AutoMigrate inside the
//   Generator
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for higher-level
	// components to execute specialized SQL operations.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// CountRows returns the number of rows in a table. Used to decide
	// whether generation should prompt before extending an existing
	// mapping table.
	CountRows(ctx context.Context, tableName string) (int64, error)
}
