// Package iostore implements the identifier mapping store.
// The persisted form is the id_mappings table in PostgreSQL; Load
// bulk-reads it into a map for O(1) lookups by the matchers. A local
// SQLite snapshot of the same table can serve as an alternative
// source, so the transform phase does not require a live database.
package iostore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/db"
	"github.com/remaplab/remapdb/pkg/mapping"
)

// pgStore loads mappings from the id_mappings table.
type pgStore struct {
	cfg      *config.Config
	operator db.Operator
	data     map[string]uint64
}

// NewPgStore creates a store backed by PostgreSQL.
func NewPgStore(cfg *config.Config, op db.Operator) mapping.Store {
	return &pgStore{cfg: cfg, operator: op}
}

// Load bulk-reads all mappings into memory. The map is sized from a
// count query up front; with tens of millions of entries rehashing
// during load is the main cost.
func (s *pgStore) Load(ctx context.Context) error {
	pool := s.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	exists, err := s.operator.TableExists(ctx, config.MappingTable)
	if err != nil {
		return LoadError(err)
	}
	if !exists {
		return LoadError(fmt.Errorf(
			"table %s does not exist, run 'generate' first",
			config.MappingTable))
	}

	count, err := s.operator.CountRows(ctx, config.MappingTable)
	if err != nil {
		return LoadError(err)
	}

	data := make(map[string]uint64, count)

	rows, err := pool.Query(ctx,
		"SELECT old_id, new_id FROM id_mappings")
	if err != nil {
		return LoadError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var oldID string
		var newID int64
		if err = rows.Scan(&oldID, &newID); err != nil {
			return LoadError(err)
		}
		data[oldID] = uint64(newID)
	}
	if err = rows.Err(); err != nil {
		return LoadError(err)
	}

	s.data = data
	slog.Info("Mapping store loaded",
		"entries", len(data), "source", "postgres")
	return nil
}

// Reload discards the in-memory table and loads it again, picking up
// mappings added after the previous load.
func (s *pgStore) Reload(ctx context.Context) error {
	s.data = nil
	return s.Load(ctx)
}

// Lookup returns the new identifier for old and whether a mapping
// exists. Safe for concurrent readers: the map is never written
// between Load calls.
func (s *pgStore) Lookup(old string) (uint64, bool) {
	id, ok := s.data[old]
	return id, ok
}

// Len returns the number of loaded mappings.
func (s *pgStore) Len() int {
	return len(s.data)
}

// String formats the store size for reports.
func (s *pgStore) String() string {
	return humanize.Comma(int64(len(s.data))) + " mappings"
}
