package iostore

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/db"
	"github.com/remaplab/remapdb/pkg/mapping"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// snapshotStore loads mappings from a local SQLite snapshot file.
type snapshotStore struct {
	path string
	data map[string]uint64
}

// NewSnapshotStore creates a store backed by the SQLite snapshot in
// the cache directory.
func NewSnapshotStore(cfg *config.Config) mapping.Store {
	return &snapshotStore{path: config.SnapshotFilePath(cfg.HomeDir)}
}

// Load bulk-reads the snapshot into memory.
func (s *snapshotStore) Load(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return SnapshotReadError(s.path, err)
	}

	sdb, err := sql.Open("sqlite", s.path)
	if err != nil {
		return SnapshotReadError(s.path, err)
	}
	defer sdb.Close()

	var count int64
	err = sdb.QueryRowContext(ctx,
		"SELECT count(*) FROM id_mappings").Scan(&count)
	if err != nil {
		return SnapshotReadError(s.path, err)
	}

	data := make(map[string]uint64, count)

	rows, err := sdb.QueryContext(ctx,
		"SELECT old_id, new_id FROM id_mappings")
	if err != nil {
		return SnapshotReadError(s.path, err)
	}
	defer rows.Close()

	for rows.Next() {
		var oldID string
		var newID int64
		if err = rows.Scan(&oldID, &newID); err != nil {
			return SnapshotReadError(s.path, err)
		}
		data[oldID] = uint64(newID)
	}
	if err = rows.Err(); err != nil {
		return SnapshotReadError(s.path, err)
	}

	s.data = data
	slog.Info("Mapping store loaded",
		"entries", len(data), "source", "snapshot", "path", s.path)
	return nil
}

// Reload discards the in-memory table and loads it again.
func (s *snapshotStore) Reload(ctx context.Context) error {
	s.data = nil
	return s.Load(ctx)
}

// Lookup returns the new identifier for old and whether a mapping
// exists.
func (s *snapshotStore) Lookup(old string) (uint64, bool) {
	id, ok := s.data[old]
	return id, ok
}

// Len returns the number of loaded mappings.
func (s *snapshotStore) Len() int {
	return len(s.data)
}

// snapshotBatch is the number of rows per INSERT during export.
const snapshotBatch = 10_000

// WriteSnapshot exports the id_mappings table from PostgreSQL into a
// SQLite file at path. An existing snapshot is replaced atomically via
// a temporary file.
func WriteSnapshot(
	ctx context.Context,
	op db.Operator,
	path string,
) (int, error) {
	pool := op.Pool()
	if pool == nil {
		return 0, NotConnectedError()
	}

	count, err := op.CountRows(ctx, config.MappingTable)
	if err != nil {
		return 0, SnapshotWriteError(path, err)
	}

	tmpPath := path + ".tmp"
	os.Remove(tmpPath)

	sdb, err := sql.Open("sqlite", tmpPath)
	if err != nil {
		return 0, SnapshotWriteError(path, err)
	}

	written, err := copyMappings(ctx, pool, sdb, int(count))
	if cerr := sdb.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return 0, SnapshotWriteError(path, err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return 0, SnapshotWriteError(path, err)
	}

	slog.Info("Mapping snapshot written",
		"entries", written, "path", path)
	return written, nil
}

func copyMappings(
	ctx context.Context,
	pool *pgxpool.Pool,
	sdb *sql.DB,
	total int,
) (int, error) {
	if _, err := sdb.ExecContext(ctx, `
		CREATE TABLE id_mappings (
			old_id TEXT PRIMARY KEY,
			new_id INTEGER NOT NULL
		)`); err != nil {
		return 0, err
	}

	rows, err := pool.Query(ctx,
		"SELECT old_id, new_id FROM id_mappings")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var bar *pb.ProgressBar
	if total > 0 {
		bar = pb.Full.Start(total)
		bar.Set("prefix", "Exporting mappings: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	tx, err := sdb.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO id_mappings (old_id, new_id) VALUES (?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var written int
	for rows.Next() {
		var m mapping.Mapping
		var newID int64
		if err = rows.Scan(&m.OldID, &newID); err != nil {
			return 0, err
		}
		m.NewID = uint64(newID)
		_, err = stmt.ExecContext(ctx, m.OldID, int64(m.NewID))
		if err != nil {
			return 0, err
		}
		written++
		if bar != nil {
			bar.Increment()
		}
	}
	if err = rows.Err(); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}
