package cmd

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/internal/iodb"
	"github.com/remaplab/remapdb/internal/iostore"
	"github.com/remaplab/remapdb/pkg/db"
	"github.com/remaplab/remapdb/pkg/errcode"
	"github.com/remaplab/remapdb/pkg/mapping"
)

// connectDB connects a database operator and prints the connection
// banner. The caller owns Close.
func connectDB(ctx context.Context) (db.Operator, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)
	return op, nil
}

// openStore loads the mapping store from PostgreSQL, or from the local
// SQLite snapshot when --from-snapshot is set. The returned operator is
// nil in the snapshot case; otherwise the caller owns Close.
func openStore(ctx context.Context) (mapping.Store, db.Operator, error) {
	if cfg.Transform.FromSnapshot {
		st := iostore.NewSnapshotStore(cfg)
		if err := st.Load(ctx); err != nil {
			return nil, nil, err
		}
		return st, nil, nil
	}

	op, err := connectDB(ctx)
	if err != nil {
		return nil, nil, err
	}

	st := iostore.NewPgStore(cfg, op)
	if err = st.Load(ctx); err != nil {
		op.Close()
		return nil, nil, err
	}
	return st, op, nil
}

// dumpDirError reports a missing dump.dir setting.
func dumpDirError() error {
	return &gn.Error{
		Code: errcode.ListDumpDirError,
		Msg: `<err>Dump directory is not set.</err>
   Set <em>dump.dir</em> in config.yaml or REMAPDB_DUMP_DIR.`,
		Err: errors.New("dump directory is not configured"),
	}
}

// resolveFiles returns the dump files a stage should process: the
// explicit --files subset resolved against dump.dir, or every file in
// dump.dir accepted by list. Files outside the stage's naming
// convention are skipped with a warning.
func resolveFiles(
	list func(string) ([]string, error),
	keep func(string) bool,
) ([]string, error) {
	if cfg.Dump.Dir == "" {
		return nil, dumpDirError()
	}

	if len(cfg.Transform.Files) == 0 {
		return list(cfg.Dump.Dir)
	}

	var res []string
	for _, f := range cfg.Transform.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(cfg.Dump.Dir, f)
		}
		if !keep(filepath.Base(f)) {
			gn.Warn("Skipping <em>%s</em>: unexpected file name", f)
			continue
		}
		res = append(res, f)
	}
	return res, nil
}
