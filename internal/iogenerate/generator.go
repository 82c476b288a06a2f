// Package iogenerate implements the Generator interface for
// populating the identifier mapping store. This is an impure I/O
// package that inspects the legacy schema and performs bulk inserts.
package iogenerate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/remaplab/remapdb/internal/ioknown"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/db"
	"github.com/remaplab/remapdb/pkg/mapping"
	"github.com/remaplab/remapdb/pkg/remapdb"
	"github.com/remaplab/remapdb/pkg/schema"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// generator implements the Generator interface.
type generator struct {
	cfg      *config.Config
	operator db.Operator
	idgen    *mapping.IDGenerator
}

// New creates a new Generator.
func New(cfg *config.Config, op db.Operator) remapdb.Generator {
	return &generator{
		cfg:      cfg,
		operator: op,
		idgen:    mapping.NewIDGenerator(),
	}
}

// Generate discovers every eligible column, inserts one mapping entry
// per distinct non-null value, and adds the supplementary known
// identifier literals. Insert-if-absent semantics make the whole stage
// idempotent: re-running never reassigns an existing mapping.
func (g *generator) Generate(ctx context.Context) error {
	pool := g.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting mapping generation")

	if err := g.ensureTable(); err != nil {
		return err
	}

	count, err := g.operator.CountRows(ctx, config.MappingTable)
	if err != nil {
		return err
	}
	if count > 0 && !g.cfg.Generate.Force {
		if !promptExtend(count) {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	cols, err := g.eligibleColumns(ctx)
	if err != nil {
		// Fatal: an incomplete column set produces a systematically
		// incomplete mapping.
		return err
	}

	gn.Info("Found <em>%d</em> eligible columns", len(cols))
	slog.Info("Eligible columns discovered", "count", len(cols))

	inserted, err := g.processColumns(ctx, cols)
	if err != nil {
		return err
	}

	knownInserted, err := g.processKnownIDs(ctx)
	if err != nil {
		return err
	}

	total, err := g.operator.CountRows(ctx, config.MappingTable)
	if err != nil {
		return err
	}

	totalDuration := time.Since(startTime)
	slog.Info("Mapping generation complete",
		"columns", len(cols),
		"inserted", inserted,
		"known_ids", knownInserted,
		"store_size", total,
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	gn.Info(`Mapping generation complete
Columns scanned: %d, new mappings: %s, known ids: %d
Store size: <em>%s</em>
Elapsed time: <em>%s</em>
`,
		len(cols),
		humanize.Comma(int64(inserted)),
		knownInserted,
		humanize.Comma(total),
		gnfmt.TimeString(totalDuration.Seconds()),
	)

	return nil
}

// ensureTable creates or updates the id_mappings table with GORM
// AutoMigrate. AutoMigrate is idempotent, so this runs before every
// generation pass.
func (g *generator) ensureTable() error {
	sqlDB := stdlib.OpenDBFromPool(g.operator.Pool())

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return TableCreateError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return TableCreateError(err)
	}

	return nil
}

// processColumns scans eligible columns concurrently. Any column
// failure cancels the rest: a partially scanned schema is as bad as an
// uninspected one.
func (g *generator) processColumns(
	ctx context.Context,
	cols []sourceColumn,
) (int, error) {
	var inserted int64

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.cfg.JobsNumber)

	results := make(chan int, len(cols))

	for _, col := range cols {
		grp.Go(func() error {
			n, err := g.processColumn(ctx, col)
			if err != nil {
				return err
			}
			results <- n
			slog.Info("Column processed",
				"table", col.Table,
				"column", col.Column,
				"inserted", n,
			)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return 0, err
	}
	close(results)
	for n := range results {
		inserted += int64(n)
	}

	return int(inserted), nil
}

// processKnownIDs inserts the supplementary externally-known literals
// from known_ids.yaml.
func (g *generator) processKnownIDs(ctx context.Context) (int, error) {
	known, err := ioknown.New(g.cfg).Load()
	if err != nil {
		return 0, err
	}
	if len(known.KnownIDs) == 0 {
		return 0, nil
	}

	gn.Info("Adding <em>%d</em> known identifier literals",
		len(known.KnownIDs))

	n, err := g.insertBatch(ctx, known.KnownIDs)
	if err != nil {
		return 0, InsertError(config.MappingTable, err)
	}
	return n, nil
}

// promptExtend asks for confirmation before extending a mapping table
// that already holds entries. Returns true to continue.
func promptExtend(count int64) bool {
	gn.Warn(
		"The mapping table already holds <em>%s</em> entries.",
		humanize.Comma(count),
	)
	gn.Warn("Generation will extend it; existing mappings stay untouched.")
	fmt.Print("\nDo you want to continue? (yes/no): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		// Empty input defaults to yes.
		return true
	}
	return response == "yes" || response == "y" ||
		response == "Yes" || response == "Y"
}
