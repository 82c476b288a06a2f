package iogenerate

import (
	"context"
	"fmt"
	"strings"

	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/mapping"
)

// sourceColumn is one (table, column) pair whose declared type matches
// the fixed-width identifier shape. Used only during generation.
type sourceColumn struct {
	Table  string
	Column string
}

func (c sourceColumn) String() string {
	return c.Table + "." + c.Column
}

// eligibleColumns enumerates every column of the public schema whose
// declared type is a character type of exactly the configured
// identifier width. This includes columns that are not primary keys:
// foreign keys, parent references and the like hold the same
// identifiers.
func (g *generator) eligibleColumns(
	ctx context.Context,
) ([]sourceColumn, error) {
	q := `
SELECT table_name, column_name
FROM information_schema.columns
WHERE table_schema = 'public'
	AND data_type IN ('character varying', 'character')
	AND character_maximum_length = $1
	AND table_name <> $2
ORDER BY table_name, column_name
`
	rows, err := g.operator.Pool().Query(ctx, q,
		g.cfg.Identifier.Width, config.MappingTable)
	if err != nil {
		return nil, SchemaInspectionError(err)
	}
	defer rows.Close()

	var res []sourceColumn
	for rows.Next() {
		var col sourceColumn
		if err = rows.Scan(&col.Table, &col.Column); err != nil {
			return nil, SchemaInspectionError(err)
		}
		res = append(res, col)
	}
	if err = rows.Err(); err != nil {
		return nil, SchemaInspectionError(err)
	}

	return res, nil
}

// processColumn inserts a mapping for every distinct non-null value of
// one column. Returns the number of newly inserted mappings; values
// already present in the store are no-ops.
func (g *generator) processColumn(
	ctx context.Context,
	col sourceColumn,
) (int, error) {
	q := fmt.Sprintf(
		"SELECT DISTINCT %q FROM %q WHERE %q IS NOT NULL",
		col.Column, col.Table, col.Column,
	)

	rows, err := g.operator.Pool().Query(ctx, q)
	if err != nil {
		return 0, DistinctScanError(col.String(), err)
	}
	defer rows.Close()

	var inserted int
	batch := make([]string, 0, g.cfg.Database.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := g.insertBatch(ctx, batch)
		if err != nil {
			return InsertError(col.String(), err)
		}
		inserted += n
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		var value string
		if err = rows.Scan(&value); err != nil {
			return 0, DistinctScanError(col.String(), err)
		}

		batch = append(batch, value)
		if len(batch) == g.cfg.Database.BatchSize {
			if err = flush(); err != nil {
				return 0, err
			}
		}
	}
	if err = rows.Err(); err != nil {
		return 0, DistinctScanError(col.String(), err)
	}

	if err = flush(); err != nil {
		return 0, err
	}

	return inserted, nil
}

// insertBatch inserts mappings for the given old identifiers with
// freshly generated new ids. ON CONFLICT DO NOTHING collapses values
// observed in several columns or generation runs to a single entry;
// the first write wins.
func (g *generator) insertBatch(
	ctx context.Context,
	oldIDs []string,
) (int, error) {
	var inserted int

	// PostgreSQL limits a statement to 65535 parameters; BatchSize is
	// validated to stay under the 2-parameters-per-row ceiling.
	size := g.cfg.Database.BatchSize
	for start := 0; start < len(oldIDs); start += size {
		end := min(start+size, len(oldIDs))
		chunk := oldIDs[start:end]

		query, args := buildInsert(chunk, g.idgen)
		result, err := g.operator.Pool().Exec(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		inserted += int(result.RowsAffected())
	}

	return inserted, nil
}

// buildInsert constructs one parameterized multi-row INSERT with
// insert-if-absent semantics.
func buildInsert(
	oldIDs []string,
	idgen *mapping.IDGenerator,
) (string, []any) {
	valueStrings := make([]string, 0, len(oldIDs))
	valueArgs := make([]any, 0, len(oldIDs)*2)
	argIdx := 1

	for _, oldID := range oldIDs {
		valueStrings = append(
			valueStrings,
			fmt.Sprintf("($%d, $%d)", argIdx, argIdx+1),
		)
		valueArgs = append(valueArgs, oldID, int64(idgen.Next()))
		argIdx += 2
	}

	query := fmt.Sprintf(
		`INSERT INTO id_mappings (old_id, new_id) VALUES %s
		 ON CONFLICT (old_id) DO NOTHING`,
		strings.Join(valueStrings, ", "),
	)

	return query, valueArgs
}
