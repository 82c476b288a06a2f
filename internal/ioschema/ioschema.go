// Package ioschema implements the SchemaRewriter interface. It
// rewrites schema dump files so that every column declaration of the
// fixed-width identifier shape becomes a bigint, matching the numeric
// identifiers the transformed data dumps carry.
package ioschema

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/internal/iostream"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/dumpfile"
	"github.com/remaplab/remapdb/pkg/remapdb"
)

// rewriter implements the SchemaRewriter interface.
type rewriter struct {
	cfg *config.Config
	re  *regexp.Regexp
}

// New creates a new SchemaRewriter. Any character type declared with
// exactly the identifier width is eligible, in every spelling pg_dump
// or hand-written DDL may use.
func New(cfg *config.Config) remapdb.SchemaRewriter {
	pat := fmt.Sprintf(
		`(?i)\b(?:character\s+varying|character|varchar|char)\s*\(\s*%d\s*\)`,
		cfg.Identifier.Width,
	)
	return &rewriter{
		cfg: cfg,
		re:  regexp.MustCompile(pat),
	}
}

// RewriteSchema streams one schema dump into its transformed sibling,
// replacing eligible type declarations with bigint. Everything else
// passes through byte-identical.
func (r *rewriter) RewriteSchema(
	ctx context.Context,
	path string,
) error {
	if err := ctx.Err(); err != nil {
		return RewriteError(path, err)
	}

	total, err := iostream.CountLines(path)
	if err != nil {
		return RewriteError(path, err)
	}

	var rewritten int
	fn := func(line string) string {
		res := r.re.ReplaceAllStringFunc(line, func(string) string {
			rewritten++
			return "bigint"
		})
		return res
	}

	out := dumpfile.TransformedName(path)
	prefix := filepath.Base(path) + ": "

	lines, err := iostream.Process(path, out, total, prefix, fn)
	if err != nil {
		return RewriteError(path, err)
	}

	slog.Info("Schema rewritten",
		"input", path,
		"output", out,
		"lines", lines,
		"columns", rewritten,
	)
	gn.Info("Rewrote <em>%d</em> column declarations in <em>%s</em>",
		rewritten, filepath.Base(path))
	return nil
}
