// Package remapdb defines the lifecycle contracts of the identifier
// remapping pipeline. Implementations live in internal/io* packages.
package remapdb

import (
	"context"
)

var (
	// Version is set by build flags.
	Version = "dev"
	// Build is set by build flags.
	Build = "n/a"
)

// Generator populates the mapping store from the legacy database.
// It discovers every column whose declared type matches the configured
// fixed-width identifier shape and inserts one mapping entry per
// distinct non-null value, insert-if-absent. Externally-known
// identifier literals from known_ids.yaml are added the same way.
//
// Generation is idempotent: re-running it never reassigns an existing
// mapping. Schema inspection failure aborts the stage; an incomplete
// column set would produce a systematically incomplete mapping.
type Generator interface {
	Generate(ctx context.Context) error
}

// SchemaRewriter rewrites schema dump files so that eligible
// fixed-width identifier column declarations become BIGINT.
type SchemaRewriter interface {
	RewriteSchema(ctx context.Context, path string) error
}

// Transformer streams dump files line by line, rewriting every mapped
// identifier occurrence in its three surface syntaxes. Output is
// written to a temporary file and renamed on success, so a partially
// written file is never observed as final output.
type Transformer interface {
	// TransformFile processes one dump file and returns its run report.
	TransformFile(ctx context.Context, path string) (*TransformationRun, error)

	// TransformAll processes the given files concurrently, bounded by
	// the configured jobs number. Per-file failures are reported and
	// the run continues; an error is returned only when every file
	// failed or the run was cancelled.
	TransformAll(ctx context.Context, paths []string) ([]*TransformationRun, error)
}

// Reconciler re-applies the matchers in place over already-transformed
// files using a freshly reloaded store. It is safe to run any number
// of times: with no new mappings it is a byte-for-byte no-op.
//
// A previously assigned numeric identifier can itself match the
// identifier character class; such occurrences count as unmapped and
// pass through unchanged.
type Reconciler interface {
	Reconcile(ctx context.Context, paths []string) ([]*TransformationRun, error)
}
