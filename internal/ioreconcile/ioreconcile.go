// Package ioreconcile implements the Reconciler interface: a repeat
// pass of the transformer over already-transformed artifacts, in
// place, after reloading the mapping store. Occurrences that were
// unmapped during the first transform pick up mappings added since.
package ioreconcile

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/internal/iotransform"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/dumpfile"
	"github.com/remaplab/remapdb/pkg/mapping"
	"github.com/remaplab/remapdb/pkg/remapdb"
)

// reconciler implements the Reconciler interface.
type reconciler struct {
	cfg   *config.Config
	store mapping.Store
}

// New creates a new Reconciler over the given mapping store.
func New(cfg *config.Config, st mapping.Store) remapdb.Reconciler {
	return &reconciler{cfg: cfg, store: st}
}

// Reconcile reloads the store and rewrites the given transformed
// artifacts in place. With no new mappings the pass is a byte-for-byte
// no-op, so it is safe to run any number of times.
func (r *reconciler) Reconcile(
	ctx context.Context,
	paths []string,
) ([]*remapdb.TransformationRun, error) {
	if err := r.store.Reload(ctx); err != nil {
		return nil, err
	}
	slog.Info("Mapping store reloaded for reconciliation",
		"entries", r.store.Len())

	var targets []string
	for _, path := range paths {
		if !dumpfile.IsTransformed(filepath.Base(path)) {
			gn.Warn("Skipping <em>%s</em>: not a transformed artifact",
				path)
			continue
		}
		targets = append(targets, path)
	}

	tr := iotransform.New(r.cfg, r.store)
	return tr.TransformAll(ctx, targets)
}
