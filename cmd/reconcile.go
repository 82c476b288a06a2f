/*
Copyright © 2026 The remapdb Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/internal/iofs"
	"github.com/remaplab/remapdb/internal/ioreconcile"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/dumpfile"
	"github.com/spf13/cobra"
)

// getReconcileCmd returns the reconcile command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getReconcileCmd() *cobra.Command {
	var (
		files        []string
		fromSnapshot bool
	)

	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-run matchers over transformed artifacts",
		Long: `Reload the mapping store and re-run the matchers in place over
already-transformed files.

Occurrences that had no mapping during the original transform pick up
mappings added since (new generate runs, new known_ids.yaml entries).
The pass is byte-idempotent: with no new mappings nothing changes, so
it is safe to run any number of times.

Examples:
  remapdb reconcile
  remapdb reconcile --files 3_documents.sql.transformed
  remapdb reconcile --from-snapshot`,
		Aliases: []string{"rec"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReconcile(cmd, files, fromSnapshot)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	reconcileCmd.Flags().StringSliceVarP(&files, "files", "F", []string{},
		"transformed files to reconcile (empty = all in dump.dir)")
	reconcileCmd.Flags().BoolVarP(&fromSnapshot, "from-snapshot", "s",
		false, "load the mapping store from the local SQLite snapshot")

	return reconcileCmd
}

func runReconcile(
	cmd *cobra.Command,
	files []string,
	fromSnapshot bool,
) error {
	ctx := context.Background()

	var reconcileOpts []config.Option
	if cmd.Flags().Changed("files") {
		reconcileOpts = append(reconcileOpts,
			config.OptTransformFiles(files))
	}
	if cmd.Flags().Changed("from-snapshot") {
		reconcileOpts = append(reconcileOpts,
			config.OptTransformFromSnapshot(fromSnapshot))
	}
	if len(reconcileOpts) > 0 {
		cfg.Update(reconcileOpts)
	}

	paths, err := resolveFiles(iofs.TransformedFiles, dumpfile.IsTransformed)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		gn.Warn("No transformed files found in <em>%s</em>",
			cfg.Dump.Dir)
		return nil
	}

	st, op, err := openStore(ctx)
	if err != nil {
		return err
	}
	if op != nil {
		defer op.Close()
	}

	rec := ioreconcile.New(cfg, st)
	runs, err := rec.Reconcile(ctx, paths)
	if err != nil {
		return err
	}

	return failedRunsError(runs)
}
