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
	"fmt"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/internal/iofs"
	"github.com/remaplab/remapdb/internal/iotransform"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/dumpfile"
	"github.com/remaplab/remapdb/pkg/remapdb"
	"github.com/spf13/cobra"
)

// getTransformCmd returns the transform command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getTransformCmd() *cobra.Command {
	var (
		files        []string
		fromSnapshot bool
	)

	transformCmd := &cobra.Command{
		Use:   "transform",
		Short: "Rewrite identifier occurrences in data dumps",
		Long: `Stream data dump files line by line, replacing every mapped legacy
identifier occurrence with its new numeric identifier.

Three surface syntaxes are rewritten: quoted literal values,
path-embedded identifiers (/view/<id>) and query-string parameter
values (id=<id>). Occurrences without a mapping are left unchanged and
counted; a later 'remapdb reconcile' run picks them up.

Output goes to <name>.transformed next to the input and appears
atomically; a failed file leaves no artifact behind. Files are
processed concurrently (jobs_number).

Examples:
  remapdb transform
  remapdb transform --files 3_documents.sql,3_folders.sql
  remapdb transform --from-snapshot`,
		Aliases: []string{"tr"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTransform(cmd, files, fromSnapshot)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	transformCmd.Flags().StringSliceVarP(&files, "files", "F", []string{},
		"data dump files to transform (empty = all in dump.dir)")
	transformCmd.Flags().BoolVarP(&fromSnapshot, "from-snapshot", "s",
		false, "load the mapping store from the local SQLite snapshot")

	return transformCmd
}

func runTransform(
	cmd *cobra.Command,
	files []string,
	fromSnapshot bool,
) error {
	ctx := context.Background()

	var transformOpts []config.Option
	if cmd.Flags().Changed("files") {
		transformOpts = append(transformOpts,
			config.OptTransformFiles(files))
	}
	if cmd.Flags().Changed("from-snapshot") {
		transformOpts = append(transformOpts,
			config.OptTransformFromSnapshot(fromSnapshot))
	}
	if len(transformOpts) > 0 {
		cfg.Update(transformOpts)
	}

	paths, err := resolveFiles(iofs.DataFiles, dumpfile.IsData)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		gn.Warn("No data dump files found in <em>%s</em>", cfg.Dump.Dir)
		return nil
	}

	st, op, err := openStore(ctx)
	if err != nil {
		return err
	}
	if op != nil {
		defer op.Close()
	}

	tr := iotransform.New(cfg, st)
	runs, err := tr.TransformAll(ctx, paths)
	if err != nil {
		return err
	}

	return failedRunsError(runs)
}

// failedRunsError converts partial failures into a non-zero exit while
// successful files keep their artifacts.
func failedRunsError(runs []*remapdb.TransformationRun) error {
	var failed int
	for _, r := range runs {
		if r == nil || r.Err != nil {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return iotransform.TransformRunError("",
		fmt.Errorf("%d of %d files failed", failed, len(runs)))
}
