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
	"github.com/remaplab/remapdb/internal/iogenerate"
	"github.com/remaplab/remapdb/internal/ioreconcile"
	"github.com/remaplab/remapdb/internal/ioschema"
	"github.com/remaplab/remapdb/internal/iostore"
	"github.com/remaplab/remapdb/internal/iotransform"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getRunCmd() *cobra.Command {
	var force bool

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the full remapping pipeline",
		Long: `Execute every pipeline stage in order:

  1. generate   populate the id_mappings table
  2. schema     rewrite schema dump declarations to bigint
  3. transform  rewrite identifier occurrences in data dumps
  4. reconcile  re-run matchers over the fresh artifacts

The reconcile stage reloads the store first, so identifiers that
gained mappings between stages are still picked up.

Examples:
  remapdb run
  remapdb run --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPipeline(cmd, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	runCmd.Flags().BoolVarP(&force, "force", "f", false,
		"extend an existing mapping table without confirmation")

	return runCmd
}

func runPipeline(cmd *cobra.Command, force bool) error {
	ctx := context.Background()

	if cmd.Flags().Changed("force") {
		cfg.Update([]config.Option{config.OptGenerateForce(force)})
	}

	if cfg.Dump.Dir == "" {
		return dumpDirError()
	}

	op, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	// Stage 1: mapping generation.
	gn.Message("Stage 1/4: generate")
	gen := iogenerate.New(cfg, op)
	if err = gen.Generate(ctx); err != nil {
		return err
	}

	// Stage 2: schema rewrite.
	gn.Message("Stage 2/4: schema")
	schemaPaths, err := iofs.SchemaFiles(cfg.Dump.Dir)
	if err != nil {
		return err
	}
	rw := ioschema.New(cfg)
	for _, path := range schemaPaths {
		if err = rw.RewriteSchema(ctx, path); err != nil {
			return err
		}
	}

	// Stage 3: data transform.
	gn.Message("Stage 3/4: transform")
	dataPaths, err := iofs.DataFiles(cfg.Dump.Dir)
	if err != nil {
		return err
	}
	st := iostore.NewPgStore(cfg, op)
	if err = st.Load(ctx); err != nil {
		return err
	}
	tr := iotransform.New(cfg, st)
	runs, err := tr.TransformAll(ctx, dataPaths)
	if err != nil {
		return err
	}
	if err = failedRunsError(runs); err != nil {
		return err
	}

	// Stage 4: reconciliation over the fresh artifacts.
	gn.Message("Stage 4/4: reconcile")
	transformedPaths, err := iofs.TransformedFiles(cfg.Dump.Dir)
	if err != nil {
		return err
	}
	rec := ioreconcile.New(cfg, st)
	runs, err = rec.Reconcile(ctx, transformedPaths)
	if err != nil {
		return err
	}
	if err = failedRunsError(runs); err != nil {
		return err
	}

	gn.Info("Pipeline complete. Artifacts are in <em>%s</em>",
		cfg.Dump.Dir)
	return nil
}
