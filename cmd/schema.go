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
	"github.com/remaplab/remapdb/internal/ioschema"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/dumpfile"
	"github.com/spf13/cobra"
)

// getSchemaCmd returns the schema command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSchemaCmd() *cobra.Command {
	var files []string

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Rewrite identifier columns in schema dumps",
		Long: `Rewrite schema dump files so that every column declaration of the
fixed-width identifier shape becomes bigint.

The rewritten dump is written next to the input with a .transformed
suffix; the input file is never modified. No database connection is
needed.

Examples:
  remapdb schema
  remapdb schema --files 1_schema.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSchema(cmd, files)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	schemaCmd.Flags().StringSliceVarP(&files, "files", "F", []string{},
		"schema dump files to rewrite (empty = all in dump.dir)")

	return schemaCmd
}

func runSchema(cmd *cobra.Command, files []string) error {
	ctx := context.Background()

	if cmd.Flags().Changed("files") {
		cfg.Update([]config.Option{config.OptTransformFiles(files)})
	}

	paths, err := resolveFiles(iofs.SchemaFiles, dumpfile.IsSchema)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		gn.Warn("No schema dump files found in <em>%s</em>",
			cfg.Dump.Dir)
		return nil
	}

	rw := ioschema.New(cfg)
	for _, path := range paths {
		if err = rw.RewriteSchema(ctx, path); err != nil {
			return err
		}
	}

	return nil
}
