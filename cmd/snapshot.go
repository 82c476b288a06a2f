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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/internal/iostore"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/spf13/cobra"
)

// getSnapshotCmd returns the snapshot command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSnapshotCmd() *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export the mapping table to a local SQLite file",
		Long: `Export the id_mappings table from PostgreSQL to a SQLite file in
the cache directory.

Transform and reconcile can then run with --from-snapshot on machines
without a live database connection. An existing snapshot is replaced
atomically.

Examples:
  remapdb snapshot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSnapshot(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return snapshotCmd
}

func runSnapshot(_ *cobra.Command) error {
	ctx := context.Background()

	op, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	path := config.SnapshotFilePath(cfg.HomeDir)
	written, err := iostore.WriteSnapshot(ctx, op, path)
	if err != nil {
		return err
	}

	gn.Info("Exported <em>%s</em> mappings to <em>%s</em>",
		humanize.Comma(int64(written)), path)
	return nil
}
