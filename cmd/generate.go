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
	"github.com/remaplab/remapdb/internal/iogenerate"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/spf13/cobra"
)

// getGenerateCmd returns the generate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getGenerateCmd() *cobra.Command {
	var force bool

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Populate the identifier mapping table",
		Long: `Populate the id_mappings table from the legacy database.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Creates the id_mappings table if it does not exist
  3. Finds every column whose declared type matches the configured
     identifier width
  4. Inserts one (old_id, new_id) entry per distinct non-null value,
     insert-if-absent
  5. Adds externally-known identifier literals from known_ids.yaml

Re-running extends the table; existing mappings are never reassigned.
Use --force to skip the confirmation prompt when the table already
holds entries.

Examples:
  remapdb generate
  remapdb generate --force
  remapdb generate -f`,
		Aliases: []string{"gen"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runGenerate(cmd, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	generateCmd.Flags().BoolVarP(&force, "force", "f", false,
		"extend an existing mapping table without confirmation")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, force bool) error {
	ctx := context.Background()

	if cmd.Flags().Changed("force") {
		cfg.Update([]config.Option{config.OptGenerateForce(force)})
	}

	op, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	gen := iogenerate.New(cfg, op)
	if err = gen.Generate(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>remapdb transform</em>' to rewrite data dumps
	 - Run '<em>remapdb snapshot</em>' to work without a live database
`)

	return nil
}
