package cmd

import (
	"fmt"
	"os"

	"github.com/remaplab/remapdb/pkg/remapdb"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n",
			remapdb.Version, remapdb.Build)
		os.Exit(0)
	}
}
