// remapdb rewrites fixed-width textual identifiers in SQL dump corpora
// to newly assigned numeric identifiers.
package main

import "github.com/remaplab/remapdb/cmd"

func main() {
	cmd.Execute()
}
