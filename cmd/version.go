package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped via -ldflags at release time; source builds
// report (devel).
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show which build of parlo this is",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("parlo %s\n", version)
	},
}
