package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/parlo/internal/router"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Jump straight into a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, router.RouteStudy)
	},
}
