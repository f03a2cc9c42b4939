package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/parlo/internal/app"
	"github.com/abhisek/parlo/internal/config"
	"github.com/abhisek/parlo/internal/logging"
	"github.com/abhisek/parlo/internal/remote"
	"github.com/abhisek/parlo/internal/router"
)

var rootCmd = &cobra.Command{
	Use:   "parlo",
	Short: "Terminal vocabulary trainer",
	Long:  "Parlo — terminal app for drilling vocabulary against your study word list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, router.RouteHome)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("endpoint", "", "Study service GraphQL URL (overrides PARLO_ENDPOINT env var)")
	rootCmd.PersistentFlags().Int("learner", 0, "Learner id (overrides PARLO_LEARNER_ID env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp loads configuration, wires the remote service, and launches
// the TUI at the given route.
func runApp(cmd *cobra.Command, start router.Route) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags win over config file and environment.
	if ep, _ := cmd.Flags().GetString("endpoint"); ep != "" {
		cfg.Endpoint = ep
	}
	if id, _ := cmd.Flags().GetInt("learner"); id > 0 {
		cfg.LearnerID = id
	}

	log, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	svc := remote.WithLogging(remote.NewClient(cfg.Endpoint), log)

	return app.Run(app.Options{
		Service:    svc,
		Logger:     log,
		LearnerID:  cfg.LearnerID,
		BatchLimit: cfg.BatchLimit,
		StartRoute: start,
	})
}
