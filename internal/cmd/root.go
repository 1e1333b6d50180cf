// Package cmd defines the cobra command tree of the incident console.
package cmd

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Green-Future-Society/incident-console/internal/infrastructure/config"
	"github.com/Green-Future-Society/incident-console/pkg/logger"
)

// app is the process-wide application instance, built once before any
// command runs.
var app *App

var rootCmd = &cobra.Command{
	Use:   "incident-console",
	Short: "Terminal console for the incident-reporting platform",
	Long: `incident-console is the administrator client for the incident-reporting
and analytics backend: log in, submit and review incident reports, resolve
place names, and inspect crime and weather analytics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Missing .env is fine; the environment may be set directly.
		_ = godotenv.Load()

		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}

		log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

		app, err = newApp(cmd.Context(), cfg, log)
		return err
	},
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
