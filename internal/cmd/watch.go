package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Green-Future-Society/incident-console/internal/infrastructure/ops"
)

const shutdownGrace = 5 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the reports cache fresh and serve health/metrics probes",
	Long: `watch runs until interrupted: it refreshes the reports cache on an
interval and serves /health, /health/ready and /metrics on the ops port for
supervisors and scrapers.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("dashboard"); err != nil {
			return err
		}
		ctx := cmd.Context()

		poller := ops.NewPoller(app.Cfg.WatchInterval, app.Reports.Fetch, app.Log)
		go poller.Run(ctx)

		router := ops.NewRouter(map[string]ops.Check{
			"backend":       app.Client.Reachable,
			"session_store": app.SessionCheck,
		})

		errCh := make(chan error, 1)
		go func() {
			errCh <- router.Start(":" + app.Cfg.OpsPort)
		}()
		app.Log.Info().Str("port", app.Cfg.OpsPort).Dur("interval", app.Cfg.WatchInterval).Msg("watch mode started")

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
