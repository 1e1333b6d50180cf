package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Query the analytics backend",
}

var analyticsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the analytics dashboard summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("analytics"); err != nil {
			return err
		}

		stats, err := app.Analytics.DashboardStats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total reports:     %d\n", stats.Summary.TotalReports)
		fmt.Fprintf(out, "Verified reports:  %d\n", stats.Summary.VerifiedReports)

		if len(stats.CrimeStats) > 0 {
			fmt.Fprintln(out, "\nBy incident type:")
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for k, v := range stats.CrimeStats {
				fmt.Fprintf(w, "  %s\t%d\n", k, v)
			}
			_ = w.Flush()
		}
		if len(stats.Hotspots) > 0 {
			fmt.Fprintln(out, "\nHotspots:")
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for k, v := range stats.Hotspots {
				fmt.Fprintf(w, "  %s\t%d\n", k, v)
			}
			_ = w.Flush()
		}
		return nil
	},
}

var analyticsMapCmd = &cobra.Command{
	Use:   "map",
	Short: "Dump plottable incident points",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("analytics"); err != nil {
			return err
		}

		points, err := app.Analytics.MapData(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LAT\tLON\tDESCRIPTION")
		for _, p := range points {
			fmt.Fprintf(w, "%.5f\t%.5f\t%s\n", p.Lat, p.Lon, truncate(p.Desc, 60))
		}
		return w.Flush()
	},
}

func init() {
	analyticsCmd.AddCommand(analyticsStatsCmd, analyticsMapCmd)
	rootCmd.AddCommand(analyticsCmd)
}
