package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show aggregate statistics over all reports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("dashboard"); err != nil {
			return err
		}
		if err := app.Reports.Fetch(cmd.Context()); err != nil {
			return err
		}

		stats := app.Reports.DashboardStats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total reports:      %d\n", stats.TotalReports)
		fmt.Fprintf(out, "Active incidents:   %d\n", stats.ActiveIncidents)
		fmt.Fprintf(out, "Low confidence:     %d\n", stats.ResolvedIncidents)
		fmt.Fprintf(out, "This month:         %d\n", stats.ReportsThisMonth)
		fmt.Fprintf(out, "Avg credibility:    %.2f\n", stats.AvgCredibilityScore)

		if types := app.Reports.IncidentTypes(); len(types) > 0 {
			fmt.Fprintf(out, "Incident types:     %s\n", strings.Join(types, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
