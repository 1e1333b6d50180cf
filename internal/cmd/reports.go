package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Work with incident reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports, optionally filtered",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("reports"); err != nil {
			return err
		}
		if err := app.Reports.Fetch(cmd.Context()); err != nil {
			return err
		}

		incidentType, _ := cmd.Flags().GetString("type")
		search, _ := cmd.Flags().GetString("search")
		app.Reports.ClearFilters()
		app.Reports.SetFilters(domain.ReportFilters{IncidentType: incidentType, Search: search})

		reports := app.Reports.FilteredReports()
		if len(reports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No reports")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tLOCATION\tSCORE\tCREATED\tDESCRIPTION")
		for _, r := range reports {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
				idString(r), r.IncidentType, r.Location, r.CredibilityScore,
				createdString(r), truncate(r.Description, 48))
		}
		return w.Flush()
	},
}

var reportsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.enter("report-details"); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid report id %q", args[0])
		}

		r, err := app.Reports.FetchByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:           %s\n", idString(*r))
		fmt.Fprintf(out, "Type:         %s\n", r.IncidentType)
		fmt.Fprintf(out, "Location:     %s\n", r.Location)
		if r.Latitude != nil && r.Longitude != nil {
			fmt.Fprintf(out, "Coordinates:  %.5f, %.5f\n", *r.Latitude, *r.Longitude)
		}
		fmt.Fprintf(out, "Contact:      %s\n", r.Contact)
		fmt.Fprintf(out, "Score:        %.2f\n", r.CredibilityScore)
		fmt.Fprintf(out, "Created:      %s\n", createdString(*r))
		fmt.Fprintf(out, "Description:  %s\n", r.Description)
		if r.OriginalMessage != "" {
			fmt.Fprintf(out, "Original:     %s\n", r.OriginalMessage)
		}
		return nil
	},
}

var reportsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a new report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("report-new"); err != nil {
			return err
		}

		input, err := reportInputFromFlags(cmd)
		if err != nil {
			return err
		}

		created, err := app.Reports.Create(cmd.Context(), input)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created report %s\n", idString(*created))
		return nil
	},
}

var reportsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.enter("report-details"); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid report id %q", args[0])
		}

		input, err := reportInputFromFlags(cmd)
		if err != nil {
			return err
		}

		if _, err := app.Reports.Update(cmd.Context(), id, input); err != nil {
			return err
		}
		return nil
	},
}

var reportsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.enter("report-details"); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid report id %q", args[0])
		}
		return app.Reports.Delete(cmd.Context(), id)
	},
}

// reportInputFromFlags assembles a ReportInput from the shared create/update
// flag set, resolving the location to coordinates when possible.
func reportInputFromFlags(cmd *cobra.Command) (domain.ReportInput, error) {
	contact, _ := cmd.Flags().GetString("contact")
	location, _ := cmd.Flags().GetString("location")
	description, _ := cmd.Flags().GetString("description")
	original, _ := cmd.Flags().GetString("original-message")
	incidentType, _ := cmd.Flags().GetString("type")
	score, _ := cmd.Flags().GetFloat64("score")

	input := domain.ReportInput{
		Contact:          contact,
		Location:         location,
		Description:      description,
		OriginalMessage:  original,
		IncidentType:     incidentType,
		CredibilityScore: score,
	}

	// Best-effort geocoding; a report without coordinates is still valid.
	if location != "" {
		if coords, err := app.Geocoding.Coordinates(cmd.Context(), location); err == nil && coords != nil {
			input.Latitude = &coords.Latitude
			input.Longitude = &coords.Longitude
		}
	}
	return input, nil
}

func addReportInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("contact", "", "reporter contact")
	cmd.Flags().String("location", "", "incident location")
	cmd.Flags().String("description", "", "incident description")
	cmd.Flags().String("original-message", "", "verbatim source message")
	cmd.Flags().String("type", "", "incident type")
	cmd.Flags().Float64("score", 0, "credibility score in [0,1]")
}

func idString(r domain.Report) string {
	if r.ID == nil {
		return "-"
	}
	return strconv.Itoa(*r.ID)
}

func createdString(r domain.Report) string {
	if r.CreatedOn == nil {
		return "-"
	}
	return r.CreatedOn.Local().Format(time.DateTime)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func init() {
	reportsListCmd.Flags().String("type", "", "filter by exact incident type")
	reportsListCmd.Flags().String("search", "", "substring match on location, description, or contact")

	addReportInputFlags(reportsCreateCmd)
	addReportInputFlags(reportsUpdateCmd)

	reportsCmd.AddCommand(reportsListCmd, reportsGetCmd, reportsCreateCmd, reportsUpdateCmd, reportsDeleteCmd)
	rootCmd.AddCommand(reportsCmd)
}
