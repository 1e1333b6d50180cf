package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode <query>",
	Short: "Search place names via the geocoding provider",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		results, err := app.Geocoding.Search(cmd.Context(), query)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tREGION\tCOUNTRY\tLAT\tLNG")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.5f\t%.5f\n", r.Name, r.Admin1, r.Country, r.Latitude, r.Longitude)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}
