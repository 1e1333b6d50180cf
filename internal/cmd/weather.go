package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show historical weather for a location",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("weather"); err != nil {
			return err
		}

		lat, _ := cmd.Flags().GetFloat64("lat")
		lng, _ := cmd.Flags().GetFloat64("lng")
		years, _ := cmd.Flags().GetInt("years")
		metric, _ := cmd.Flags().GetString("metric")
		place, _ := cmd.Flags().GetString("place")

		if place != "" {
			coords, err := app.Geocoding.Coordinates(cmd.Context(), place)
			if err != nil {
				return err
			}
			if coords == nil {
				return fmt.Errorf("no match for place %q", place)
			}
			lat, lng = coords.Latitude, coords.Longitude
		}

		var (
			series *domain.WeatherSeries
			err    error
		)
		switch metric {
		case "temperature":
			series, err = app.Weather.Temperature(cmd.Context(), lat, lng, years)
		case "precipitation":
			series, err = app.Weather.Precipitation(cmd.Context(), lat, lng, years)
		default:
			return fmt.Errorf("unknown metric %q (want temperature or precipitation)", metric)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s at %.5f, %.5f (last %d years)\n", metric, lat, lng, series.Years)
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PERIOD\tVALUE")
		for _, p := range series.Data {
			fmt.Fprintf(w, "%s\t%.2f %s\n", p.Period, p.Value, series.Unit)
		}
		return w.Flush()
	},
}

func init() {
	weatherCmd.Flags().Float64("lat", 0, "latitude")
	weatherCmd.Flags().Float64("lng", 0, "longitude")
	weatherCmd.Flags().Int("years", 0, "lookback window (defaults per metric)")
	weatherCmd.Flags().String("metric", "temperature", "temperature or precipitation")
	weatherCmd.Flags().String("place", "", "resolve coordinates from a place name instead of --lat/--lng")

	rootCmd.AddCommand(weatherCmd)
}
