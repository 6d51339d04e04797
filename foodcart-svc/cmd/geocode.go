package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode ADDRESS...",
	Short: "Resolve addresses through the geocode cache",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeps(settings)
		defer d.Close()

		out := cmd.OutOrStdout()
		for _, address := range args {
			coords, ok := d.geocache.Resolve(cmd.Context(), address)
			if !ok {
				fmt.Fprintf(out, "%s\tunknown\n", address)
				continue
			}
			fmt.Fprintf(out, "%s\t%.6f,%.6f\n", address, coords.Lat, coords.Lon)
		}
		return nil
	},
}
