// Package cli implements the heliotime command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/helio-labs/heliotime/internal/core/ports/driven"
	"github.com/helio-labs/heliotime/internal/core/ports/driving"
	"github.com/helio-labs/heliotime/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Service wiring. Populated by initServices on first use; tests inject
// fakes directly.
var (
	configStore     driven.ConfigStore
	sunService      driving.SunCalculator
	locationService driving.LocationResolver
	crossChecker    driving.CrossChecker
)

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "heliotime",
	Short: "Sunrise, sunset and twilight times for any place and date",
	Long: `heliotime calculates solar event times - sunrise, sunset, solar noon
and the civil, nautical and astronomical twilight bounds - for any
coordinate and date, including polar day and night handling.

Locations can be given as coordinates, a "lat,lon" string, a postal
code with country code, or a city name (geocoded via Nominatim).`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if sunService != nil {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.heliotime)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
