package cli

import (
	"github.com/spf13/cobra"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// locationFlags is the shared set of location inputs. Each command
// owns its own instance so flag state never leaks between commands.
type locationFlags struct {
	lat         float64
	lon         float64
	gps         string
	postalCode  string
	countryCode string
	city        string
	country     string
	elevationM  float64
}

func (f *locationFlags) addTo(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&f.lon, "lon", 0, "longitude in degrees")
	cmd.Flags().StringVar(&f.gps, "gps", "", `coordinates as "lat,lon"`)
	cmd.Flags().StringVar(&f.postalCode, "postal-code", "", "postal code (requires --country-code)")
	cmd.Flags().StringVar(&f.countryCode, "country-code", "", "ISO country code for --postal-code")
	cmd.Flags().StringVar(&f.city, "city", "", "city name")
	cmd.Flags().StringVar(&f.country, "country", "", "country name for --city")
	cmd.Flags().Float64Var(&f.elevationM, "elevation", 0, "observer elevation in metres")
}

// toInput converts the flags to a location input, treating --lat/--lon
// as given only when the user actually set them.
func (f *locationFlags) toInput(cmd *cobra.Command) domain.LocationInput {
	input := domain.LocationInput{
		GPS:         f.gps,
		PostalCode:  f.postalCode,
		CountryCode: f.countryCode,
		City:        f.city,
		Country:     f.country,
		ElevationM:  f.elevationM,
	}
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
		input.Lat = &f.lat
		input.Lon = &f.lon
	}
	return input
}
