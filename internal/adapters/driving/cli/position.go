package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

var (
	positionLocation locationFlags
	positionAt       string
	positionPressure float64
	positionTemp     float64
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Solar azimuth and altitude for one instant",
	Long: `Calculates the refraction-corrected solar position. Atmospheric
pressure and temperature adjust the refraction near the horizon.`,
	Args: cobra.NoArgs,
	RunE: runPosition,
}

func init() {
	positionLocation.addTo(positionCmd)
	positionCmd.Flags().StringVar(&positionAt, "at", "", "instant in RFC 3339, e.g. 2025-09-01T05:30:00Z (default now)")
	positionCmd.Flags().Float64Var(&positionPressure, "pressure", 0, "atmospheric pressure in hPa (default 1013.25)")
	positionCmd.Flags().Float64Var(&positionTemp, "temperature", 0, "air temperature in Celsius (default 15)")
	rootCmd.AddCommand(positionCmd)
}

func runPosition(cmd *cobra.Command, _ []string) error {
	at := time.Now().UTC()
	if positionAt != "" {
		parsed, err := time.Parse(time.RFC3339, positionAt)
		if err != nil {
			return fmt.Errorf("invalid --at %q, want RFC 3339", positionAt)
		}
		at = parsed
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	coord, err := locationService.Resolve(ctx, positionLocation.toInput(cmd))
	if err != nil {
		return fmt.Errorf("resolving location: %w", err)
	}

	conditions := domain.AtmosphericConditions{
		PressureHPa:  positionPressure,
		TemperatureC: positionTemp,
	}
	pos, err := sunService.Position(domain.PositionRequest{
		Coordinate: coord,
		At:         at,
		Conditions: conditions,
	})
	if err != nil {
		return err
	}

	cmd.Printf("At %s from %.4f, %.4f:\n", at.Format(time.RFC3339), coord.Lat, coord.Lon)
	cmd.Printf("  azimuth   %8.3f°\n", pos.AzimuthDeg)
	cmd.Printf("  altitude  %8.3f°\n", pos.AltitudeDeg)
	return nil
}
