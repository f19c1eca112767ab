package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/logger"
)

var (
	sunLocation   locationFlags
	sunDate       string
	sunZone       string
	sunTwilight   bool
	sunElevCorr   bool
	sunJSON       bool
	sunCrossCheck bool
)

var sunCmd = &cobra.Command{
	Use:   "sun",
	Short: "Sun event times for a single day",
	Long: `Calculates sunrise, sunset, solar noon and optionally the twilight
bounds for one calendar day at the given location.`,
	Args: cobra.NoArgs,
	RunE: runSun,
}

func init() {
	sunLocation.addTo(sunCmd)
	sunCmd.Flags().StringVar(&sunDate, "date", "", "UTC calendar date, YYYY-MM-DD (default today)")
	sunCmd.Flags().StringVar(&sunZone, "tz", "", "IANA zone for output times (default derived from longitude)")
	sunCmd.Flags().BoolVar(&sunTwilight, "twilight", false, "include civil/nautical/astronomical twilight")
	sunCmd.Flags().BoolVar(&sunElevCorr, "altitude-correction", false, "apply horizon dip for observer elevation")
	sunCmd.Flags().BoolVar(&sunJSON, "json", false, "output as JSON")
	sunCmd.Flags().BoolVar(&sunCrossCheck, "crosscheck", false, "compare against the configured reference provider")
	rootCmd.AddCommand(sunCmd)
}

func runSun(cmd *cobra.Command, _ []string) error {
	date, err := parseDateFlag(sunDate)
	if err != nil {
		return err
	}

	result, err := calculate(cmd, sunLocation.toInput(cmd), date, date, calcOptions{
		zone:           sunZone,
		twilight:       sunTwilight,
		elevCorrection: sunElevCorr,
	})
	if err != nil {
		return err
	}

	if sunCrossCheck {
		if err := runCrossCheck(cmd, result); err != nil {
			return err
		}
	}

	if sunJSON {
		return outputJSON(cmd, result)
	}
	outputTable(cmd, result)
	if sunTwilight {
		outputTwilight(cmd, result)
	}
	return nil
}

type calcOptions struct {
	zone           string
	twilight       bool
	elevCorrection bool
}

// calculate resolves the location and runs the calculator; shared by
// the sun and range commands.
func calculate(cmd *cobra.Command, input domain.LocationInput, start, end time.Time, opts calcOptions) (*domain.SunResult, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	coord, err := locationService.Resolve(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("resolving location: %w", err)
	}
	logger.Debug("resolved location to %.4f, %.4f", coord.Lat, coord.Lon)

	result, err := sunService.Calculate(domain.Request{
		Coordinate:          coord,
		Start:               start,
		End:                 end,
		ElevationCorrection: opts.elevCorrection,
		IncludeTwilight:     opts.twilight,
	}, opts.zone)
	if err != nil {
		return nil, err
	}
	logger.Debug("computed %d day(s) in zone %s", len(result.Days), result.ZoneName)
	return result, nil
}

// runCrossCheck prints the reference comparison for each day.
func runCrossCheck(cmd *cobra.Command, result *domain.SunResult) error {
	if crossChecker == nil {
		return fmt.Errorf("cross-check requested but not configured: %w", domain.ErrReferenceUnavailable)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, day := range result.Days {
		report, err := crossChecker.Check(ctx, result.Coordinate, day)
		if err != nil {
			return fmt.Errorf("cross-checking %s: %w", day.Date.Format("2006-01-02"), err)
		}
		cmd.Printf("crosscheck %s vs %s: %s (max delta %ds, tolerance %ds)\n",
			day.Date.Format("2006-01-02"), report.Provider, report.Status,
			report.MaxDeltaSec, report.ToleranceSec)
	}
	return nil
}

// parseDateFlag parses a --date value; empty means today in UTC.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	return date, nil
}
