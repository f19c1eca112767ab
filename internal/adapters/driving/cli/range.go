package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/helio-labs/heliotime/internal/export"
)

var (
	rangeLocation locationFlags
	rangeStart    string
	rangeEnd      string
	rangeZone     string
	rangeTwilight bool
	rangeElevCorr bool
	rangeJSON     bool
	rangeICalPath string
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Sun event times for a date range",
	Long: `Calculates one record per UTC calendar day from --start to --end
inclusive. With --ical the records are written as an iCalendar file
instead of printed.`,
	Args: cobra.NoArgs,
	RunE: runRange,
}

func init() {
	rangeLocation.addTo(rangeCmd)
	rangeCmd.Flags().StringVar(&rangeStart, "start", "", "first date, YYYY-MM-DD")
	rangeCmd.Flags().StringVar(&rangeEnd, "end", "", "last date, YYYY-MM-DD")
	rangeCmd.Flags().StringVar(&rangeZone, "tz", "", "IANA zone for output times (default derived from longitude)")
	rangeCmd.Flags().BoolVar(&rangeTwilight, "twilight", false, "include civil/nautical/astronomical twilight")
	rangeCmd.Flags().BoolVar(&rangeElevCorr, "altitude-correction", false, "apply horizon dip for observer elevation")
	rangeCmd.Flags().BoolVar(&rangeJSON, "json", false, "output as JSON")
	rangeCmd.Flags().StringVar(&rangeICalPath, "ical", "", "write an iCalendar file to this path")
	_ = rangeCmd.MarkFlagRequired("start")
	_ = rangeCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, _ []string) error {
	start, err := parseRangeDate("start", rangeStart)
	if err != nil {
		return err
	}
	end, err := parseRangeDate("end", rangeEnd)
	if err != nil {
		return err
	}

	result, err := calculate(cmd, rangeLocation.toInput(cmd), start, end, calcOptions{
		zone:           rangeZone,
		twilight:       rangeTwilight,
		elevCorrection: rangeElevCorr,
	})
	if err != nil {
		return err
	}

	if rangeICalPath != "" {
		data := export.Serialize(result.Coordinate, result.Days)
		if err := os.WriteFile(rangeICalPath, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", rangeICalPath, err)
		}
		cmd.Printf("wrote %d day(s) to %s\n", len(result.Days), rangeICalPath)
		return nil
	}

	if rangeJSON {
		return outputJSON(cmd, result)
	}
	outputTable(cmd, result)
	if rangeTwilight {
		outputTwilight(cmd, result)
	}
	return nil
}

func parseRangeDate(name, value string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD", name, value)
	}
	return date, nil
}
