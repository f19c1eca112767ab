package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

const clockLayout = "15:04:05"

// dayOutput is the JSON shape of one day's record.
type dayOutput struct {
	Date             string          `json:"date"`
	SolarNoon        string          `json:"solar_noon"`
	Sunrise          *string         `json:"sunrise"`
	Sunset           *string         `json:"sunset"`
	CivilDawn        *string         `json:"civil_dawn,omitempty"`
	CivilDusk        *string         `json:"civil_dusk,omitempty"`
	NauticalDawn     *string         `json:"nautical_dawn,omitempty"`
	NauticalDusk     *string         `json:"nautical_dusk,omitempty"`
	AstronomicalDawn *string         `json:"astronomical_dawn,omitempty"`
	AstronomicalDusk *string         `json:"astronomical_dusk,omitempty"`
	DayLengthSec     int             `json:"day_length_sec"`
	Flags            domain.DayFlags `json:"flags"`
}

func toDayOutput(day domain.DayEventRecord) dayOutput {
	return dayOutput{
		Date:             day.Date.Format("2006-01-02"),
		SolarNoon:        day.SolarNoon.Format(time.RFC3339),
		Sunrise:          isoPtr(day.Sunrise),
		Sunset:           isoPtr(day.Sunset),
		CivilDawn:        isoPtr(day.CivilDawn),
		CivilDusk:        isoPtr(day.CivilDusk),
		NauticalDawn:     isoPtr(day.NauticalDawn),
		NauticalDusk:     isoPtr(day.NauticalDusk),
		AstronomicalDawn: isoPtr(day.AstronomicalDawn),
		AstronomicalDusk: isoPtr(day.AstronomicalDusk),
		DayLengthSec:     day.DayLengthSec,
		Flags:            day.Flags,
	}
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// outputJSON prints the result as indented JSON.
func outputJSON(cmd *cobra.Command, result *domain.SunResult) error {
	days := make([]dayOutput, 0, len(result.Days))
	for _, day := range result.Days {
		days = append(days, toDayOutput(day))
	}

	payload := struct {
		Lat      float64     `json:"lat"`
		Lon      float64     `json:"lon"`
		Timezone string      `json:"timezone"`
		Days     []dayOutput `json:"days"`
	}{result.Coordinate.Lat, result.Coordinate.Lon, result.ZoneName, days}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputTable prints one compact row per day.
func outputTable(cmd *cobra.Command, result *domain.SunResult) {
	cmd.Printf("Location %.4f, %.4f (%s)\n\n", result.Coordinate.Lat, result.Coordinate.Lon, result.ZoneName)
	cmd.Printf("%-12s %-10s %-10s %-10s %s\n", "Date", "Sunrise", "Noon", "Sunset", "Day length")

	for _, day := range result.Days {
		cmd.Printf("%-12s %-10s %-10s %-10s %s\n",
			day.Date.Format("2006-01-02"),
			clockOrFlag(day.Sunrise, day.Flags),
			day.SolarNoon.Format(clockLayout),
			clockOrFlag(day.Sunset, day.Flags),
			formatDayLength(day.DayLengthSec),
		)
	}
}

// outputTwilight prints the twilight bounds beneath the table, one
// block per day.
func outputTwilight(cmd *cobra.Command, result *domain.SunResult) {
	for _, day := range result.Days {
		cmd.Printf("\n%s twilight:\n", day.Date.Format("2006-01-02"))
		printBand(cmd, "civil", day.CivilDawn, day.CivilDusk)
		printBand(cmd, "nautical", day.NauticalDawn, day.NauticalDusk)
		printBand(cmd, "astronomical", day.AstronomicalDawn, day.AstronomicalDusk)
	}
}

func printBand(cmd *cobra.Command, name string, dawn, dusk *time.Time) {
	cmd.Printf("  %-13s %s - %s\n", name, clockOrDash(dawn), clockOrDash(dusk))
}

func clockOrDash(t *time.Time) string {
	if t == nil {
		return "--:--:--"
	}
	return t.Format(clockLayout)
}

func clockOrFlag(t *time.Time, flags domain.DayFlags) string {
	switch {
	case t != nil:
		return t.Format(clockLayout)
	case flags.PolarDay:
		return "up all day"
	case flags.PolarNight:
		return "down"
	default:
		return "-"
	}
}

func formatDayLength(seconds int) string {
	d := time.Duration(seconds) * time.Second
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}
