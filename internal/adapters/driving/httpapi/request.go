package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

const dateLayout = "2006-01-02"

// sunQuery is the parsed and not yet validated query string of /sun.
type sunQuery struct {
	location   domain.LocationInput
	start      time.Time
	end        time.Time
	conditions domain.AtmosphericConditions

	zoneName            string
	elevationCorrection bool
	includeTwilight     bool
	devCrossCheck       bool
}

// parseSunQuery translates the query string. Malformed values are
// reported as badRequestError; semantic problems surface later from
// domain validation.
func parseSunQuery(r *http.Request) (*sunQuery, error) {
	q := r.URL.Query()
	out := &sunQuery{zoneName: q.Get("tz")}

	var err error
	if out.location.Lat, err = optionalFloat(q.Get("lat"), "lat"); err != nil {
		return nil, err
	}
	if out.location.Lon, err = optionalFloat(q.Get("lon"), "lon"); err != nil {
		return nil, err
	}
	out.location.GPS = q.Get("gps")
	out.location.PostalCode = q.Get("postal_code")
	out.location.CountryCode = q.Get("country_code")
	out.location.City = q.Get("city")
	out.location.Country = q.Get("country")

	if v := q.Get("elevation_m"); v != "" {
		ele, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, badParam("elevation_m", v)
		}
		out.location.ElevationM = ele
	}
	if v := q.Get("pressure_hpa"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, badParam("pressure_hpa", v)
		}
		out.conditions.PressureHPa = p
	}
	if v := q.Get("temperature_c"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, badParam("temperature_c", v)
		}
		out.conditions.TemperatureC = t
	}

	if out.start, out.end, err = parseDates(q.Get("date"), q.Get("start_date"), q.Get("end_date")); err != nil {
		return nil, err
	}

	if out.elevationCorrection, err = optionalBool(q.Get("altitude_correction"), "altitude_correction", false); err != nil {
		return nil, err
	}
	// Twilight is on unless the caller opts out.
	if out.includeTwilight, err = optionalBool(q.Get("include_twilight"), "include_twilight", true); err != nil {
		return nil, err
	}
	if out.devCrossCheck, err = optionalBool(q.Get("dev_crosscheck"), "dev_crosscheck", false); err != nil {
		return nil, err
	}

	return out, nil
}

// parseDates resolves the date/start_date/end_date triple. A bare date
// wins; with nothing given the range is today (UTC).
func parseDates(date, startDate, endDate string) (start, end time.Time, err error) {
	if date != "" {
		day, err := time.ParseInLocation(dateLayout, date, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, badParam("date", date)
		}
		return day, day, nil
	}

	if startDate == "" && endDate == "" {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		return today, today, nil
	}
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, &apiError{
			status: http.StatusBadRequest,
			code:   "invalid_parameter",
			msg:    "start_date and end_date must be given together",
		}
	}

	if start, err = time.ParseInLocation(dateLayout, startDate, time.UTC); err != nil {
		return time.Time{}, time.Time{}, badParam("start_date", startDate)
	}
	if end, err = time.ParseInLocation(dateLayout, endDate, time.UTC); err != nil {
		return time.Time{}, time.Time{}, badParam("end_date", endDate)
	}
	return start, end, nil
}

func optionalFloat(v, name string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, badParam(name, v)
	}
	return &f, nil
}

func optionalBool(v, name string, def bool) (bool, error) {
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badParam(name, v)
	}
	return b, nil
}

func badParam(name, value string) error {
	return &apiError{
		status: http.StatusBadRequest,
		code:   "invalid_parameter",
		msg:    fmt.Sprintf("invalid %s: %q", name, value),
	}
}
