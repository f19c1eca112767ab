package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// algorithmLabel names the calculation method in the request echo. The
// label predates this service and is kept for client compatibility.
const algorithmLabel = "NREL_SPA_2005"

// apiError is an error with an HTTP status and a stable machine code.
type apiError struct {
	status int
	code   string
	msg    string
}

func (e *apiError) Error() string { return e.msg }

type requestEcho struct {
	Lat                 float64 `json:"lat"`
	Lon                 float64 `json:"lon"`
	ElevationM          float64 `json:"elevation_m"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	Timezone            string  `json:"timezone"`
	Algorithm           string  `json:"algorithm"`
	ElevationCorrection bool    `json:"elevation_correction"`
	IncludeTwilight     bool    `json:"include_twilight"`
}

type dayPayload struct {
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

type responseMeta struct {
	ComputedInMs  int64                     `json:"computed_in_ms"`
	RequestID     string                    `json:"request_id,omitempty"`
	DevCrossCheck []*domain.CrossCheckReport `json:"dev_crosscheck,omitempty"`
}

type sunResponse struct {
	Request requestEcho  `json:"request"`
	Days    []dayPayload `json:"days"`
	Meta    responseMeta `json:"meta"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func buildResponse(q *sunQuery, result *domain.SunResult) *sunResponse {
	resp := &sunResponse{
		Request: requestEcho{
			Lat:                 round6(result.Coordinate.Lat),
			Lon:                 round6(result.Coordinate.Lon),
			ElevationM:          result.Coordinate.ElevationM,
			StartDate:           q.start.Format(dateLayout),
			EndDate:             q.end.Format(dateLayout),
			Timezone:            result.ZoneName,
			Algorithm:           algorithmLabel,
			ElevationCorrection: q.elevationCorrection,
			IncludeTwilight:     q.includeTwilight,
		},
		Days: make([]dayPayload, 0, len(result.Days)),
	}

	for _, day := range result.Days {
		resp.Days = append(resp.Days, dayPayload{
			Date:             day.Date.Format(dateLayout),
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
		})
	}

	return resp
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps an error to the wire format. Domain sentinels get
// stable codes; anything unrecognized is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	var apiErr *apiError
	switch {
	case errors.As(err, &apiErr):
		status, code = apiErr.status, apiErr.code
	case errors.Is(err, domain.ErrInvalidCoordinate),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrRangeTooLarge),
		errors.Is(err, domain.ErrNoLocation),
		errors.Is(err, domain.ErrTimezoneResolution):
		status, code = http.StatusUnprocessableEntity, domainCode(err)
	case errors.Is(err, domain.ErrGeocodingFailed),
		errors.Is(err, domain.ErrReferenceUnavailable):
		status, code = http.StatusBadGateway, domainCode(err)
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = err.Error()
	writeJSON(w, status, body)
}

func domainCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return "invalid_date_range"
	case errors.Is(err, domain.ErrRangeTooLarge):
		return "range_too_large"
	case errors.Is(err, domain.ErrNoLocation):
		return "no_location"
	case errors.Is(err, domain.ErrTimezoneResolution):
		return "timezone_resolution_failed"
	case errors.Is(err, domain.ErrGeocodingFailed):
		return "geocoding_failed"
	case errors.Is(err, domain.ErrReferenceUnavailable):
		return "reference_unavailable"
	default:
		return "internal_error"
	}
}
