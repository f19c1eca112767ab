package httpapi

import (
	"net/http"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driving"
	"github.com/helio-labs/heliotime/internal/export"
)

func (s *Server) handleSun(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	q, err := parseSunQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sun, locations, checker := s.services()
	result, err := calculate(r, sun, locations, q)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := buildResponse(q, result)
	resp.Meta.ComputedInMs = time.Since(started).Milliseconds()
	resp.Meta.RequestID = requestIDFrom(r.Context())

	if q.devCrossCheck && checker != nil {
		resp.Meta.DevCrossCheck = s.runCrossCheck(r, checker, result)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleICS(w http.ResponseWriter, r *http.Request) {
	q, err := parseSunQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sun, locations, _ := s.services()
	result, err := calculate(r, sun, locations, q)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sun.ics"`)
	_, _ = w.Write(export.Serialize(result.Coordinate, result.Days))
}

// calculate resolves the location and runs the calculator.
func calculate(r *http.Request, sun driving.SunCalculator, locations driving.LocationResolver,
	q *sunQuery) (*domain.SunResult, error) {
	coord, err := locations.Resolve(r.Context(), q.location)
	if err != nil {
		return nil, err
	}

	return sun.Calculate(domain.Request{
		Coordinate:          coord,
		Start:               q.start,
		End:                 q.end,
		Conditions:          q.conditions,
		ElevationCorrection: q.elevationCorrection,
		IncludeTwilight:     q.includeTwilight,
	}, q.zoneName)
}

// runCrossCheck compares each day against the reference provider.
// Failures are logged and skipped: a broken reference never breaks the
// response.
func (s *Server) runCrossCheck(r *http.Request, checker driving.CrossChecker,
	result *domain.SunResult) []*domain.CrossCheckReport {
	reports := make([]*domain.CrossCheckReport, 0, len(result.Days))
	for _, day := range result.Days {
		report, err := checker.Check(r.Context(), result.Coordinate, day)
		if err != nil {
			s.log.Warn().Err(err).
				Str("date", day.Date.Format(dateLayout)).
				Msg("cross-check failed")
			continue
		}
		reports = append(reports, report)
	}
	return reports
}
