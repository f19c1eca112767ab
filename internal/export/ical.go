// Package export renders day event records as an iCalendar feed, one
// zero-duration VEVENT per occurring event.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// prodID identifies the generator in the VCALENDAR header.
const prodID = "-//helio-labs//heliotime//EN"

// Calendar builds a VCALENDAR for the given records. Absent events
// (polar days and nights, missing twilight bands) produce no VEVENT;
// solar noon is always present.
func Calendar(coord domain.GeoCoordinate, days []domain.DayEventRecord) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	for _, day := range days {
		noon := day.SolarNoon
		addEvent(cal, coord, day.Date, "solar-noon", "Solar noon", &noon)

		addEvent(cal, coord, day.Date, "sunrise", "Sunrise", day.Sunrise)
		addEvent(cal, coord, day.Date, "sunset", "Sunset", day.Sunset)

		addEvent(cal, coord, day.Date, "civil-dawn", "Civil dawn", day.CivilDawn)
		addEvent(cal, coord, day.Date, "civil-dusk", "Civil dusk", day.CivilDusk)
		addEvent(cal, coord, day.Date, "nautical-dawn", "Nautical dawn", day.NauticalDawn)
		addEvent(cal, coord, day.Date, "nautical-dusk", "Nautical dusk", day.NauticalDusk)
		addEvent(cal, coord, day.Date, "astronomical-dawn", "Astronomical dawn", day.AstronomicalDawn)
		addEvent(cal, coord, day.Date, "astronomical-dusk", "Astronomical dusk", day.AstronomicalDusk)
	}

	return cal
}

// Serialize renders the records directly to iCalendar text.
func Serialize(coord domain.GeoCoordinate, days []domain.DayEventRecord) []byte {
	return []byte(Calendar(coord, days).Serialize())
}

func addEvent(cal *ics.Calendar, coord domain.GeoCoordinate, date time.Time, slug, summary string, at *time.Time) {
	if at == nil {
		return
	}

	uid := fmt.Sprintf("%s-%s@heliotime", date.Format("20060102"), slug)
	event := cal.AddEvent(uid)
	event.SetDtStampTime(at.UTC())
	event.SetStartAt(at.UTC())
	event.SetEndAt(at.UTC())
	event.SetSummary(summary)
	event.SetGeo(coord.Lat, coord.Lon)
}
