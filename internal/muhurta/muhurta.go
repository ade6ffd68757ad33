// Package muhurta derives daily observance time windows from sunrise and
// sunset.
package muhurta

import (
	"time"

	"github.com/litescript/ls-skypoint/internal/astro"
)

// muhurtaLen is one muhurta, 1/30 of a mean day.
const muhurtaLen = 48 * time.Minute

// Window is a named observance window.
type Window struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Day holds the computed windows for one civil day. When Condition is not
// DayNormal the sun never crosses the horizon and no windows exist; the
// caller must render that state explicitly instead of showing stale or
// zero times.
type Day struct {
	Sunrise   time.Time
	SolarNoon time.Time
	Sunset    time.Time
	Condition astro.DayCondition

	Brahma        Window
	PratahSandhya Window
	SayamSandhya  Window
}

// Windows returns the day's windows in chronological order, empty during
// polar day or night.
func (d Day) Windows() []Window {
	if d.Condition != astro.DayNormal {
		return nil
	}
	return []Window{d.Brahma, d.PratahSandhya, d.SayamSandhya}
}

// ComputeDay computes the observance windows for the civil day containing
// date at the observer's location:
//
//   - brahma muhurta: the two muhurtas ending 48 minutes before sunrise
//   - pratah sandhya: sunrise ± half a muhurta
//   - sayam sandhya: sunset ± half a muhurta
func ComputeDay(date time.Time, obs astro.Observer) Day {
	sun := astro.SunTimes(date, obs)

	day := Day{
		SolarNoon: sun.SolarNoon,
		Condition: sun.Condition,
	}
	if sun.Condition != astro.DayNormal {
		return day
	}

	day.Sunrise = sun.Sunrise
	day.Sunset = sun.Sunset

	day.Brahma = Window{
		Name:  "Brahma Muhurta",
		Start: sun.Sunrise.Add(-2 * muhurtaLen),
		End:   sun.Sunrise.Add(-muhurtaLen),
	}
	day.PratahSandhya = Window{
		Name:  "Pratah Sandhya",
		Start: sun.Sunrise.Add(-muhurtaLen / 2),
		End:   sun.Sunrise.Add(muhurtaLen / 2),
	}
	day.SayamSandhya = Window{
		Name:  "Sayam Sandhya",
		Start: sun.Sunset.Add(-muhurtaLen / 2),
		End:   sun.Sunset.Add(muhurtaLen / 2),
	}

	return day
}
