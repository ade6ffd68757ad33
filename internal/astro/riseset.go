package astro

import (
	"math"
	"time"
)

// DayCondition classifies a day's sun behavior at a site.
type DayCondition int

const (
	DayNormal  DayCondition = iota
	PolarDay                // sun never sets
	PolarNight              // sun never rises
)

// String returns the condition name.
func (c DayCondition) String() string {
	switch c {
	case DayNormal:
		return "normal"
	case PolarDay:
		return "polar day"
	case PolarNight:
		return "polar night"
	default:
		return "?"
	}
}

// SunDay holds sunrise, solar noon and sunset for one civil day.
// Sunrise and Sunset are only meaningful when Condition is DayNormal;
// SolarNoon is always populated.
type SunDay struct {
	Sunrise   time.Time
	SolarNoon time.Time
	Sunset    time.Time
	Condition DayCondition
}

// riseSetAltitude is the sun altitude at rise/set, accounting for
// atmospheric refraction and the solar disc radius.
const riseSetAltitude = -0.833

// SunTimes computes sunrise, solar noon and sunset for the civil day
// containing date, at the observer's location. Returned times carry the
// same location as the input date. Polar day and polar night are reported
// as distinct conditions, not errors.
func SunTimes(date time.Time, obs Observer) SunDay {
	loc := date.Location()
	y, m, d := date.Date()
	midnightUTC := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	// Mean solar noon in UTC, then correct by the equation of time
	meanNoon := midnightUTC.Add(12*time.Hour - minutesDur(4*obs.LonDeg))
	noon := meanNoon.Add(-minutesDur(equationOfTime(meanNoon)))

	haDeg, cond := sunHourAngle(noon, obs)
	day := SunDay{SolarNoon: noon.In(loc), Condition: cond}
	if cond != DayNormal {
		return day
	}

	rise := noon.Add(-hoursDur(haDeg / 15))
	set := noon.Add(hoursDur(haDeg / 15))

	// One refinement pass with the declination at the estimated times;
	// the sun's declination moves up to ~0.4°/day near the equinoxes.
	if ha, c := sunHourAngle(rise, obs); c == DayNormal {
		rise = noon.Add(-hoursDur(ha / 15))
	}
	if ha, c := sunHourAngle(set, obs); c == DayNormal {
		set = noon.Add(hoursDur(ha / 15))
	}

	day.Sunrise = rise.In(loc)
	day.Sunset = set.In(loc)

	return day
}

// sunHourAngle returns the half-arc hour angle (degrees) between solar noon
// and sunrise/sunset, or the polar condition when the sun does not cross
// the rise/set altitude at all.
func sunHourAngle(t time.Time, obs Observer) (float64, DayCondition) {
	sun := SunPosition(t)

	lat := degToRad(obs.LatDeg)
	dec := degToRad(sun.DecDeg)
	h0 := degToRad(riseSetAltitude)

	cosH := (math.Sin(h0) - math.Sin(lat)*math.Sin(dec)) / (math.Cos(lat) * math.Cos(dec))

	if cosH > 1 {
		return 0, PolarNight
	}
	if cosH < -1 {
		return 0, PolarDay
	}

	return radToDeg(math.Acos(cosH)), DayNormal
}

func minutesDur(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}

func hoursDur(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
