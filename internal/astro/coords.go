// Package astro provides coordinate transformations and low-precision
// ephemerides for the bodies a pointer session can track.
package astro

import (
	"math"
	"time"
)

// Equatorial holds equatorial coordinates of date.
type Equatorial struct {
	RADeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Horizontal holds observer-relative horizontal coordinates.
type Horizontal struct {
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// EquatorialToHorizontal converts equatorial coordinates of date to
// horizontal coordinates for a given observer and time.
//
// Conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(eq Equatorial, obs Observer, t time.Time) Horizontal {
	lat := degToRad(obs.LatDeg)
	ra := degToRad(eq.RADeg)
	dec := degToRad(eq.DecDeg)

	lst := localSiderealTime(t, obs.LonDeg)

	// Hour Angle = LST - RA
	ha := degToRad(lst) - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp1(sinAlt))

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	az := math.Acos(clamp1(cosAz))

	// Positive hour angle puts the object west of the meridian
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AzDeg:  radToDeg(az),
		AltDeg: radToDeg(alt),
	}
}

// localSiderealTime calculates the Local Sidereal Time in degrees
// for a given UTC time and observer longitude.
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime calculates GMST in degrees for a given UTC time.
// Uses the IAU 1982 formula based on Julian Date.
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := julianDate(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Treat January/February as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5

	return jd
}

// daysSinceEpoch2000 returns days since 2000 Jan 0.0 (JD 2451543.5),
// the epoch the Keplerian element tables in this package are referred to.
func daysSinceEpoch2000(t time.Time) float64 {
	return julianDate(t) - 2451543.5
}

// normalizeAngle360 normalizes an angle to [0, 360) degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// clamp1 clamps x to [-1, 1] for safe Asin/Acos.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
