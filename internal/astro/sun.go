package astro

import (
	"math"
	"time"
)

// sunApparent computes the Sun's apparent equatorial coordinates plus its
// mean longitude, which the equation-of-time calculation needs.
// Based on the simplified solar theory in the Astronomical Almanac;
// accuracy is on the order of 0.01 degrees.
func sunApparent(t time.Time) (raDeg, decDeg, meanLonDeg float64) {
	jd := julianDate(t)

	// Julian centuries from J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude of the Sun (degrees)
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	L0 = normalizeAngle360(L0)

	// Mean anomaly of the Sun (degrees)
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	M = normalizeAngle360(M)
	Mrad := degToRad(M)

	// Sun's equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// True longitude
	sunLon := L0 + C

	// Apparent longitude (aberration and nutation)
	omega := 125.04 - 1934.136*T
	sunLonApp := sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Mean obliquity of the ecliptic, with nutation correction
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	sunLonRad := degToRad(sunLonApp)
	epsRad := degToRad(eps)

	ra := math.Atan2(math.Cos(epsRad)*math.Sin(sunLonRad), math.Cos(sunLonRad))
	raDeg = radToDeg(ra)
	if raDeg < 0 {
		raDeg += 360
	}

	dec := math.Asin(math.Sin(epsRad) * math.Sin(sunLonRad))
	decDeg = radToDeg(dec)

	return raDeg, decDeg, L0
}

// SunPosition calculates the apparent equatorial coordinates of the Sun.
func SunPosition(t time.Time) Equatorial {
	ra, dec, _ := sunApparent(t)
	return Equatorial{RADeg: ra, DecDeg: dec}
}

// equationOfTime returns apparent-minus-mean solar time in minutes.
// Positive values mean the sundial runs ahead of the clock.
func equationOfTime(t time.Time) float64 {
	ra, _, L0 := sunApparent(t)

	// 4 minutes per degree of hour angle
	e := 4 * wrapDeg180(L0-0.0057183-ra)

	return e
}

// wrapDeg180 wraps an angle into (-180, 180].
func wrapDeg180(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	}
	if a <= -180 {
		a += 360
	}
	return a
}
