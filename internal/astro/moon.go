package astro

import (
	"math"
	"time"
)

// MoonPosition calculates the Moon's geocentric equatorial coordinates of
// date and its distance in Earth radii. Uses Keplerian mean elements with
// the principal perturbation terms; accuracy is a few arcminutes, which is
// far inside the alignment tolerance this package serves.
func MoonPosition(t time.Time) (Equatorial, float64) {
	d := daysSinceEpoch2000(t)

	el := orbitalElements{
		N: 125.1228 - 0.0529538083*d,
		i: 5.1454,
		w: 318.0634 + 0.1643573223*d,
		a: 60.2666, // Earth radii
		e: 0.054900,
		M: 115.3654 + 13.0649929509*d,
	}

	geo := heliocentricEcliptic(el) // geocentric for the Moon
	lon, lat, r := eclipticLonLat(geo)

	// Fundamental arguments for the perturbation series
	Ms := normalizeAngle360(356.0470 + 0.9856002585*d) // Sun mean anomaly
	ws := 282.9404 + 4.70935e-5*d                      // Sun argument of perihelion
	Ls := normalizeAngle360(Ms + ws)                   // Sun mean longitude

	Mm := normalizeAngle360(el.M)           // Moon mean anomaly
	Lm := normalizeAngle360(el.N + el.w + el.M) // Moon mean longitude
	D := normalizeAngle360(Lm - Ls)         // mean elongation
	F := normalizeAngle360(Lm - el.N)       // argument of latitude

	sin := func(deg float64) float64 { return math.Sin(degToRad(deg)) }
	cos := func(deg float64) float64 { return math.Cos(degToRad(deg)) }

	// Perturbations in longitude (degrees); the first term is the evection,
	// the second the variation.
	lon += -1.274 * sin(Mm-2*D)
	lon += +0.658 * sin(2*D)
	lon += -0.186 * sin(Ms)
	lon += -0.059 * sin(2*Mm-2*D)
	lon += -0.057 * sin(Mm-2*D+Ms)
	lon += +0.053 * sin(Mm+2*D)
	lon += +0.046 * sin(2*D-Ms)
	lon += +0.041 * sin(Mm-Ms)
	lon += -0.035 * sin(D)
	lon += -0.031 * sin(Mm+Ms)
	lon += -0.015 * sin(2*F-2*D)
	lon += +0.011 * sin(Mm-4*D)

	// Perturbations in latitude (degrees)
	lat += -0.173 * sin(F-2*D)
	lat += -0.055 * sin(Mm-F-2*D)
	lat += -0.046 * sin(Mm+F-2*D)
	lat += +0.033 * sin(F+2*D)
	lat += +0.017 * sin(2*Mm+F)

	// Perturbations in distance (Earth radii)
	r += -0.58 * cos(Mm-2*D)
	r += -0.46 * cos(2*D)

	eq := eclipticToEquatorial(eclipticFromLonLat(lon, lat, r), d)

	return eq, r
}

// MoonParallaxDeg returns the Moon's equatorial horizontal parallax in
// degrees for a geocentric distance in Earth radii. Subtracting
// parallax*cos(alt) from a geocentric altitude gives the topocentric
// altitude to sufficient accuracy for alignment guidance.
func MoonParallaxDeg(distEarthRadii float64) float64 {
	if distEarthRadii <= 1 {
		return 0
	}
	return radToDeg(math.Asin(1 / distEarthRadii))
}
