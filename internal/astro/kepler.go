package astro

import (
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// orbitalElements holds Keplerian elements at a given instant.
// Angles are in degrees, the semi-major axis unit is the caller's choice
// (AU for planets, Earth radii for the Moon).
type orbitalElements struct {
	N float64 // longitude of the ascending node
	i float64 // inclination to the ecliptic
	w float64 // argument of perihelion
	a float64 // semi-major axis
	e float64 // eccentricity
	M float64 // mean anomaly
}

// eccentricAnomaly solves Kepler's equation M = E - e*sin(E) by
// Newton iteration. M in degrees, result in degrees.
func eccentricAnomaly(Mdeg, e float64) float64 {
	M := degToRad(normalizeAngle360(Mdeg))

	// First approximation
	E := M + e*math.Sin(M)*(1+e*math.Cos(M))

	for iter := 0; iter < 20; iter++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-8 {
			break
		}
	}

	return radToDeg(E)
}

// heliocentricEcliptic computes the position in the ecliptic frame from
// orbital elements. For the Moon the elements are geocentric, so the
// returned vector is geocentric in that case.
func heliocentricEcliptic(el orbitalElements) Vec3 {
	E := degToRad(eccentricAnomaly(el.M, el.e))

	// Position in the orbital plane
	xv := el.a * (math.Cos(E) - el.e)
	yv := el.a * math.Sqrt(1-el.e*el.e) * math.Sin(E)

	v := math.Atan2(yv, xv) // true anomaly
	r := math.Sqrt(xv*xv + yv*yv)

	N := degToRad(el.N)
	i := degToRad(el.i)
	vw := v + degToRad(el.w)

	return Vec3{
		X: r * (math.Cos(N)*math.Cos(vw) - math.Sin(N)*math.Sin(vw)*math.Cos(i)),
		Y: r * (math.Sin(N)*math.Cos(vw) + math.Cos(N)*math.Sin(vw)*math.Cos(i)),
		Z: r * math.Sin(vw) * math.Sin(i),
	}
}

// eclipticObliquity returns the obliquity of the ecliptic in degrees for
// the element epoch day count d.
func eclipticObliquity(d float64) float64 {
	return 23.4393 - 3.563e-7*d
}

// eclipticToEquatorial rotates an ecliptic-frame vector into the
// equatorial frame and returns RA/Dec of date.
func eclipticToEquatorial(ecl Vec3, d float64) Equatorial {
	epsRad := degToRad(eclipticObliquity(d))

	xe := ecl.X
	ye := ecl.Y*math.Cos(epsRad) - ecl.Z*math.Sin(epsRad)
	ze := ecl.Y*math.Sin(epsRad) + ecl.Z*math.Cos(epsRad)

	ra := radToDeg(math.Atan2(ye, xe))
	dec := radToDeg(math.Atan2(ze, math.Sqrt(xe*xe+ye*ye)))

	return Equatorial{RADeg: normalizeAngle360(ra), DecDeg: dec}
}

// eclipticLonLat converts an ecliptic vector to spherical longitude,
// latitude (degrees) and radius.
func eclipticLonLat(v Vec3) (lonDeg, latDeg, r float64) {
	r = v.Norm()
	lonDeg = normalizeAngle360(radToDeg(math.Atan2(v.Y, v.X)))
	latDeg = radToDeg(math.Asin(clamp1(v.Z / r)))
	return lonDeg, latDeg, r
}

// eclipticFromLonLat builds an ecliptic vector from spherical coordinates.
func eclipticFromLonLat(lonDeg, latDeg, r float64) Vec3 {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	return Vec3{
		X: r * math.Cos(lon) * math.Cos(lat),
		Y: r * math.Sin(lon) * math.Cos(lat),
		Z: r * math.Sin(lat),
	}
}

// sunGeocentricEcliptic returns the Sun's geocentric position in the
// ecliptic frame (AU) for epoch day count d. Adding it to a planet's
// heliocentric position yields the planet's geocentric position.
func sunGeocentricEcliptic(d float64) Vec3 {
	el := orbitalElements{
		N: 0,
		i: 0,
		w: 282.9404 + 4.70935e-5*d,
		a: 1.0,
		e: 0.016709 - 1.151e-9*d,
		M: 356.0470 + 0.9856002585*d,
	}

	return heliocentricEcliptic(el)
}
