package astro

import (
	"math"
	"time"
)

// Planet identifies one of the naked-eye planets.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Mars
	Jupiter
	Saturn
)

// String returns the planet name.
func (p Planet) String() string {
	switch p {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	default:
		return "unknown"
	}
}

// planetElements returns the Keplerian mean elements for a planet at epoch
// day count d (days since 2000 Jan 0.0). Semi-major axes are in AU.
func planetElements(p Planet, d float64) orbitalElements {
	switch p {
	case Mercury:
		return orbitalElements{
			N: 48.3313 + 3.24587e-5*d,
			i: 7.0047 + 5.00e-8*d,
			w: 29.1241 + 1.01444e-5*d,
			a: 0.387098,
			e: 0.205635 + 5.59e-10*d,
			M: 168.6562 + 4.0923344368*d,
		}
	case Venus:
		return orbitalElements{
			N: 76.6799 + 2.46590e-5*d,
			i: 3.3946 + 2.75e-8*d,
			w: 54.8910 + 1.38374e-5*d,
			a: 0.723330,
			e: 0.006773 - 1.302e-9*d,
			M: 48.0052 + 1.6021302244*d,
		}
	case Mars:
		return orbitalElements{
			N: 49.5574 + 2.11081e-5*d,
			i: 1.8497 - 1.78e-8*d,
			w: 286.5016 + 2.92961e-5*d,
			a: 1.523688,
			e: 0.093405 + 2.516e-9*d,
			M: 18.6021 + 0.5240207766*d,
		}
	case Jupiter:
		return orbitalElements{
			N: 100.4542 + 2.76854e-5*d,
			i: 1.3030 - 1.557e-7*d,
			w: 273.8777 + 1.64505e-5*d,
			a: 5.20256,
			e: 0.048498 + 4.469e-9*d,
			M: 19.8950 + 0.0830853001*d,
		}
	case Saturn:
		return orbitalElements{
			N: 113.6634 + 2.38980e-5*d,
			i: 2.4886 - 1.081e-7*d,
			w: 339.3939 + 2.97661e-5*d,
			a: 9.55475,
			e: 0.055546 - 9.499e-9*d,
			M: 316.9670 + 0.0334442282*d,
		}
	default:
		return orbitalElements{}
	}
}

// PlanetPosition calculates a planet's geocentric equatorial coordinates of
// date and its distance from Earth in AU. Jupiter and Saturn carry the
// long-period mutual perturbation terms; the terms for the inner planets
// are below the accuracy this package needs.
func PlanetPosition(p Planet, t time.Time) (Equatorial, float64) {
	d := daysSinceEpoch2000(t)

	helio := heliocentricEcliptic(planetElements(p, d))

	if p == Jupiter || p == Saturn {
		helio = perturbGiant(p, helio, d)
	}

	geo := helio.Add(sunGeocentricEcliptic(d))
	eq := eclipticToEquatorial(geo, d)

	return eq, geo.Norm()
}

// perturbGiant applies the great Jupiter-Saturn inequality and related
// terms to a heliocentric position.
func perturbGiant(p Planet, helio Vec3, d float64) Vec3 {
	lon, lat, r := eclipticLonLat(helio)

	Mj := normalizeAngle360(19.8950 + 0.0830853001*d)  // Jupiter mean anomaly
	Ms := normalizeAngle360(316.9670 + 0.0334442282*d) // Saturn mean anomaly

	sin := func(deg float64) float64 { return math.Sin(degToRad(deg)) }
	cos := func(deg float64) float64 { return math.Cos(degToRad(deg)) }

	switch p {
	case Jupiter:
		lon += -0.332 * sin(2*Mj-5*Ms-67.6)
		lon += -0.056 * sin(2*Mj-2*Ms+21)
		lon += +0.042 * sin(3*Mj-5*Ms+21)
		lon += -0.036 * sin(Mj-2*Ms)
		lon += +0.022 * cos(Mj-Ms)
		lon += +0.023 * sin(2*Mj-3*Ms+52)
		lon += -0.016 * sin(Mj-5*Ms-69)
	case Saturn:
		lon += +0.812 * sin(2*Mj-5*Ms-67.6)
		lon += -0.229 * cos(2*Mj-4*Ms-2)
		lon += +0.119 * sin(Mj-2*Ms-3)
		lon += +0.046 * sin(2*Mj-6*Ms-69)
		lon += +0.014 * sin(Mj-3*Ms+32)

		lat += -0.020 * cos(2*Mj-4*Ms-2)
		lat += +0.018 * sin(2*Mj-6*Ms-49)
	}

	return eclipticFromLonLat(lon, lat, r)
}
