package astro

import (
	"testing"
	"time"
)

func TestPlanetPosition_GeocentricDistanceRanges(t *testing.T) {
	// Safe geocentric distance envelopes in AU.
	ranges := map[Planet][2]float64{
		Mercury: {0.5, 1.5},
		Venus:   {0.25, 1.75},
		Mars:    {0.35, 2.7},
		Jupiter: {3.9, 6.5},
		Saturn:  {7.9, 11.1},
	}

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for p, r := range ranges {
		for day := 0; day < 730; day += 30 {
			eq, dist := PlanetPosition(p, start.AddDate(0, 0, day))
			if dist < r[0] || dist > r[1] {
				t.Errorf("%s distance on day %d = %v AU, outside [%v, %v]",
					p, day, dist, r[0], r[1])
			}
			if eq.RADeg < 0 || eq.RADeg >= 360 {
				t.Errorf("%s RA out of range: %v", p, eq.RADeg)
			}
			if eq.DecDeg < -90 || eq.DecDeg > 90 {
				t.Errorf("%s Dec out of range: %v", p, eq.DecDeg)
			}
		}
	}
}

func TestPlanetPosition_InnerPlanetElongation(t *testing.T) {
	// Inferior planets never stray far from the Sun as seen from Earth:
	// Mercury stays within ~28°, Venus within ~47.5°.
	maxElong := map[Planet]float64{
		Mercury: 29.5,
		Venus:   48.5,
	}

	start := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	for p, limit := range maxElong {
		for day := 0; day < 1095; day += 10 {
			when := start.AddDate(0, 0, day)
			eq, _ := PlanetPosition(p, when)
			sun := SunPosition(when)

			if e := sepDeg(eq, sun); e > limit {
				t.Errorf("%s elongation on day %d = %v°, exceeds %v°", p, day, e, limit)
			}
		}
	}
}

func TestPlanetPosition_EclipticProximity(t *testing.T) {
	// All planets stay near the ecliptic, so declination is bounded by the
	// obliquity plus the orbital inclination (plus parallax slack).
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []Planet{Mercury, Venus, Mars, Jupiter, Saturn} {
		for day := 0; day < 730; day += 45 {
			eq, _ := PlanetPosition(p, start.AddDate(0, 0, day))
			if eq.DecDeg > 32 || eq.DecDeg < -32 {
				t.Errorf("%s Dec on day %d = %v, outside ±32", p, day, eq.DecDeg)
			}
		}
	}
}

func TestEccentricAnomaly_CircularOrbit(t *testing.T) {
	// With zero eccentricity the eccentric anomaly equals the mean anomaly.
	for _, m := range []float64{0, 45, 123.4, 359} {
		if got := eccentricAnomaly(m, 0); absDiff(got, m) > 1e-6 {
			t.Errorf("eccentricAnomaly(%v, 0) = %v, want %v", m, got, m)
		}
	}
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
