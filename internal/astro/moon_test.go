package astro

import (
	"math"
	"testing"
	"time"
)

// sepDeg computes the angular separation between two equatorial positions.
func sepDeg(a, b Equatorial) float64 {
	ra1 := degToRad(a.RADeg)
	dec1 := degToRad(a.DecDeg)
	ra2 := degToRad(b.RADeg)
	dec2 := degToRad(b.DecDeg)

	dRA := ra2 - ra1
	dDec := dec2 - dec1

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Sin(dRA/2)*math.Sin(dRA/2)

	return radToDeg(2 * math.Asin(math.Sqrt(clamp1(h))))
}

func TestMoonPosition_DistanceRange(t *testing.T) {
	// Geocentric lunar distance stays between roughly 56 and 64 Earth radii.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 60; day += 2 {
		_, dist := MoonPosition(start.AddDate(0, 0, day))
		if dist < 55 || dist > 65 {
			t.Errorf("Moon distance on day %d = %v ER, outside [55, 65]", day, dist)
		}
	}
}

func TestMoonPosition_DeclinationBounds(t *testing.T) {
	// With the orbit inclined 5.1° to an ecliptic tilted 23.4°, lunar
	// declination never leaves ±28.6°.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 30; day++ {
		eq, _ := MoonPosition(start.AddDate(0, 0, day))
		if math.Abs(eq.DecDeg) > 29 {
			t.Errorf("Moon Dec on day %d = %v, outside ±29", day, eq.DecDeg)
		}
		if eq.RADeg < 0 || eq.RADeg >= 360 {
			t.Errorf("Moon RA out of range: %v", eq.RADeg)
		}
	}
}

func TestMoonPosition_DailyMotion(t *testing.T) {
	// The Moon moves roughly 13° per day against the stars.
	for day := 0; day < 28; day += 7 {
		t0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		eq1, _ := MoonPosition(t0)
		eq2, _ := MoonPosition(t0.AddDate(0, 0, 1))

		motion := sepDeg(eq1, eq2)
		if motion < 10 || motion > 17 {
			t.Errorf("daily lunar motion from day %d = %v°, want 10-17", day, motion)
		}
	}
}

func TestMoonParallaxDeg(t *testing.T) {
	// At the mean distance of 60.27 ER the horizontal parallax is ~0.95°.
	par := MoonParallaxDeg(60.2666)
	if math.Abs(par-0.951) > 0.01 {
		t.Errorf("parallax at mean distance = %v, want ~0.951", par)
	}

	if got := MoonParallaxDeg(0); got != 0 {
		t.Errorf("parallax for degenerate distance = %v, want 0", got)
	}
}
