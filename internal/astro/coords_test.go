package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected float64
		tol      float64
	}{
		{
			name:     "J2000 epoch",
			time:     time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
			tol:      0.0001,
		},
		{
			name:     "Unix epoch",
			time:     time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2440587.5,
			tol:      0.0001,
		},
		{
			name:     "Known date 2024-01-01 00:00 UTC",
			time:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2460310.5,
			tol:      0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := julianDate(tt.time)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("julianDate() = %v, want %v (±%v)", got, tt.expected, tt.tol)
			}
		})
	}
}

func TestGreenwichMeanSiderealTime(t *testing.T) {
	// At J2000 epoch (2000-01-01 12:00 UTC), GMST should be approximately 280.46°
	t2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	gmst := greenwichMeanSiderealTime(t2000)

	if math.Abs(gmst-280.46) > 0.1 {
		t.Errorf("GMST at J2000 = %v, want ~280.46", gmst)
	}

	if gmst < 0 || gmst >= 360 {
		t.Errorf("GMST out of range: %v", gmst)
	}
}

func TestLocalSiderealTime(t *testing.T) {
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// At longitude 0 (Greenwich), LST should equal GMST
	gmst := greenwichMeanSiderealTime(testTime)
	lst0 := localSiderealTime(testTime, 0)
	if math.Abs(lst0-gmst) > 0.001 {
		t.Errorf("LST at lon=0 should equal GMST: got %v, want %v", lst0, gmst)
	}

	// At longitude +90° (east), LST should be GMST + 90°
	lst90 := localSiderealTime(testTime, 90)
	expected90 := math.Mod(gmst+90, 360)
	if math.Abs(lst90-expected90) > 0.001 {
		t.Errorf("LST at lon=90 = %v, want %v", lst90, expected90)
	}

	// LST should always be in 0-360 range
	for lon := -180.0; lon <= 180; lon += 30 {
		lst := localSiderealTime(testTime, lon)
		if lst < 0 || lst >= 360 {
			t.Errorf("LST at lon=%v out of range: %v", lon, lst)
		}
	}
}

func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	// Polaris sits within a degree of the north celestial pole, so its
	// altitude is close to the observer's latitude from anywhere in the
	// northern hemisphere.
	polaris := Equatorial{RADeg: 37.95, DecDeg: 89.26}

	tests := []struct {
		name string
		obs  Observer
	}{
		{"mid-latitude", Observer{LatDeg: 40.0, LonDeg: -105.0}},
		{"high latitude", Observer{LatDeg: 64.8, LonDeg: -147.7}},
		{"low latitude", Observer{LatDeg: 13.0, LonDeg: 77.6}},
	}

	when := time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := EquatorialToHorizontal(polaris, tt.obs, when)
			if math.Abs(h.AltDeg-tt.obs.LatDeg) > 1.0 {
				t.Errorf("Polaris altitude = %v, want ~%v", h.AltDeg, tt.obs.LatDeg)
			}
			if h.AzDeg < 0 || h.AzDeg >= 360 {
				t.Errorf("azimuth out of range: %v", h.AzDeg)
			}
		})
	}
}

func TestEquatorialToHorizontal_Zenith(t *testing.T) {
	// An object whose declination equals the latitude and whose RA equals
	// the local sidereal time is at the zenith.
	obs := Observer{LatDeg: 23.81, LonDeg: 86.47}
	when := time.Date(2024, 10, 5, 18, 0, 0, 0, time.UTC)

	lst := localSiderealTime(when, obs.LonDeg)
	eq := Equatorial{RADeg: lst, DecDeg: obs.LatDeg}

	h := EquatorialToHorizontal(eq, obs, when)
	if math.Abs(h.AltDeg-90) > 0.01 {
		t.Errorf("zenith altitude = %v, want 90", h.AltDeg)
	}
}

func TestNormalizeAngle360(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-360, 0},
		{720.5, 0.5},
	}

	for _, tt := range tests {
		if got := normalizeAngle360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeAngle360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
