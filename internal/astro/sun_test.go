package astro

import (
	"math"
	"testing"
	"time"
)

func TestSunPosition_Seasons(t *testing.T) {
	tests := []struct {
		name    string
		time    time.Time
		wantDec float64
		tol     float64
	}{
		{
			name:    "March equinox 2024",
			time:    time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC),
			wantDec: 0,
			tol:     0.3,
		},
		{
			name:    "June solstice 2024",
			time:    time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC),
			wantDec: 23.44,
			tol:     0.1,
		},
		{
			name:    "December solstice 2024",
			time:    time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC),
			wantDec: -23.44,
			tol:     0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sun := SunPosition(tt.time)
			if math.Abs(sun.DecDeg-tt.wantDec) > tt.tol {
				t.Errorf("Sun Dec = %v, want %v (±%v)", sun.DecDeg, tt.wantDec, tt.tol)
			}
			if sun.RADeg < 0 || sun.RADeg >= 360 {
				t.Errorf("Sun RA out of range: %v", sun.RADeg)
			}
		})
	}
}

func TestSunPosition_EquinoxRA(t *testing.T) {
	// At the March equinox the Sun crosses RA 0 (or 360).
	sun := SunPosition(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))
	dist := math.Min(sun.RADeg, 360-sun.RADeg)
	if dist > 0.5 {
		t.Errorf("Sun RA at equinox = %v, want near 0/360", sun.RADeg)
	}
}

func TestEquationOfTime_Bounds(t *testing.T) {
	// The equation of time stays within roughly ±17 minutes year-round.
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for day := 0; day < 365; day += 5 {
		e := equationOfTime(start.AddDate(0, 0, day))
		if e < -17 || e > 17 {
			t.Errorf("equation of time on day %d = %v min, outside ±17", day, e)
		}
	}
}

func TestEquationOfTime_NovemberMaximum(t *testing.T) {
	// Early November has the largest positive excursion, around +16 minutes.
	e := equationOfTime(time.Date(2024, 11, 3, 12, 0, 0, 0, time.UTC))
	if e < 15 || e > 17.5 {
		t.Errorf("equation of time in early November = %v min, want ~16.4", e)
	}
}
