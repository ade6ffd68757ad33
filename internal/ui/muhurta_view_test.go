package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-skypoint/internal/astro"
	"github.com/litescript/ls-skypoint/internal/muhurta"
)

func testDay() muhurta.Day {
	obs := astro.Observer{LatDeg: 23.81, LonDeg: 86.47, Name: "test"}
	date := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	return muhurta.ComputeDay(date, obs)
}

func TestMuhurtaViewListsWindows(t *testing.T) {
	day := testDay()
	m := NewMuhurtaModel().SetSize(80, 24)
	m = m.UpdateData(day, day.Sunrise.Add(-2*time.Hour))

	out := m.View()
	for _, want := range []string{"Brahma Muhurta", "Pratah Sandhya", "Sayam Sandhya", "Sunrise", "Sunset"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestMuhurtaViewMarksActiveWindow(t *testing.T) {
	day := testDay()
	m := NewMuhurtaModel().SetSize(80, 24)

	// Sunrise itself sits inside pratah sandhya.
	m = m.UpdateData(day, day.Sunrise)
	if out := m.View(); !strings.Contains(out, "●") {
		t.Errorf("active window should carry a marker:\n%s", out)
	}

	// Solar noon is inside no window.
	m = m.UpdateData(day, day.SolarNoon)
	if out := m.View(); strings.Contains(out, "● P") || strings.Contains(out, "● B") || strings.Contains(out, "● S") {
		t.Errorf("no window should be marked active at noon:\n%s", out)
	}
}

func TestMuhurtaViewPolarConditions(t *testing.T) {
	m := NewMuhurtaModel().SetSize(80, 24)

	m = m.UpdateData(muhurta.Day{Condition: astro.PolarDay}, time.Now())
	if out := m.View(); !strings.Contains(out, "Polar day") {
		t.Errorf("polar day view:\n%s", out)
	}

	m = m.UpdateData(muhurta.Day{Condition: astro.PolarNight}, time.Now())
	if out := m.View(); !strings.Contains(out, "Polar night") {
		t.Errorf("polar night view:\n%s", out)
	}
}
