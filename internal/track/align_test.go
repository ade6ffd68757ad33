package track

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-skypoint/internal/ephem"
	"github.com/litescript/ls-skypoint/internal/orientation"
)

func TestEvaluate_Boundary(t *testing.T) {
	t.Parallel()

	tol := DefaultTolerances()
	target := Target{Body: ephem.BodyJupiter, AltDeg: 40, AzDeg: 120}

	// 5.999° off in azimuth, dead-on in altitude: inside the band.
	r := Evaluate(orientation.State{HeadingDeg: 120 - 5.999, PitchDeg: 40}, target, false, tol)
	require.True(t, r.Aligned)

	// 6.001° off: outside.
	r = Evaluate(orientation.State{HeadingDeg: 120 - 6.001, PitchDeg: 40}, target, false, tol)
	require.False(t, r.Aligned)

	// Exactly 6° is outside (strict inequality).
	r = Evaluate(orientation.State{HeadingDeg: 114, PitchDeg: 40}, target, false, tol)
	require.False(t, r.Aligned)
}

func TestEvaluate_LockEdge(t *testing.T) {
	t.Parallel()

	tol := DefaultTolerances()
	target := Target{Body: ephem.BodyMoon, AltDeg: 30, AzDeg: 200}
	aligned := orientation.State{HeadingDeg: 200, PitchDeg: 30}
	away := orientation.State{HeadingDeg: 150, PitchDeg: 10}

	// First aligned evaluation fires the edge.
	r1 := Evaluate(aligned, target, false, tol)
	require.True(t, r1.Aligned)
	require.True(t, r1.JustLocked)

	// Staying aligned does not re-fire.
	r2 := Evaluate(aligned, target, r1.Aligned, tol)
	require.True(t, r2.Aligned)
	require.False(t, r2.JustLocked)

	// Leaving and re-entering fires again.
	r3 := Evaluate(away, target, r2.Aligned, tol)
	require.False(t, r3.Aligned)

	r4 := Evaluate(aligned, target, r3.Aligned, tol)
	require.True(t, r4.JustLocked)
}

func TestEvaluate_GuidanceScenario(t *testing.T) {
	t.Parallel()

	// Observer at (23.81N, 86.47E) hunting Jupiter at (alt 40, az 120)
	// with smoothed state (heading 114, pitch 36): 6° right, 4° up.
	target := Target{Body: ephem.BodyJupiter, AltDeg: 40, AzDeg: 120}
	state := orientation.State{HeadingDeg: 114, PitchDeg: 36}

	r := Evaluate(state, target, false, DefaultTolerances())

	require.InDelta(t, 6, r.AzDeltaDeg, 1e-9)
	require.InDelta(t, 4, r.AltDeltaDeg, 1e-9)
	require.False(t, r.Aligned, "6° azimuth delta sits on the boundary")
	require.Equal(t, "turn right ~6°", r.AzGuidance)
	require.Equal(t, "tilt up ~4°", r.AltGuidance)
	require.False(t, r.BelowHorizon)
}

func TestEvaluate_ExactMatch(t *testing.T) {
	t.Parallel()

	target := Target{Body: ephem.BodyJupiter, AltDeg: 40, AzDeg: 120}
	state := orientation.State{HeadingDeg: 120, PitchDeg: 40}

	r := Evaluate(state, target, false, DefaultTolerances())

	require.True(t, r.Aligned)
	require.True(t, r.JustLocked)
	require.Equal(t, "OK", r.AzGuidance)
	require.Equal(t, "OK", r.AltGuidance)
}

func TestEvaluate_FineToleranceSuppression(t *testing.T) {
	t.Parallel()

	target := Target{Body: ephem.BodySaturn, AltDeg: 25, AzDeg: 90}

	// 1.5° off per axis: aligned, guidance suppressed.
	r := Evaluate(orientation.State{HeadingDeg: 88.5, PitchDeg: 23.5}, target, false, DefaultTolerances())
	require.True(t, r.Aligned)
	require.Equal(t, "OK", r.AzGuidance)
	require.Equal(t, "OK", r.AltGuidance)

	// 3° off: aligned but guidance still directs.
	r = Evaluate(orientation.State{HeadingDeg: 93, PitchDeg: 28}, target, false, DefaultTolerances())
	require.True(t, r.Aligned)
	require.Equal(t, "turn left ~3°", r.AzGuidance)
	require.Equal(t, "tilt down ~3°", r.AltGuidance)
}

func TestEvaluate_WrapAroundNorth(t *testing.T) {
	t.Parallel()

	// Target just east of North, device just west: the short path is 2°
	// right, never 358° left.
	target := Target{Body: ephem.BodyVenus, AltDeg: 10, AzDeg: 1}
	state := orientation.State{HeadingDeg: 359, PitchDeg: 10}

	r := Evaluate(state, target, false, DefaultTolerances())
	require.InDelta(t, 2, r.AzDeltaDeg, 1e-9)
	require.True(t, r.Aligned)
}

func TestEvaluate_BelowHorizonAdvisory(t *testing.T) {
	t.Parallel()

	target := Target{Body: ephem.BodyMars, AltDeg: -12, AzDeg: 300}

	// The advisory is independent of alignment: pointing straight at a
	// set body still reports it as not visible.
	r := Evaluate(orientation.State{HeadingDeg: 300, PitchDeg: -12}, target, false, DefaultTolerances())
	require.True(t, r.BelowHorizon)
	require.True(t, r.Aligned)

	r = Evaluate(orientation.State{HeadingDeg: 100, PitchDeg: 45}, target, false, DefaultTolerances())
	require.True(t, r.BelowHorizon)
	require.False(t, r.Aligned)
}

func TestResult_ArrowDeg(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		az, alt  float64
		wantDeg  float64
	}{
		{"straight up", 0, 10, 0},
		{"right", 10, 0, 90},
		{"down", 0, -10, 180},
		{"left", -10, 0, 270},
		{"up-right", 10, 10, 45},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Result{AzDeltaDeg: c.az, AltDeltaDeg: c.alt}
			require.InDelta(t, c.wantDeg, r.ArrowDeg(), 1e-9)
		})
	}
}
