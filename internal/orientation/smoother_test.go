package orientation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSmoother_FactorValidation(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{0, 1, -0.2, 1.5} {
		_, err := NewSmoother(bad)
		require.Error(t, err, "factor=%v", bad)
	}

	s, err := NewSmoother(DefaultSmoothingFactor)
	require.NoError(t, err)
	require.False(t, s.Seeded())
}

func TestSmoother_FirstSampleSeeds(t *testing.T) {
	t.Parallel()

	s, err := NewSmoother(0.8)
	require.NoError(t, err)

	got := s.Update(Sample{HeadingDeg: 200, PitchDeg: 15})
	require.Equal(t, 200.0, got.HeadingDeg)
	require.Equal(t, 15.0, got.PitchDeg)
	require.True(t, s.Seeded())
}

func TestSmoother_Idempotence(t *testing.T) {
	t.Parallel()

	// Feeding the current state back in leaves it unchanged.
	s, err := NewSmoother(0.7)
	require.NoError(t, err)

	s.Update(Sample{HeadingDeg: 310, PitchDeg: -12})
	got := s.Update(Sample{HeadingDeg: 310, PitchDeg: -12})

	require.InDelta(t, 310, got.HeadingDeg, 1e-9)
	require.InDelta(t, -12, got.PitchDeg, 1e-9)
}

func TestSmoother_ConvergesAcrossNorth(t *testing.T) {
	t.Parallel()

	// Target on the far side of the 0/360 seam: circular distance must
	// shrink monotonically and approach the target, never unwinding the
	// long way around.
	s, err := NewSmoother(0.8)
	require.NoError(t, err)

	s.Update(Sample{HeadingDeg: 350, PitchDeg: 0})
	target := 10.0

	prevDist := math.Abs(Wrap180(target - 350))
	for i := 0; i < 100; i++ {
		st := s.Update(Sample{HeadingDeg: target, PitchDeg: 0})
		dist := math.Abs(Wrap180(target - st.HeadingDeg))
		require.LessOrEqual(t, dist, prevDist, "iteration %d", i)
		prevDist = dist
	}
	require.Less(t, prevDist, 0.01)
}

func TestSmoother_PitchConvergence(t *testing.T) {
	t.Parallel()

	s, err := NewSmoother(0.6)
	require.NoError(t, err)

	s.Update(Sample{HeadingDeg: 0, PitchDeg: -30})

	prev := math.Abs(45.0 - (-30.0))
	for i := 0; i < 60; i++ {
		st := s.Update(Sample{HeadingDeg: 0, PitchDeg: 45})
		dist := math.Abs(45 - st.PitchDeg)
		require.LessOrEqual(t, dist, prev, "iteration %d", i)
		prev = dist
	}
	require.Less(t, prev, 0.01)
}

func TestSmoother_HeadingStaysNormalized(t *testing.T) {
	t.Parallel()

	s, err := NewSmoother(0.8)
	require.NoError(t, err)

	s.Update(Sample{HeadingDeg: 359.5, PitchDeg: 0})
	for i := 0; i < 20; i++ {
		st := s.Update(Sample{HeadingDeg: 2, PitchDeg: 0})
		require.GreaterOrEqual(t, st.HeadingDeg, 0.0)
		require.Less(t, st.HeadingDeg, 360.0)
	}
}

func TestSmoother_Reset(t *testing.T) {
	t.Parallel()

	s, err := NewSmoother(0.8)
	require.NoError(t, err)

	s.Update(Sample{HeadingDeg: 100, PitchDeg: 10})
	s.Reset()
	require.False(t, s.Seeded())

	// Next sample seeds directly rather than blending with stale state.
	got := s.Update(Sample{HeadingDeg: 250, PitchDeg: -5})
	require.Equal(t, 250.0, got.HeadingDeg)
	require.Equal(t, -5.0, got.PitchDeg)
}
