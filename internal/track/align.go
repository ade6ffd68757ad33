// Package track evaluates a smoothed device orientation against a target
// body's sky position and orchestrates the tracking session around it.
package track

import (
	"fmt"
	"math"

	"github.com/litescript/ls-skypoint/internal/ephem"
	"github.com/litescript/ls-skypoint/internal/orientation"
)

// Target is an immutable snapshot of the tracked body's position.
// The session replaces it wholesale on every ephemeris refresh.
type Target struct {
	Body   ephem.Body
	AltDeg float64 // [-90, 90]
	AzDeg  float64 // [0, 360)
}

// Tolerances control the alignment bands.
type Tolerances struct {
	// AlignDeg is the half-width of the locked band per axis.
	AlignDeg float64

	// FineDeg is the band inside which per-axis guidance is suppressed.
	FineDeg float64
}

// DefaultTolerances returns the standard 6°/2° bands.
func DefaultTolerances() Tolerances {
	return Tolerances{AlignDeg: 6, FineDeg: 2}
}

// Result is the outcome of one alignment evaluation. Recomputed on every
// sample and tick; never persisted.
type Result struct {
	AzDeltaDeg  float64 // shortest signed turn to the target, (-180, 180]
	AltDeltaDeg float64 // signed tilt to the target

	Aligned    bool
	JustLocked bool // one-shot edge, fires once per lock acquisition

	// BelowHorizon advises that the target is not currently visible,
	// independent of the alignment computation.
	BelowHorizon bool

	AzGuidance  string // e.g. "turn right ~6°", or "OK"
	AltGuidance string // e.g. "tilt up ~4°", or "OK"
}

// Evaluate compares the smoothed orientation against the target. Pure:
// same inputs always produce the same result.
func Evaluate(state orientation.State, target Target, wasLocked bool, tol Tolerances) Result {
	azDelta := orientation.Wrap180(target.AzDeg - state.HeadingDeg)
	altDelta := target.AltDeg - state.PitchDeg

	aligned := math.Abs(azDelta) < tol.AlignDeg && math.Abs(altDelta) < tol.AlignDeg

	r := Result{
		AzDeltaDeg:   azDelta,
		AltDeltaDeg:  altDelta,
		Aligned:      aligned,
		JustLocked:   aligned && !wasLocked,
		BelowHorizon: target.AltDeg < 0,
		AzGuidance:   azGuidance(azDelta, tol.FineDeg),
		AltGuidance:  altGuidance(altDelta, tol.FineDeg),
	}

	return r
}

func azGuidance(delta, fine float64) string {
	if math.Abs(delta) < fine {
		return "OK"
	}
	if delta > 0 {
		return fmt.Sprintf("turn right ~%.0f°", math.Abs(delta))
	}
	return fmt.Sprintf("turn left ~%.0f°", math.Abs(delta))
}

func altGuidance(delta, fine float64) string {
	if math.Abs(delta) < fine {
		return "OK"
	}
	if delta > 0 {
		return fmt.Sprintf("tilt up ~%.0f°", math.Abs(delta))
	}
	return fmt.Sprintf("tilt down ~%.0f°", math.Abs(delta))
}

// ArrowDeg returns the screen rotation for a direction arrow pointing the
// user toward the target: 0 = up (tilt), measured clockwise from the turn
// and tilt deltas.
func (r Result) ArrowDeg() float64 {
	return orientation.Norm360(math.Atan2(r.AzDeltaDeg, r.AltDeltaDeg) * 180 / math.Pi)
}
