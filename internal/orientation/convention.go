package orientation

import "fmt"

// Convention maps a platform's raw orientation event into the canonical
// heading/pitch frame. The heading sign and axis conventions are measured
// facts about each sensor frame, not universal truths: platforms disagree,
// so the mapping is a swappable strategy selected by configuration and
// tested in isolation.
type Convention interface {
	// Name returns the convention identifier used in configuration.
	Name() string

	// RawToCanonical converts a raw event to a canonical sample.
	// It returns ok=false when the event lacks the angles this
	// convention needs; such events must be dropped, never propagated
	// as NaN into smoothing state.
	RawToCanonical(raw Raw) (Sample, bool)
}

// pitchFromBeta derives pitch from the front-back tilt angle.
// Upright (beta ≈ 90) maps to the horizon, tilting the device back toward
// the sky increases pitch toward +90.
func pitchFromBeta(beta float64) float64 {
	return ClampPitch(beta - 90)
}

// ZRotationConvention derives heading from the Z-axis rotation angle using
// heading = (360 - alpha) mod 360. This matches platforms where alpha
// increases counterclockwise from North.
type ZRotationConvention struct{}

// Name implements Convention.
func (ZRotationConvention) Name() string { return "zrotation" }

// RawToCanonical implements Convention.
func (ZRotationConvention) RawToCanonical(raw Raw) (Sample, bool) {
	if raw.Alpha == nil || raw.Beta == nil {
		return Sample{}, false
	}
	if isBad(*raw.Alpha) || isBad(*raw.Beta) {
		return Sample{}, false
	}

	return Sample{
		HeadingDeg: Norm360(360 - *raw.Alpha),
		PitchDeg:   pitchFromBeta(*raw.Beta),
		Absolute:   raw.Absolute,
	}, true
}

// CompassConvention uses a platform-supplied compass heading directly,
// for platforms that expose one already in the canonical frame.
type CompassConvention struct{}

// Name implements Convention.
func (CompassConvention) Name() string { return "compass" }

// RawToCanonical implements Convention.
func (CompassConvention) RawToCanonical(raw Raw) (Sample, bool) {
	if raw.CompassDeg == nil || raw.Beta == nil {
		return Sample{}, false
	}
	if isBad(*raw.CompassDeg) || isBad(*raw.Beta) {
		return Sample{}, false
	}

	return Sample{
		HeadingDeg: Norm360(*raw.CompassDeg),
		PitchDeg:   pitchFromBeta(*raw.Beta),
		Absolute:   true,
	}, true
}

// ParseConvention resolves a convention by its configuration name.
func ParseConvention(name string) (Convention, error) {
	switch name {
	case "", "zrotation":
		return ZRotationConvention{}, nil
	case "compass":
		return CompassConvention{}, nil
	default:
		return nil, fmt.Errorf("unknown orientation convention %q", name)
	}
}

// isBad reports whether an angle is NaN or infinite.
func isBad(v float64) bool {
	return v != v || v > 1e18 || v < -1e18
}
