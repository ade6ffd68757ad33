// Package orientation turns raw device orientation events into a stable,
// calibrated heading and pitch estimate.
//
// Conventions throughout: heading 0° = North increasing clockwise, range
// [0, 360); pitch 0° = horizon, +90° = zenith, -90° = nadir.
package orientation

import "math"

// Norm360 normalizes an angle to [0, 360) degrees.
func Norm360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Wrap180 wraps an angle into (-180, 180], the shortest signed path.
// All angular differences go through here before use, so the smoothing and
// alignment math never sees the 0/360 seam.
func Wrap180(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	}
	if a <= -180 {
		a += 360
	}
	return a
}

// ClampPitch limits a pitch angle to the physical [-90, 90] range.
func ClampPitch(p float64) float64 {
	if p > 90 {
		return 90
	}
	if p < -90 {
		return -90
	}
	return p
}
