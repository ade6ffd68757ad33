package orientation

// Raw is one device orientation event as delivered by the platform.
// Pointer fields are nil when the platform did not supply the angle.
type Raw struct {
	Alpha *float64 // rotation about the screen-normal Z axis, degrees
	Beta  *float64 // front-back tilt, degrees (upright ≈ 90, flat ≈ 0)
	Gamma *float64 // left-right tilt, degrees (diagnostic only)

	// CompassDeg is a platform-supplied true compass heading
	// (0 = North, clockwise positive), when available.
	CompassDeg *float64

	// Absolute reports whether the sample is referenced to Earth frame
	// rather than an arbitrary starting orientation.
	Absolute bool
}

// Sample is a canonical orientation sample: heading in [0, 360) and pitch
// in [-90, 90]. Samples are ephemeral; they feed the smoother and are
// not retained.
type Sample struct {
	HeadingDeg float64
	PitchDeg   float64
	Absolute   bool
}
