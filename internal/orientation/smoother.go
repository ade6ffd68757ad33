package orientation

import "fmt"

// State is the smoothed orientation estimate. Owned exclusively by the
// Smoother; readers get copies.
type State struct {
	HeadingDeg float64 // [0, 360)
	PitchDeg   float64 // [-90, 90]
}

// DefaultSmoothingFactor balances jitter damping against latency.
const DefaultSmoothingFactor = 0.8

// Smoother is an exponential low-pass filter over heading and pitch.
// Heading is filtered circularly along the shortest signed path so a
// swing across North never unwinds through 360°; pitch is bounded and
// seam-free, so a plain linear filter suffices.
type Smoother struct {
	factor float64
	seeded bool
	state  State
}

// NewSmoother creates a smoother with the given smoothing factor in (0, 1).
// Higher factors are smoother but lag more.
func NewSmoother(factor float64) (*Smoother, error) {
	if factor <= 0 || factor >= 1 {
		return nil, fmt.Errorf("smoothing factor %v outside (0, 1)", factor)
	}
	return &Smoother{factor: factor}, nil
}

// Update folds one accepted sample into the state and returns the new
// state. It must be called exactly once per accepted sample, before any
// guidance computation reads the state.
func (s *Smoother) Update(in Sample) State {
	if !s.seeded {
		s.state = State{HeadingDeg: Norm360(in.HeadingDeg), PitchDeg: ClampPitch(in.PitchDeg)}
		s.seeded = true
		return s.state
	}

	responsiveness := 1 - s.factor

	d := Wrap180(in.HeadingDeg - s.state.HeadingDeg)
	s.state.HeadingDeg = Norm360(s.state.HeadingDeg + d*responsiveness)

	s.state.PitchDeg = ClampPitch(s.state.PitchDeg*s.factor + in.PitchDeg*responsiveness)

	return s.state
}

// State returns the current smoothed state.
func (s *Smoother) State() State {
	return s.state
}

// Seeded reports whether at least one sample has been accepted.
func (s *Smoother) Seeded() bool {
	return s.seeded
}

// Reset clears the state so the next sample seeds the filter.
func (s *Smoother) Reset() {
	s.seeded = false
	s.state = State{}
}
