package sensor

import (
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-skypoint/internal/orientation"
)

// SimConfig controls the simulated orientation sweep.
type SimConfig struct {
	StartHeadingDeg float64
	StartPitchDeg   float64

	// HeadingRateDeg and PitchRateDeg are degrees per second of sweep.
	HeadingRateDeg float64
	PitchRateDeg   float64

	// JitterDeg is the amplitude of the sinusoidal noise layered on both
	// axes, imitating hand tremor and sensor noise.
	JitterDeg float64

	// Interval between events. Real devices deliver 30-60 events/second.
	Interval time.Duration
}

// DefaultSimConfig returns a slow sweep with mild jitter.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		StartHeadingDeg: 0,
		StartPitchDeg:   0,
		HeadingRateDeg:  3,
		PitchRateDeg:    1,
		JitterDeg:       0.8,
		Interval:        50 * time.Millisecond,
	}
}

// SimSource emits a scripted orientation sweep in the zrotation raw frame.
// It lets the whole pipeline run on machines without orientation sensors.
type SimSource struct {
	cfg SimConfig

	mu      sync.Mutex
	stopCh  chan struct{}
	started bool
}

// NewSimSource creates a simulated source.
func NewSimSource(cfg SimConfig) *SimSource {
	if cfg.Interval <= 0 {
		cfg.Interval = 50 * time.Millisecond
	}
	return &SimSource{cfg: cfg}
}

// Start implements Source. The simulator never denies permission.
func (s *SimSource) Start(h Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.started = true
	s.stopCh = make(chan struct{})

	go s.run(h, s.stopCh)

	return nil
}

// Stop implements Source.
func (s *SimSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	close(s.stopCh)
}

func (s *SimSource) run(h Handler, stop <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(start).Seconds()

			heading := s.cfg.StartHeadingDeg + s.cfg.HeadingRateDeg*elapsed
			pitch := s.cfg.StartPitchDeg + s.cfg.PitchRateDeg*elapsed
			jitter := s.cfg.JitterDeg * math.Sin(elapsed*11)

			// Invert through the zrotation convention so the canonical
			// pipeline reproduces the scripted sweep.
			alpha := orientation.Norm360(360 - (heading + jitter))
			beta := clampBeta(pitch+jitter*0.5) + 90

			h(orientation.Raw{
				Alpha:    &alpha,
				Beta:     &beta,
				Absolute: true,
			})
		}
	}
}

func clampBeta(p float64) float64 {
	if p > 89 {
		return 89
	}
	if p < -89 {
		return -89
	}
	return p
}
