package track

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/litescript/ls-skypoint/internal/astro"
	"github.com/litescript/ls-skypoint/internal/calibration"
	"github.com/litescript/ls-skypoint/internal/ephem"
	"github.com/litescript/ls-skypoint/internal/haptic"
	"github.com/litescript/ls-skypoint/internal/orientation"
	"github.com/litescript/ls-skypoint/internal/sensor"
)

// EventType classifies a session event.
type EventType string

const (
	EventLocked   EventType = "LOCKED"
	EventUnlocked EventType = "UNLOCKED"
)

// Event is a discrete lock transition, emitted once per edge.
type Event struct {
	Type EventType
	Body ephem.Body
	At   time.Time
}

// lockPulse is the haptic pulse length on lock acquisition.
const lockPulse = 200 * time.Millisecond

// Config holds session configuration. The observer location is fixed for
// the session's lifetime; a moving observer is out of scope.
type Config struct {
	Observer        astro.Observer
	RefreshInterval time.Duration
	SmoothingFactor float64
	Tolerances      Tolerances
	Convention      orientation.Convention
}

func (c Config) withDefaults() Config {
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = 10 * time.Second
	}
	if c.SmoothingFactor == 0 {
		c.SmoothingFactor = orientation.DefaultSmoothingFactor
	}
	if c.Tolerances.AlignDeg == 0 {
		c.Tolerances = DefaultTolerances()
	}
	if c.Convention == nil {
		c.Convention = orientation.ZRotationConvention{}
	}
	return c
}

// Snapshot is a consistent view of session state for rendering.
type Snapshot struct {
	Observer  astro.Observer
	State     orientation.State
	Seeded    bool
	Target    *Target
	Result    Result
	Positions []ephem.Position
	Dropped   int64
	LastAt    time.Time
}

// Session fuses the orientation pipeline with periodic ephemeris
// refreshes and evaluates alignment against the selected target.
//
// All mutable state is guarded by one mutex; sensor events and refresh
// ticks take it in turn, so the normalize→calibrate→smooth→evaluate chain
// for one input always completes before the next input is considered.
type Session struct {
	cfg      Config
	log      *zap.SugaredLogger
	provider ephem.Provider
	source   sensor.Source
	calib    *calibration.Store
	sink     haptic.Sink

	mu        sync.RWMutex
	smoother  *orientation.Smoother
	positions []ephem.Position
	target    *Target
	wasLocked bool
	result    Result
	dropped   int64
	lastAt    time.Time

	events   chan Event
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSession wires a session from its collaborators. A nil haptic sink
// or logger is replaced with a no-op.
func NewSession(
	cfg Config,
	provider ephem.Provider,
	source sensor.Source,
	calib *calibration.Store,
	sink haptic.Sink,
	log *zap.SugaredLogger,
) (*Session, error) {
	cfg = cfg.withDefaults()

	smoother, err := orientation.NewSmoother(cfg.SmoothingFactor)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = haptic.Noop{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Session{
		cfg:      cfg,
		log:      log,
		provider: provider,
		source:   source,
		calib:    calib,
		sink:     sink,
		smoother: smoother,
		events:   make(chan Event, 16),
		stopCh:   make(chan struct{}),
	}, nil
}

// Start subscribes to the sensor source and begins the refresh loop.
// A sensor permission denial fails the start; the caller must not treat
// the session as running.
func (s *Session) Start(ctx context.Context) error {
	s.refresh(time.Now())

	if err := s.source.Start(s.handleRaw); err != nil {
		return fmt.Errorf("start orientation source: %w", err)
	}

	go s.refreshLoop(ctx)

	return nil
}

// Stop unsubscribes from the sensor source and halts the refresh loop.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.source.Stop()
		close(s.stopCh)
	})
}

// Events returns the lock transition stream. The channel is buffered;
// transitions are dropped, not queued unboundedly, if the consumer lags.
func (s *Session) Events() <-chan Event {
	return s.events
}

// SelectTarget replaces the current target and resets the lock state.
// Selecting while positions are not yet available computes one on demand.
func (s *Session) SelectTarget(b ephem.Body) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.positionFor(b)
	if !ok {
		fresh, err := s.provider.Position(b, s.cfg.Observer, time.Now())
		if err != nil {
			return fmt.Errorf("select target %s: %w", b, err)
		}
		pos = fresh
	}

	s.target = &Target{Body: b, AltDeg: pos.AltDeg, AzDeg: pos.AzDeg}
	s.wasLocked = false
	s.evaluateLocked()

	s.log.Infow("target selected", "body", b.String(),
		"alt", pos.AltDeg, "az", pos.AzDeg)

	return nil
}

// ClearTarget deselects the current target.
func (s *Session) ClearTarget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = nil
	s.wasLocked = false
	s.result = Result{}
}

// CalibrateNorth zeroes the heading at the device's current direction.
// The smoother reseeds so the state snaps to the new frame instead of
// slewing toward it.
func (s *Session) CalibrateNorth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.smoother.Seeded() {
		return
	}
	s.calib.SetNorth(s.smoother.State().HeadingDeg)
	s.smoother.Reset()
	s.log.Infow("heading calibrated", "offset", s.calib.Offsets().HeadingDeg)
}

// CalibrateHorizon zeroes the pitch at the device's current tilt.
func (s *Session) CalibrateHorizon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.smoother.Seeded() {
		return
	}
	s.calib.SetHorizon(s.smoother.State().PitchDeg)
	s.smoother.Reset()
	s.log.Infow("horizon calibrated", "offset", s.calib.Offsets().PitchDeg)
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var target *Target
	if s.target != nil {
		t := *s.target
		target = &t
	}

	positions := make([]ephem.Position, len(s.positions))
	copy(positions, s.positions)

	return Snapshot{
		Observer:  s.cfg.Observer,
		State:     s.smoother.State(),
		Seeded:    s.smoother.Seeded(),
		Target:    target,
		Result:    s.result,
		Positions: positions,
		Dropped:   s.dropped,
		LastAt:    s.lastAt,
	}
}

// handleRaw is the sensor event handler: normalize, calibrate, smooth,
// evaluate — synchronously, in that order.
func (s *Session) handleRaw(raw orientation.Raw) {
	sample, ok := s.cfg.Convention.RawToCanonical(raw)
	if !ok {
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.smoother.Update(s.calib.Apply(sample))
	s.lastAt = time.Now()
	s.evaluateLocked()
}

func (s *Session) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case now := <-ticker.C:
			s.refresh(now)
		}
	}
}

// refresh re-polls body positions and swaps the target's stale snapshot.
func (s *Session) refresh(now time.Time) {
	positions, err := s.provider.Positions(s.cfg.Observer, now)
	if err != nil {
		s.log.Errorw("ephemeris refresh failed", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.positions = positions

	if s.target != nil {
		if pos, ok := s.positionFor(s.target.Body); ok {
			s.target = &Target{Body: s.target.Body, AltDeg: pos.AltDeg, AzDeg: pos.AzDeg}
		}
	}

	s.evaluateLocked()
}

// evaluateLocked recomputes the alignment result and emits lock edges.
// Callers must hold mu.
func (s *Session) evaluateLocked() {
	if s.target == nil || !s.smoother.Seeded() {
		s.result = Result{}
		s.wasLocked = false
		return
	}

	r := Evaluate(s.smoother.State(), *s.target, s.wasLocked, s.cfg.Tolerances)

	if r.JustLocked {
		s.emit(Event{Type: EventLocked, Body: s.target.Body, At: time.Now()})
		s.sink.Pulse(lockPulse)
	} else if s.wasLocked && !r.Aligned {
		s.emit(Event{Type: EventUnlocked, Body: s.target.Body, At: time.Now()})
	}

	s.wasLocked = r.Aligned
	s.result = r
}

func (s *Session) emit(e Event) {
	select {
	case s.events <- e:
	default:
		s.log.Debugw("event dropped, consumer lagging", "type", e.Type)
	}
}

func (s *Session) positionFor(b ephem.Body) (ephem.Position, bool) {
	for _, p := range s.positions {
		if p.Body == b {
			return p, true
		}
	}
	return ephem.Position{}, false
}
