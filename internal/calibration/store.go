package calibration

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/litescript/ls-skypoint/internal/orientation"
)

// Storage keys for the persisted offsets, decimal-degree strings.
const (
	keyHeadingOffset = "heading_offset_deg"
	keyPitchOffset   = "pitch_offset_deg"
)

// Offsets are the user calibration offsets, added to canonical samples.
type Offsets struct {
	HeadingDeg float64
	PitchDeg   float64
}

// Store owns the calibration offsets for one device. Offsets mutate only
// through explicit calibration actions and write through to storage
// immediately; persistence failures are logged and otherwise swallowed so
// calibration keeps working for the rest of the session.
type Store struct {
	storage Storage
	log     *zap.SugaredLogger
	offsets Offsets
}

// NewStore creates a store and loads persisted offsets, defaulting to zero
// when absent or unparsable.
func NewStore(storage Storage, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Store{storage: storage, log: log}
	s.offsets = s.load()
	return s
}

// Offsets returns the current offsets.
func (s *Store) Offsets() Offsets {
	return s.offsets
}

// Apply returns the sample with calibration offsets applied.
func (s *Store) Apply(in orientation.Sample) orientation.Sample {
	in.HeadingDeg = orientation.Norm360(in.HeadingDeg + s.offsets.HeadingDeg)
	in.PitchDeg = orientation.ClampPitch(in.PitchDeg + s.offsets.PitchDeg)
	return in
}

// SetNorth re-zeroes the heading so the current physical orientation
// reports as 0° (North). currentHeading is the calibrated heading at the
// moment of the user action.
func (s *Store) SetNorth(currentHeading float64) {
	raw := orientation.Norm360(currentHeading - s.offsets.HeadingDeg)
	s.offsets.HeadingDeg = -raw
	s.persist(keyHeadingOffset, s.offsets.HeadingDeg)
}

// SetHorizon re-zeroes the pitch so the current physical tilt reports as
// the horizon. currentPitch is the calibrated pitch at the moment of the
// user action.
func (s *Store) SetHorizon(currentPitch float64) {
	s.offsets.PitchDeg -= currentPitch
	s.persist(keyPitchOffset, s.offsets.PitchDeg)
}

// ResetOffsets clears both offsets back to zero.
func (s *Store) ResetOffsets() {
	s.offsets = Offsets{}
	s.persist(keyHeadingOffset, 0)
	s.persist(keyPitchOffset, 0)
}

func (s *Store) persist(key string, value float64) {
	if err := s.storage.Set(key, strconv.FormatFloat(value, 'f', -1, 64)); err != nil {
		s.log.Warnw("calibration persist failed", "key", key, "error", err)
	}
}

func (s *Store) load() Offsets {
	return Offsets{
		HeadingDeg: s.loadValue(keyHeadingOffset),
		PitchDeg:   s.loadValue(keyPitchOffset),
	}
}

func (s *Store) loadValue(key string) float64 {
	raw, ok, err := s.storage.Get(key)
	if err != nil {
		s.log.Warnw("calibration load failed", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.log.Warnw("calibration value unparsable", "key", key, "value", raw)
		return 0
	}

	return v
}
