// Package ephem provides observer-relative positions for the fixed roster
// of bodies a pointer session can track.
package ephem

import (
	"errors"
	"strings"
	"time"

	"github.com/litescript/ls-skypoint/internal/astro"
)

// Body identifies a tracked celestial body.
type Body int

const (
	BodySun Body = iota
	BodyMoon
	BodyMercury
	BodyVenus
	BodyMars
	BodyJupiter
	BodySaturn
)

// Bodies is the fixed roster, in display order.
var Bodies = []Body{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars, BodyJupiter, BodySaturn,
}

// String returns the body name.
func (b Body) String() string {
	switch b {
	case BodySun:
		return "Sun"
	case BodyMoon:
		return "Moon"
	case BodyMercury:
		return "Mercury"
	case BodyVenus:
		return "Venus"
	case BodyMars:
		return "Mars"
	case BodyJupiter:
		return "Jupiter"
	case BodySaturn:
		return "Saturn"
	default:
		return "unknown"
	}
}

// ErrUnknownBody is returned for bodies outside the roster.
var ErrUnknownBody = errors.New("unknown body")

// ParseBody resolves a body by case-insensitive name.
func ParseBody(name string) (Body, error) {
	for _, b := range Bodies {
		if strings.EqualFold(b.String(), name) {
			return b, nil
		}
	}
	return 0, ErrUnknownBody
}

// Position is one body's observer-relative position at an instant.
type Position struct {
	Body   Body
	AltDeg float64 // [-90, 90]
	AzDeg  float64 // [0, 360)
}

// Provider computes body positions for an observer. Implementations must
// be safe for use from a single goroutine; the tracking session calls them
// synchronously on its refresh tick.
type Provider interface {
	// Name returns the provider name for display and logging.
	Name() string

	// Position returns one body's position.
	Position(b Body, obs astro.Observer, t time.Time) (Position, error)

	// Positions returns the whole roster, in Bodies order.
	Positions(obs astro.Observer, t time.Time) ([]Position, error)
}
