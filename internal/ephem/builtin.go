package ephem

import (
	"math"
	"time"

	"github.com/litescript/ls-skypoint/internal/astro"
)

// BuiltinProvider computes positions from the low-precision theories in
// internal/astro. Worst-case error is a few arcminutes, well inside the
// 6° alignment tolerance the positions feed.
type BuiltinProvider struct{}

// NewBuiltinProvider creates the built-in ephemeris provider.
func NewBuiltinProvider() *BuiltinProvider {
	return &BuiltinProvider{}
}

// Name implements Provider.
func (*BuiltinProvider) Name() string { return "builtin" }

// Position implements Provider.
func (p *BuiltinProvider) Position(b Body, obs astro.Observer, t time.Time) (Position, error) {
	switch b {
	case BodySun:
		h := astro.EquatorialToHorizontal(astro.SunPosition(t), obs, t)
		return position(b, h), nil

	case BodyMoon:
		eq, distER := astro.MoonPosition(t)
		h := astro.EquatorialToHorizontal(eq, obs, t)
		// The Moon is close enough that the observer's offset from the
		// geocenter shifts its apparent altitude by up to a degree.
		h.AltDeg -= astro.MoonParallaxDeg(distER) * math.Cos(h.AltDeg*math.Pi/180)
		return position(b, h), nil

	case BodyMercury, BodyVenus, BodyMars, BodyJupiter, BodySaturn:
		eq, _ := astro.PlanetPosition(planetFor(b), t)
		h := astro.EquatorialToHorizontal(eq, obs, t)
		return position(b, h), nil

	default:
		return Position{}, ErrUnknownBody
	}
}

// Positions implements Provider.
func (p *BuiltinProvider) Positions(obs astro.Observer, t time.Time) ([]Position, error) {
	out := make([]Position, 0, len(Bodies))
	for _, b := range Bodies {
		pos, err := p.Position(b, obs, t)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

func position(b Body, h astro.Horizontal) Position {
	return Position{Body: b, AltDeg: h.AltDeg, AzDeg: h.AzDeg}
}

func planetFor(b Body) astro.Planet {
	switch b {
	case BodyMercury:
		return astro.Mercury
	case BodyVenus:
		return astro.Venus
	case BodyMars:
		return astro.Mars
	case BodyJupiter:
		return astro.Jupiter
	default:
		return astro.Saturn
	}
}
