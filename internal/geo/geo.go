// Package geo resolves the one-shot observer location a session is
// pinned to.
package geo

import (
	"context"

	"go.uber.org/zap"

	"github.com/litescript/ls-skypoint/internal/astro"
)

// DefaultObserver is the fallback location used when no source can
// provide one. Guidance still works there, it just points at the wrong
// sky, so the degradation must be surfaced to the user.
var DefaultObserver = astro.Observer{LatDeg: 0, LonDeg: 0, Name: "default (0,0)"}

// Locator is a one-shot location source. Implementations may block on a
// permission prompt; the context bounds that wait.
type Locator interface {
	Locate(ctx context.Context) (astro.Observer, error)
}

// Static returns a fixed, preconfigured location.
type Static struct {
	Observer astro.Observer
}

// Locate implements Locator.
func (s Static) Locate(context.Context) (astro.Observer, error) {
	return s.Observer, nil
}

// Resolve obtains the observer location from the locator, falling back to
// DefaultObserver on denial or failure. The fallback is a recoverable,
// logged degradation, never a session-fatal error.
func Resolve(ctx context.Context, l Locator, log *zap.SugaredLogger) astro.Observer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if l == nil {
		log.Warnw("no location source, using default observer")
		return DefaultObserver
	}

	obs, err := l.Locate(ctx)
	if err != nil {
		log.Warnw("location unavailable, using default observer", "error", err)
		return DefaultObserver
	}

	return obs
}
