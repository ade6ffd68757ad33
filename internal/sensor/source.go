// Package sensor defines the device orientation event source and a
// simulated implementation for demos and tests.
package sensor

import (
	"errors"

	"github.com/litescript/ls-skypoint/internal/orientation"
)

// ErrPermissionDenied is returned by Start when the platform refuses
// access to the orientation sensors. Callers must surface this rather
// than proceed with a dead pipeline.
var ErrPermissionDenied = errors.New("orientation sensor permission denied")

// Handler receives one raw orientation event. The source invokes it
// synchronously, one event at a time, so handlers never interleave.
type Handler func(orientation.Raw)

// Source is a device orientation event stream with an explicit
// subscription lifecycle. Start may be asynchronous under the hood
// (permission prompts), but returns only after delivery is armed or has
// been refused. Stop unsubscribes; no events are delivered after it
// returns.
type Source interface {
	Start(h Handler) error
	Stop()
}
