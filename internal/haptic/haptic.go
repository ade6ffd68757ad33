// Package haptic provides the fire-and-forget pulse sink used to signal
// lock acquisition.
package haptic

import (
	"fmt"
	"sync"
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

// Sink receives pulse requests. Implementations must not block the
// caller beyond scheduling the pulse.
type Sink interface {
	// Pulse requests one haptic pulse of roughly the given duration.
	Pulse(d time.Duration)

	// Close releases any hardware resources.
	Close() error
}

// Noop discards all pulses, for platforms without a vibration motor.
type Noop struct{}

// Pulse implements Sink.
func (Noop) Pulse(time.Duration) {}

// Close implements Sink.
func (Noop) Close() error { return nil }

// GPIO drives a vibration motor (or buzzer) attached to a Raspberry Pi
// GPIO pin through the memory-mapped GPIO interface.
type GPIO struct {
	pin rpio.Pin

	mu      sync.Mutex
	pulsing bool
}

// NewGPIO opens the GPIO device and configures the pin as an output.
func NewGPIO(pin int) (*GPIO, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio: %w", err)
	}

	p := rpio.Pin(pin)
	p.Output()
	p.Low()

	return &GPIO{pin: p}, nil
}

// Pulse implements Sink. Overlapping pulses coalesce: a request during an
// active pulse is dropped rather than queued.
func (g *GPIO) Pulse(d time.Duration) {
	g.mu.Lock()
	if g.pulsing {
		g.mu.Unlock()
		return
	}
	g.pulsing = true
	g.mu.Unlock()

	g.pin.High()
	time.AfterFunc(d, func() {
		g.pin.Low()
		g.mu.Lock()
		g.pulsing = false
		g.mu.Unlock()
	})
}

// Close implements Sink.
func (g *GPIO) Close() error {
	g.pin.Low()
	return rpio.Close()
}
