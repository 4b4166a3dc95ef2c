// Package anim drives values between two bounds on the host's frame clock.
//
// A Driver is a pure function of elapsed time: it repeats forever and reverses
// direction at each bound, so sampling it never jumps back to the start value.
// A Set plays several drivers together and pushes their values to a callback
// each time the host advances the clock.
package anim

import (
	"math"
	"time"

	"github.com/quibbler01/WaveLoadingCircleView/internal/easing"
)

// DriverConfig describes one oscillator.
type DriverConfig struct {
	From     float64
	To       float64
	Duration time.Duration // one directional sweep
	Delay    time.Duration // applied once, before the first sweep
	Curve    easing.Curve
	// Clamp keeps overshooting curves inside [From, To].
	Clamp bool
}

// Driver is a ping-pong oscillator.
type Driver struct {
	cfg DriverConfig
}

func NewDriver(cfg DriverConfig) *Driver {
	if cfg.Curve == nil {
		cfg.Curve = easing.Linear.Curve()
	}
	return &Driver{cfg: cfg}
}

// Delay returns the start delay.
func (d *Driver) Delay() time.Duration { return d.cfg.Delay }

// Duration returns the length of one sweep.
func (d *Driver) Duration() time.Duration { return d.cfg.Duration }

// Bounds returns the lower and upper value the driver can produce when clamped.
func (d *Driver) Bounds() (lo, hi float64) {
	return math.Min(d.cfg.From, d.cfg.To), math.Max(d.cfg.From, d.cfg.To)
}

// Fraction returns the linear sweep fraction at elapsed, after reversal, and
// whether the driver has started.
func (d *Driver) Fraction(elapsed time.Duration) (float64, bool) {
	if elapsed < d.cfg.Delay {
		return 0, false
	}
	if d.cfg.Duration <= 0 {
		return 1, true
	}
	e := elapsed - d.cfg.Delay
	iter := e / d.cfg.Duration
	frac := float64(e-iter*d.cfg.Duration) / float64(d.cfg.Duration)
	if iter%2 == 1 {
		frac = 1 - frac
	}
	return frac, true
}

// ValueAt returns the driven value at elapsed time since the driver's set was
// started. The second result is false while the start delay has not passed.
func (d *Driver) ValueAt(elapsed time.Duration) (float64, bool) {
	frac, ok := d.Fraction(elapsed)
	if !ok {
		return 0, false
	}
	p := d.cfg.Curve(frac)
	if d.cfg.Clamp {
		p = easing.Clamp01(p)
	}
	return d.cfg.From + (d.cfg.To-d.cfg.From)*p, true
}
