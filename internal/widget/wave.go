// Package widget implements the wave loading indicator: a row of circles
// that bounce up and down in a staggered wave.
//
// The widget does not own a clock. A host calls OnAttached when the widget
// becomes visible, Advance once per frame with the frame's duration, Draw
// whenever it repaints, and OnDetached when the widget goes away. All calls
// must come from the same goroutine.
package widget

import (
	"image/color"
	"time"

	"github.com/quibbler01/WaveLoadingCircleView/internal/anim"
	"github.com/quibbler01/WaveLoadingCircleView/internal/easing"
)

const (
	DefaultCircleCount  = 4
	DefaultCircleRadius = 20.0
	DefaultCircleMargin = 20.0
	DefaultAnimDistance = 50.0
	DefaultAnimDuration = 500 * time.Millisecond
	DefaultAnimDelay    = 150 * time.Millisecond
	DefaultInterpolator = easing.Accelerate
)

// Config is resolved once, before the widget is built.
type Config struct {
	CircleCount  int
	CircleRadius float64
	CircleMargin float64
	// AnimDistance is the total vertical travel; circles move between
	// -AnimDistance/2 and +AnimDistance/2 around the vertical centre.
	AnimDistance float64
	AnimDuration time.Duration
	// AnimDelay staggers circle i by i*AnimDelay.
	AnimDelay    time.Duration
	Interpolator easing.Kind
	// Colors are used in order and wrap around when shorter than CircleCount.
	Colors []color.NRGBA
	// ClampOvershoot keeps anticipate/overshoot curves inside the travel range.
	ClampOvershoot bool
}

func DefaultConfig() Config {
	return Config{
		CircleCount:    DefaultCircleCount,
		CircleRadius:   DefaultCircleRadius,
		CircleMargin:   DefaultCircleMargin,
		AnimDistance:   DefaultAnimDistance,
		AnimDuration:   DefaultAnimDuration,
		AnimDelay:      DefaultAnimDelay,
		Interpolator:   DefaultInterpolator,
		Colors:         DefaultPalette(),
		ClampOvershoot: true,
	}
}

// Canvas is the drawing surface a host hands to Draw.
type Canvas interface {
	// FillCircle paints an anti-aliased filled circle centred on (cx, cy).
	// clr carries straight, not premultiplied, alpha.
	FillCircle(cx, cy, r float64, clr color.NRGBA)
}

// Wave is the loading widget.
type Wave struct {
	cfg       Config
	positions []float64
	set       *anim.Set
	attached  bool
	dirty     bool
}

// New builds a widget from cfg. It never fails: a non-positive circle count
// yields a widget that draws nothing, and an empty palette falls back to the
// default one.
func New(cfg Config) *Wave {
	if cfg.CircleCount < 0 {
		cfg.CircleCount = 0
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = DefaultPalette()
	} else {
		cfg.Colors = append([]color.NRGBA(nil), cfg.Colors...)
	}

	w := &Wave{
		cfg:       cfg,
		positions: make([]float64, cfg.CircleCount),
	}

	curve := cfg.Interpolator.Curve()
	drivers := make([]*anim.Driver, cfg.CircleCount)
	for i := range drivers {
		drivers[i] = anim.NewDriver(anim.DriverConfig{
			From:     -cfg.AnimDistance / 2,
			To:       cfg.AnimDistance / 2,
			Duration: cfg.AnimDuration,
			Delay:    time.Duration(i) * cfg.AnimDelay,
			Curve:    curve,
			Clamp:    cfg.ClampOvershoot,
		})
	}
	w.set = anim.NewSet(w.setPosition, drivers...)
	return w
}

func (w *Wave) setPosition(i int, v float64) {
	w.positions[i] = v
	w.dirty = true
}

// OnAttached starts the animation. Calling it again restarts the wave from
// the first circle.
func (w *Wave) OnAttached() {
	w.attached = true
	w.set.Start()
}

// OnDetached stops every driver immediately; positions freeze where they are.
func (w *Wave) OnDetached() {
	w.attached = false
	w.set.Stop()
}

func (w *Wave) Attached() bool { return w.attached }

// Advance moves the animation clock forward by one frame.
func (w *Wave) Advance(dt time.Duration) {
	w.set.Advance(dt)
}

// Elapsed is the time since the last OnAttached.
func (w *Wave) Elapsed() time.Duration { return w.set.Elapsed() }

// Dirty reports whether a position changed since the last ClearDirty.
func (w *Wave) Dirty() bool { return w.dirty }

func (w *Wave) ClearDirty() { w.dirty = false }

// Positions returns a copy of the current vertical offsets, one per circle.
func (w *Wave) Positions() []float64 {
	return append([]float64(nil), w.positions...)
}

// Config returns the resolved configuration.
func (w *Wave) Config() Config {
	cfg := w.cfg
	cfg.Colors = append([]color.NRGBA(nil), w.cfg.Colors...)
	return cfg
}

// Drivers exposes the per-circle oscillators, indexed by circle.
func (w *Wave) Drivers() []*anim.Driver {
	out := make([]*anim.Driver, w.set.Len())
	for i := range out {
		out[i] = w.set.Driver(i)
	}
	return out
}

// ColorAt returns the fill colour of circle i.
func (w *Wave) ColorAt(i int) color.NRGBA {
	return w.cfg.Colors[i%len(w.cfg.Colors)]
}

// Width returns the horizontal extent of the row from the left edge of the
// first circle to the right edge of the last.
func (w *Wave) Width() float64 {
	n := float64(w.cfg.CircleCount)
	if n <= 0 {
		return 0
	}
	return n*2*w.cfg.CircleRadius + (n-1)*w.cfg.CircleMargin
}

// Draw renders the current frame centred in a width x height area.
func (w *Wave) Draw(c Canvas, width, height float64) {
	w.DrawAt(c, width, height, w.positions)
}

// DrawAt renders the row with the given offsets instead of the live ones.
// Hosts use it to paint trails from a Trace.
func (w *Wave) DrawAt(c Canvas, width, height float64, positions []float64) {
	r := w.cfg.CircleRadius
	x := width/2 - float64(w.cfg.CircleCount-1)*(r+w.cfg.CircleMargin/2)
	for i := 0; i < w.cfg.CircleCount && i < len(positions); i++ {
		c.FillCircle(x, height/2+positions[i], r, w.ColorAt(i))
		x += 2*r + w.cfg.CircleMargin
	}
}
