// Package easing holds the closed set of timing curves a wave can be animated with.
package easing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// Curve maps a normalised time fraction in [0,1] to a progress fraction.
// Overshooting curves may return values outside [0,1] for t strictly inside the range.
type Curve func(t float64) float64

// Kind selects one of the named curves. The numeric values match the
// animInterpolator attribute.
type Kind int

const (
	Accelerate Kind = iota
	Decelerate
	AccelerateDecelerate
	Anticipate
	AnticipateOvershoot
	Linear
	Overshoot
)

const (
	anticipateTension          = 2.0
	anticipateOvershootTension = anticipateTension * 1.5
	overshootTension           = 2.0
)

var names = [...]string{
	Accelerate:           "accelerate",
	Decelerate:           "decelerate",
	AccelerateDecelerate: "accelerate-decelerate",
	Anticipate:           "anticipate",
	AnticipateOvershoot:  "anticipate-overshoot",
	Linear:               "linear",
	Overshoot:            "overshoot",
}

var curves = [...]Curve{
	Accelerate:           tween(ease.InQuad),
	Decelerate:           tween(ease.OutQuad),
	AccelerateDecelerate: tween(ease.InOutSine),
	Anticipate:           anticipate,
	AnticipateOvershoot:  anticipateOvershoot,
	Linear:               tween(ease.Linear),
	Overshoot:            overshoot,
}

// Kinds returns every known kind in numeric order.
func Kinds() []Kind {
	out := make([]Kind, len(names))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is one of the named kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(curves)
}

// Curve returns the timing function for k. Unknown kinds fall back to
// accelerate-decelerate.
func (k Kind) Curve() Curve {
	if !k.Valid() {
		return curves[AccelerateDecelerate]
	}
	return curves[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return names[k]
}

// Parse accepts either a curve name ("overshoot", "accelerate_decelerate")
// or its number ("6").
func Parse(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		k := Kind(n)
		if !k.Valid() {
			return 0, fmt.Errorf("easing kind %d out of range 0..%d", n, len(names)-1)
		}
		return k, nil
	}
	s = strings.ReplaceAll(s, "_", "-")
	for i, name := range names {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown easing curve %q", s)
}

// tween adapts a gween easing function over a unit range and duration.
func tween(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// The tension curves below have no gween counterpart.

func anticipate(t float64) float64 {
	return t * t * ((anticipateTension+1)*t - anticipateTension)
}

func anticipateOvershoot(t float64) float64 {
	a := func(t, s float64) float64 { return t * t * ((s+1)*t - s) }
	o := func(t, s float64) float64 { return t * t * ((s+1)*t + s) }
	if t < 0.5 {
		return 0.5 * a(t*2, anticipateOvershootTension)
	}
	return 0.5 * (o(t*2-2, anticipateOvershootTension) + 2)
}

func overshoot(t float64) float64 {
	t--
	return t*t*((overshootTension+1)*t+overshootTension) + 1
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
