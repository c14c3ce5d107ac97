// Package easing provides progress-shaping curves for canopy animations.
//
// Every curve maps t in [0, 1] to a shaped value. Curves are pure and safe
// to call from anywhere. InOut variants are two half curves joined at
// t = 0.5; the seam is continuous but not necessarily smooth. Some curves
// (gween's Back and Elastic through FromTween) leave [0, 1] mid-flight.
package easing

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Func shapes linear progress.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// QuadIn accelerates from zero velocity.
func QuadIn(t float64) float64 { return t * t }

// QuadOut decelerates to zero velocity.
func QuadOut(t float64) float64 { return t * (2 - t) }

// QuadInOut accelerates until halfway, then decelerates.
func QuadInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return 0.5 * (1 + t*(2-t))
}

func CubicIn(t float64) float64 { return t * t * t }

func CubicOut(t float64) float64 {
	t--
	return t*t*t + 1
}

func CubicInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

func QuartIn(t float64) float64 { return t * t * t * t }

func QuartOut(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func QuartInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return 1 - 0.5*t*t*t*t
}

func QuintIn(t float64) float64 { return t * t * t * t * t }

func QuintOut(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

func QuintInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5*t*t*t*t*t + 1
}

func SineIn(t float64) float64 { return 1 - math.Cos(0.5*t*math.Pi) }

func SineOut(t float64) float64 { return math.Sin(0.5 * t * math.Pi) }

func SineInOut(t float64) float64 { return 0.5 - 0.5*math.Cos(t*math.Pi) }

// ExpoIn is exactly 0 at t = 0 rather than 2^-10.
func ExpoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// ExpoOut is exactly 1 at t = 1 rather than 1 - 2^-10.
func ExpoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// ExpoInOut is exactly 0 at t = 0 and exactly 1 at t = 1.
func ExpoInOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(2, 10*(t-1))
	}
	t--
	return 1 - 0.5*math.Pow(2, -10*t)
}

func CircIn(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

func CircOut(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

func CircInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

// FromTween adapts a gween curve, such as ease.OutBounce or ease.InOutBack,
// to a Func over [0, 1].
func FromTween(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Lerp maps progress p onto [from, to].
func Lerp(from, to, p float64) float64 {
	return from + (to-from)*p
}

// OrLinear returns fn, or Linear when fn is nil.
func OrLinear(fn Func) Func {
	if fn == nil {
		return Linear
	}
	return fn
}

// byName indexes the curves for lookup from configuration.
var byName = map[string]Func{
	"linear":     Linear,
	"quadIn":     QuadIn,
	"quadOut":    QuadOut,
	"quadInOut":  QuadInOut,
	"cubicIn":    CubicIn,
	"cubicOut":   CubicOut,
	"cubicInOut": CubicInOut,
	"quartIn":    QuartIn,
	"quartOut":   QuartOut,
	"quartInOut": QuartInOut,
	"quintIn":    QuintIn,
	"quintOut":   QuintOut,
	"quintInOut": QuintInOut,
	"sineIn":     SineIn,
	"sineOut":    SineOut,
	"sineInOut":  SineInOut,
	"expoIn":     ExpoIn,
	"expoOut":    ExpoOut,
	"expoInOut":  ExpoInOut,
	"circIn":     CircIn,
	"circOut":    CircOut,
	"circInOut":  CircInOut,
	"bounceIn":   FromTween(ease.InBounce),
	"bounceOut":  FromTween(ease.OutBounce),
	"backIn":     FromTween(ease.InBack),
	"backOut":    FromTween(ease.OutBack),
	"elasticOut": FromTween(ease.OutElastic),
}

// ByName returns the curve registered under name ("quadIn", "expoInOut",
// "bounceOut", ...) and whether it exists.
func ByName(name string) (Func, bool) {
	fn, ok := byName[name]
	return fn, ok
}
