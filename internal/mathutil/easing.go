// Package mathutil provides float64 reference models of the easing curves.
//
// The models use the standard library's math functions and serve as the
// ground truth the fixed-point curves are checked against. They are never
// used to produce output.
package mathutil

import "math"

// EaseFunc maps progress x in [0, 1] to the eased value.
type EaseFunc func(x float64) float64

var references = map[string]EaseFunc{
	"linear":         Linear,
	"quad-in":        QuadIn,
	"quad-out":       QuadOut,
	"quad-in-out":    QuadInOut,
	"cubic-in":       CubicIn,
	"cubic-out":      CubicOut,
	"cubic-in-out":   CubicInOut,
	"quartic-in":     QuarticIn,
	"quartic-out":    QuarticOut,
	"quartic-in-out": QuarticInOut,
	"sin-in":         SinIn,
	"sin-out":        SinOut,
	"sin-in-out":     SinInOut,
	"exp-in":         ExpIn,
	"exp-out":        ExpOut,
	"exp-in-out":     ExpInOut,
}

// Reference returns the model registered under the curve name.
func Reference(name string) (EaseFunc, bool) {
	f, ok := references[name]
	return f, ok
}

func Linear(x float64) float64 { return x }

func QuadIn(x float64) float64 { return x * x }

func QuadOut(x float64) float64 { return 1 - (1-x)*(1-x) }

func QuadInOut(x float64) float64 {
	if x < halfPoint {
		return 2 * x * x
	}
	return 1 - math.Pow(-2*x+2, 2)/2
}

func CubicIn(x float64) float64 { return x * x * x }

func CubicOut(x float64) float64 { return 1 - math.Pow(1-x, 3) }

func CubicInOut(x float64) float64 {
	if x < halfPoint {
		return cubicInOutGain * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}

func QuarticIn(x float64) float64 { return math.Pow(x, 4) }

func QuarticOut(x float64) float64 { return 1 - math.Pow(1-x, 4) }

func QuarticInOut(x float64) float64 {
	if x < halfPoint {
		return quarticInOutGain * math.Pow(x, 4)
	}
	return 1 - math.Pow(-2*x+2, 4)/2
}

func SinIn(x float64) float64 { return math.Sin((x-1)*math.Pi/2) + 1 }

func SinOut(x float64) float64 { return math.Sin(x * math.Pi / 2) }

// SinInOut is the pair of circular arcs the fixed-point curve uses.
func SinInOut(x float64) float64 {
	if x < halfPoint {
		return (1 - math.Sqrt(1-4*x*x)) / 2
	}
	return (math.Sqrt((3-2*x)*(2*x-1)) + 1) / 2
}

func ExpIn(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Exp2(expScale*x - expScale)
}

func ExpOut(x float64) float64 {
	if x == 1 {
		return 1
	}
	return 1 - math.Exp2(-expScale*x)
}

func ExpInOut(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x < halfPoint:
		return math.Exp2(expInOutScale*x-expInOutOffset) / 2
	default:
		return (2 - math.Exp2(expInOutOffset-expInOutScale*x)) / 2
	}
}
