// Package easing computes easing curves over a fixed number of discrete
// steps using Q16.16 fixed-point arithmetic only.
//
// Every value is produced with integer operations, so a curve evaluated on
// any platform yields bit-identical results. This makes the package suitable
// for lock-step simulations, embedded control signals and replayable
// animation timing where floating-point drift is unacceptable.
//
// # Quick Start
//
// Pull values one at a time:
//
//	g := easing.NewQuadOut(easing.FromInt(0), easing.FromInt(100), 10)
//	for v, ok := g.Next(); ok; v, ok = g.Next() {
//	    fmt.Println(v)
//	}
//
// Or range over the generator:
//
//	g, err := easing.NewByName("sin-in-out", easing.Zero, easing.One, 60)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for v := range g.All() {
//	    apply(v)
//	}
//
// # Curves
//
// Sixteen shaping functions are built in, in the usual in, out and in-out
// variants:
//
//   - [CurveLinear]
//   - [CurveQuadIn], [CurveQuadOut], [CurveQuadInOut]
//   - [CurveCubicIn], [CurveCubicOut], [CurveCubicInOut]
//   - [CurveQuarticIn], [CurveQuarticOut], [CurveQuarticInOut]
//   - [CurveSinIn], [CurveSinOut], [CurveSinInOut]
//   - [CurveExpIn], [CurveExpOut], [CurveExpInOut]
//
// [ParseCurve] accepts their names in kebab, snake or camel case.
//
// # Sampling
//
// A generator built for n steps yields exactly n values, at progress
// 1/n, 2/n, …, 1. The curve is not sampled at 0, so the first value is
// already partly eased and the last value is the end point. With n = 0 the
// generator yields nothing.
//
// # Fixed-Point Arithmetic
//
// [Fix] carries 16 integer and 16 fractional bits (resolution ≈ 1.5e-5) and
// saturates on overflow. Shaping functions work on normalized values in
// [0, 1] and the result is scaled by end-start with a fused multiply-add,
// so start, end and their difference must each fit in [-32768, 32767].
//
// # Thread Safety
//
// Generators are independent values with no shared state. Different
// generators can run on different goroutines without coordination; a
// single generator must not be advanced concurrently.
package easing
