package easing

import (
	"fmt"
	"iter"

	"github.com/tphakala/go-fixed-easing/internal/fixed"
)

// Generator produces the eased values of one curve between two end points
// over a fixed number of steps.
//
// Sample i (1 ≤ i ≤ steps) is ease(i/steps)·(end-start) + start, so the
// first value is already one step into the curve and the last value is end.
// The curve is never sampled at x = 0.
//
// A Generator is not restartable: once Next has reported exhaustion it does
// so forever. Build a new one to run the curve again. Distinct generators
// share no state and may be used from different goroutines; a single
// generator must not be advanced concurrently.
type Generator struct {
	ease  Func
	curve Curve
	start Fix
	dist  Fix
	step  uint64
	steps uint64
	done  bool
}

// New returns a generator yielding steps values of curve from start to end.
// A steps value of zero yields an already exhausted generator.
//
// end-start must be representable as a Fix; otherwise the distance
// saturates and every value is scaled by the saturated distance.
func New(curve Curve, start, end Fix, steps uint64) (*Generator, error) {
	if !curve.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCurve, int(curve))
	}
	return newGenerator(curve, start, end, steps), nil
}

// NewByName is New with the curve looked up by ParseCurve.
func NewByName(name string, start, end Fix, steps uint64) (*Generator, error) {
	curve, err := ParseCurve(name)
	if err != nil {
		return nil, err
	}
	return newGenerator(curve, start, end, steps), nil
}

func newGenerator(curve Curve, start, end Fix, steps uint64) *Generator {
	return &Generator{
		ease:  shapers[curve],
		curve: curve,
		start: start,
		dist:  end.Sub(start),
		steps: steps,
	}
}

// Next returns the next value and true, or zero and false once all steps
// have been produced.
func (g *Generator) Next() (Fix, bool) {
	// Exhaustion is checked before dividing: steps may be zero.
	if g.step >= g.steps {
		g.done = true
		return Zero, false
	}
	g.step++
	x := fixed.Ratio(g.step, g.steps)
	return g.ease(x).MulAdd(g.dist, g.start), true
}

// All returns an iterator draining the generator.
func (g *Generator) All() iter.Seq[Fix] {
	return func(yield func(Fix) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the generator into a slice.
func (g *Generator) Collect() []Fix {
	out := make([]Fix, 0, min(g.Remaining(), collectPrealloc))
	for v := range g.All() {
		out = append(out, v)
	}
	return out
}

// Curve returns the curve the generator follows.
func (g *Generator) Curve() Curve {
	return g.curve
}

// Steps returns the total number of values the generator yields.
func (g *Generator) Steps() uint64 {
	return g.steps
}

// Step returns how many values have been produced so far.
func (g *Generator) Step() uint64 {
	return g.step
}

// Remaining returns how many values Next will still produce.
func (g *Generator) Remaining() uint64 {
	return g.steps - g.step
}

// Exhausted reports whether Next has returned false.
func (g *Generator) Exhausted() bool {
	return g.done
}
