// Package verify checks fixed-point curve output against the float64
// reference models in mathutil.
//
// A sample passes when it lies within ErrorMarginFactor times the value
// range of the reference sequence. Failed comparisons can be written to
// disk as a pair of JSON arrays for offline plotting.
package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-fixed-easing/internal/fixed"
	"github.com/tphakala/go-fixed-easing/internal/mathutil"
	"github.com/tphakala/go-fixed-easing/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by the verification helpers.
var (
	// ErrOutsideMargin indicates at least one sample exceeded the tolerance.
	ErrOutsideMargin = errors.New("outside error margin")

	// ErrNoReference indicates there is no reference model for a curve name.
	ErrNoReference = errors.New("no reference model")
)

// Report is the outcome of comparing one sequence with its reference.
type Report struct {
	Name       string
	Tolerance  float64
	MaxError   float64
	MeanError  float64
	Violations []int // indices of failing samples
	Ought      []float64
	Is         []float64
}

// OK reports whether every sample was within tolerance.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Tolerance returns the absolute error allowed for samples of ref.
func Tolerance(ref []float64) float64 {
	if len(ref) == 0 {
		return 0
	}
	return math.Abs((floats.Max(ref) - floats.Min(ref)) * ErrorMarginFactor)
}

// Reference samples the named reference model the same way a generator
// does: steps values at progress 1/steps … 1, scaled onto [start, end].
func Reference(name string, start, end float64, steps int) ([]float64, error) {
	f, ok := mathutil.Reference(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoReference, name)
	}
	if steps <= 0 {
		return []float64{}, nil
	}

	// i/steps lands exactly on 1 for the last sample, as the generator's
	// Ratio does, so models pinned at x = 1 take their end point branch.
	xs := make([]float64, steps)
	for i := range xs {
		xs[i] = f(float64(i+1) / float64(steps))
	}
	floats.Scale(end-start, xs)
	floats.AddConst(start, xs)
	return xs, nil
}

// Compare checks got against ought. Samples missing from either side count
// as violations. The tolerance never drops below half a Fix step.
func Compare(name string, ought []float64, got []fixed.Fix) *Report {
	is := make([]float64, len(got))
	for i, v := range got {
		is[i] = v.ToFloat64()
	}

	r := &Report{
		Name:      name,
		Tolerance: max(Tolerance(ought), minTolerance),
		Ought:     ought,
		Is:        is,
	}

	n := min(len(ought), len(is))
	if n > 0 {
		deltas := make([]float64, n)
		for i := range n {
			deltas[i] = math.Abs(is[i] - ought[i])
			if deltas[i] > r.Tolerance {
				r.Violations = append(r.Violations, i)
			}
		}
		r.MaxError = floats.Max(deltas)
		r.MeanError = simdops.For[float64]().Sum(deltas) / float64(n)
	}
	for i := n; i < max(len(ought), len(is)); i++ {
		r.Violations = append(r.Violations, i)
	}
	return r
}

// Check converts a failed report into an error, dumping it first when d is
// not nil. A dump failure is joined to the returned error.
func Check(r *Report, d *Dumper) error {
	if r.OK() {
		return nil
	}
	err := fmt.Errorf("%w: %s: %d samples, max error %g > %g",
		ErrOutsideMargin, r.Name, len(r.Violations), r.MaxError, r.Tolerance)
	if d != nil {
		if dumpErr := d.Dump(r); dumpErr != nil {
			return errors.Join(err, dumpErr)
		}
	}
	return err
}
