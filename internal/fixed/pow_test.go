package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowf_Exact(t *testing.T) {
	tests := []struct {
		name     string
		base     Fix
		exponent Fix
		want     Fix
	}{
		{"Two cubed", Two, FromInt(3), FromInt(8)},
		{"Two to minus nine", Two, FromInt(-9), Fix(128)},
		{"Exponent zero", FromInt(7), Zero, One},
		{"Base one", One, FromInt(123), One},
		{"Two to the one", Two, One, Two},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.Powf(tt.exponent))
		})
	}
}

func TestPowf_Approximate(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent float64
		delta    float64
	}{
		{"Sqrt two", 2, 0.5, 2 * Delta},
		{"Ten squared", 10, 2, 1e-3},
		{"Fractional base", 0.5, 3.5, 2 * Delta},
		{"Cube root", 27, 1.0 / 3, 1e-3},
		{"Negative fractional exponent", 2, -4.3, 2 * Delta},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, e := FromFloat64(tt.base), FromFloat64(tt.exponent)
			want := math.Pow(b.ToFloat64(), e.ToFloat64())
			assert.InDelta(t, want, b.Powf(e).ToFloat64(), tt.delta)
		})
	}
}

// TestPowf_ExpCurveRange sweeps base 2 over the exponents the exponential
// curves produce, [-10, 0].
func TestPowf_ExpCurveRange(t *testing.T) {
	for raw := int32(-10 * 65536); raw <= 0; raw += 331 {
		e := FromRaw(raw)
		want := math.Exp2(e.ToFloat64())
		if !assert.InDelta(t, want, Two.Powf(e).ToFloat64(), 2*Delta, "2^%v", e) {
			return
		}
	}
}

func TestPowf_Limits(t *testing.T) {
	assert.Equal(t, MaxFix, Two.Powf(FromInt(20)))
	assert.Equal(t, MaxFix, Two.Powf(FromInt(15)))
	assert.Equal(t, Zero, Two.Powf(FromInt(-40)))
}

func TestPowf_NonPositiveBasePanics(t *testing.T) {
	assert.Panics(t, func() { Zero.Powf(One) })
	assert.Panics(t, func() { FromInt(-2).Powf(Half) })
}

func TestLog2Q30(t *testing.T) {
	for _, v := range []float64{0.001, 0.5, 1, 1.5, 2, 3, 10, 1000, 32000} {
		f := FromFloat64(v)
		got := float64(log2Q30(f)) / float64(q30One)
		assert.InDelta(t, math.Log2(f.ToFloat64()), got, 1e-7, "log2(%v)", v)
	}
}

func BenchmarkPowf(b *testing.B) {
	e := FromFloat64(-3.7)
	for b.Loop() {
		_ = Two.Powf(e)
	}
}
