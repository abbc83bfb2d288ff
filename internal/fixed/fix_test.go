package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInt(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want Fix
	}{
		{"Zero", 0, Zero},
		{"One", 1, One},
		{"Negative", -3, Fix(-3 << 16)},
		{"Largest", 32767, Fix(32767 << 16)},
		{"Smallest", -32768, MinFix},
		{"Saturate high", 40000, MaxFix},
		{"Saturate low", -40000, MinFix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromInt(tt.in))
		})
	}
}

func TestFromFloat64(t *testing.T) {
	assert.Equal(t, Half, FromFloat64(0.5))
	assert.Equal(t, Fix(-1<<15), FromFloat64(-0.5))
	assert.Equal(t, Fix(6554), FromFloat64(0.1), "0.1 rounds to nearest")
	assert.Equal(t, MaxFix, FromFloat64(1e9))
	assert.Equal(t, MinFix, FromFloat64(-1e9))
	assert.Panics(t, func() { FromFloat64(math.NaN()) })
}

func TestToFloat64_Lossless(t *testing.T) {
	for _, raw := range []int32{0, 1, -1, 6553, 65536, math.MaxInt32, math.MinInt32} {
		f := FromRaw(raw)
		assert.Equal(t, f, FromFloat64(f.ToFloat64()), "raw %d", raw)
		assert.Equal(t, raw, f.Raw())
	}
	assert.Equal(t, "0.5", Half.String())
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den uint64
		want     Fix
	}{
		{"Tenth truncates", 1, 10, 6553},
		{"Whole", 10, 10, One},
		{"Zero numerator", 0, 5, Zero},
		{"Half of large counts", 1_000_000, 2_000_000, Half},
		{"Beyond integer bits", 1 << 40, 1, MaxFix},
		{"Below resolution", 3, 1 << 40, Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.num, tt.den))
		})
	}
	assert.Panics(t, func() { Ratio(1, 0) })
}

func TestAddSubSaturate(t *testing.T) {
	assert.Equal(t, FromInt(3), FromInt(1).Add(Two))
	assert.Equal(t, FromInt(-1), One.Sub(Two))
	assert.Equal(t, MaxFix, MaxFix.Add(One))
	assert.Equal(t, MinFix, MinFix.Sub(One))
	assert.Equal(t, MaxFix, MinFix.Neg())
	assert.Equal(t, One, FromInt(-1).Abs())
}

func TestMul(t *testing.T) {
	assert.Equal(t, FromFloat64(0.25), Half.Mul(Half))
	assert.Equal(t, FromInt(-6), FromInt(2).Mul(FromInt(-3)))
	assert.Equal(t, MaxFix, FromInt(200).Mul(FromInt(200)))
	assert.Equal(t, MinFix, FromInt(-200).Mul(FromInt(200)))

	// 1 LSB · 0.5 sits exactly on a tie and rounds up
	assert.Equal(t, Fix(1), Fix(1).Mul(Half))
	assert.Equal(t, Fix(0), Fix(1).Mul(Fix(1)))
}

func TestMulAdd(t *testing.T) {
	x := FromFloat64(0.3)
	assert.Equal(t, x.Mul(FromInt(4)).Add(FromInt(-1)), x.MulAdd(FromInt(4), FromInt(-1)))

	// the product exceeds the Fix range but the sum does not
	got := FromInt(200).MulAdd(FromInt(200), FromInt(-32000))
	assert.Equal(t, FromInt(8000), got)

	naive := FromInt(200).Mul(FromInt(200)).Add(FromInt(-32000))
	assert.NotEqual(t, got, naive, "two-step multiply-add saturates in between")
}

func TestDiv(t *testing.T) {
	assert.Equal(t, Fix(21845), One.Div(FromInt(3)))
	assert.Equal(t, Fix(-21845), FromInt(-1).Div(FromInt(3)))
	assert.Equal(t, Fix(43691), Two.Div(FromInt(3)), "0.6666 rounds up")
	assert.Equal(t, Half, One.Div(Two))
	assert.Equal(t, MaxFix, FromInt(1000).Div(FromFloat64(0.001)))
	assert.Panics(t, func() { One.Div(Zero) })
}

func TestCmpClamp(t *testing.T) {
	assert.Equal(t, -1, Zero.Cmp(One))
	assert.Equal(t, 0, One.Cmp(One))
	assert.Equal(t, 1, Two.Cmp(One))

	assert.Equal(t, Zero, FromInt(-5).Clamp(Zero, One))
	assert.Equal(t, One, FromInt(5).Clamp(Zero, One))
	assert.Equal(t, Half, Half.Clamp(Zero, One))
}

func TestFloorFrac(t *testing.T) {
	v := FromFloat64(2.75)
	assert.Equal(t, Two, v.Floor())
	assert.Equal(t, FromFloat64(0.75), v.Frac())

	n := FromFloat64(-2.25)
	assert.Equal(t, FromInt(-3), n.Floor())
	assert.Equal(t, FromFloat64(0.75), n.Frac())
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		name string
		in   Fix
		want float64
	}{
		{"Zero", Zero, 0},
		{"One", One, 1},
		{"Four", FromInt(4), 2},
		{"Two", Two, math.Sqrt2},
		{"Quarter", FromFloat64(0.25), 0.5},
		{"Small", Fix(1), math.Sqrt(Delta)},
		{"Max", MaxFix, math.Sqrt(MaxFix.ToFloat64())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.in.Sqrt().ToFloat64(), Delta)
		})
	}

	require.Panics(t, func() { FromInt(-1).Sqrt() })
}

func TestIsqrt_RoundsToNearest(t *testing.T) {
	for v := range uint64(10_000) {
		got := isqrt(v)
		want := uint64(math.Round(math.Sqrt(float64(v))))
		if !assert.Equal(t, want, got, "isqrt(%d)", v) {
			return
		}
	}
}

func BenchmarkMulAdd(b *testing.B) {
	x := FromFloat64(0.37)
	d := FromInt(10000)
	for b.Loop() {
		_ = x.MulAdd(d, One)
	}
}
