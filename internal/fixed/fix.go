// Package fixed implements Fix, a signed Q16.16 binary fixed-point number.
//
// Fix stores 16 integer bits and 16 fractional bits in an int32, giving a
// range of [-32768, 32767.99998] with a resolution of 2⁻¹⁶ (about 1.5e-5).
// All arithmetic is integer-only and therefore bit-for-bit reproducible on
// every platform. Floating point appears only in FromFloat64 and ToFloat64.
//
// Overflow policy: every operation saturates to MaxFix or MinFix instead of
// wrapping. Multiplication, fused multiply-add and division round to the
// nearest representable value, ties toward +∞.
//
// Operations that have no meaningful result (division by zero, the square
// root of a negative number, a non-positive base for Powf) panic. They
// indicate a bug in the caller, not a recoverable condition.
package fixed

import (
	"math"
	"math/bits"
	"strconv"
)

// Fix is a Q16.16 signed fixed-point value.
type Fix int32

// FromInt converts an integer to a Fix, saturating outside [-32768, 32767].
func FromInt(n int) Fix {
	if n > maxInt {
		return MaxFix
	}
	if n < minInt {
		return MinFix
	}
	return Fix(n << fracBits)
}

// FromRaw reinterprets raw as the bit pattern of a Fix.
func FromRaw(raw int32) Fix {
	return Fix(raw)
}

// FromFloat64 converts value to the nearest Fix, saturating out of range
// values. It panics on NaN.
func FromFloat64(value float64) Fix {
	if math.IsNaN(value) {
		panic("fixed: cannot convert NaN to Fix")
	}
	r := math.Round(value * oneRaw)
	if r >= math.MaxInt32 {
		return MaxFix
	}
	if r <= math.MinInt32 {
		return MinFix
	}
	return Fix(r)
}

// Ratio returns num/den truncated to the fixed resolution. The quotient is
// formed with a 128-bit intermediate, so num and den are not limited to the
// 16 integer bits of a Fix. It panics if den is zero.
func Ratio(num, den uint64) Fix {
	if den == 0 {
		panic("fixed: ratio with zero denominator")
	}
	hi, lo := bits.Mul64(num, oneRaw)
	if hi >= den {
		return MaxFix
	}
	q, _ := bits.Div64(hi, lo, den)
	if q > math.MaxInt32 {
		return MaxFix
	}
	return Fix(q)
}

// Raw returns the underlying bit pattern.
func (f Fix) Raw() int32 {
	return int32(f)
}

// ToFloat64 converts f to a float64. The conversion is exact.
func (f Fix) ToFloat64() float64 {
	return float64(f) / oneRaw
}

func (f Fix) String() string {
	return strconv.FormatFloat(f.ToFloat64(), 'f', -1, 64)
}

func (f Fix) Add(g Fix) Fix {
	return saturate(int64(f) + int64(g))
}

func (f Fix) Sub(g Fix) Fix {
	return saturate(int64(f) - int64(g))
}

func (f Fix) Neg() Fix {
	return saturate(-int64(f))
}

func (f Fix) Abs() Fix {
	if f < 0 {
		return f.Neg()
	}
	return f
}

// Mul returns f·g rounded to the fixed resolution.
func (f Fix) Mul(g Fix) Fix {
	return saturate(roundShift(int64(f)*int64(g), fracBits))
}

// MulAdd returns f·mul + add. The product is kept at full 32.32 precision
// and only the final sum is rounded, so chaining MulAdd loses less than a
// Mul followed by an Add.
func (f Fix) MulAdd(mul, add Fix) Fix {
	return saturate(roundShift(int64(f)*int64(mul)+int64(add)<<fracBits, fracBits))
}

// Div returns f/g rounded to the nearest representable value. It panics if
// g is zero.
func (f Fix) Div(g Fix) Fix {
	if g == 0 {
		panic("fixed: division by zero")
	}
	n := int64(f) << fracBits
	d := int64(g)
	if (n < 0) != (d < 0) {
		return saturate((n - d/2) / d)
	}
	return saturate((n + d/2) / d)
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than g.
func (f Fix) Cmp(g Fix) int {
	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	default:
		return 0
	}
}

// Clamp limits f to [lo, hi].
func (f Fix) Clamp(lo, hi Fix) Fix {
	return min(max(f, lo), hi)
}

// Floor returns the largest whole Fix not greater than f.
func (f Fix) Floor() Fix {
	return f &^ fracMask
}

// Frac returns f - f.Floor(), always in [0, 1).
func (f Fix) Frac() Fix {
	return f & fracMask
}

func saturate(v int64) Fix {
	if v > math.MaxInt32 {
		return MaxFix
	}
	if v < math.MinInt32 {
		return MinFix
	}
	return Fix(v)
}

// roundShift divides v by 2ⁿ rounding to nearest, ties toward +∞. n must be
// at least 1.
func roundShift(v int64, n uint) int64 {
	return (v + int64(1)<<(n-1)) >> n
}
