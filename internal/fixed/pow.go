package fixed

import "math/bits"

// Powf returns f raised to the real exponent, computed as
// 2^(exponent·log₂ f) with integer-only log₂ and exp₂. Results too large
// for a Fix saturate to MaxFix and results below the resolution become 0.
//
// Powf panics if f is not strictly positive: a zero base is the limit
// case callers must special-case themselves.
func (f Fix) Powf(exponent Fix) Fix {
	if f <= 0 {
		panic("fixed: Powf with non-positive base")
	}
	if exponent == 0 || f == One {
		return One
	}
	// exponent is Q16, log2 >> 4 is Q26: the product is Q42.
	y := roundShift(int64(exponent)*(log2Q30(f)>>4), 12)
	return exp2Q30(y)
}

// log2Q30 returns log₂ f as a Q30 value for f > 0.
func log2Q30(f Fix) int64 {
	n := bits.Len32(uint32(f)) - 1
	result := int64(n-fracBits) << q30Shift

	// normalise the mantissa to [1, 2) in Q30
	var m int64
	if n <= q30Shift {
		m = int64(f) << (q30Shift - n)
	} else {
		m = int64(f) >> (n - q30Shift)
	}

	// square-and-compare recurrence, one result bit per iteration
	for bit := q30One >> 1; bit > 0; bit >>= 1 {
		m = (m * m) >> q30Shift
		if m >= 2*q30One {
			m >>= 1
			result += bit
		}
	}
	return result
}

// exp2Q30 returns 2^y for a Q30 exponent y.
func exp2Q30(y int64) Fix {
	if y >= exp2OverflowQ30 {
		return MaxFix
	}
	if y < exp2UnderflowQ30 {
		return Zero
	}

	ip := y >> q30Shift // floor
	fp := y & (q30One - 1)

	// 2^fp = e^(fp·ln 2), Horner form of the Taylor series
	z := mulQ30(fp, ln2Q30)
	e := q30One
	for k := int64(expTerms); k >= 1; k-- {
		e = q30One + mulQ30(z, e)/k
	}

	// e is Q30 in [1, 2); scale by 2^ip and drop to Q16
	shift := q30ToFix - ip
	switch {
	case shift == 0:
		return saturate(e)
	case shift >= 62:
		return Zero
	default:
		return saturate(roundShift(e, uint(shift)))
	}
}
