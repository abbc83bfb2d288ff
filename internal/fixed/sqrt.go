package fixed

// Sqrt returns the square root of f rounded to the nearest representable
// value. It panics if f is negative.
func (f Fix) Sqrt() Fix {
	if f < 0 {
		panic("fixed: square root of negative value")
	}
	// sqrt(raw / 2¹⁶) · 2¹⁶ == sqrt(raw · 2¹⁶)
	return Fix(isqrt(uint64(f) << fracBits))
}

// isqrt returns sqrt(v) rounded to the nearest integer using the binary
// digit-by-digit method.
func isqrt(v uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= res+bit {
			v -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	// remainder > res means v > res² + res, closer to res+1
	if v > res {
		res++
	}
	return res
}
