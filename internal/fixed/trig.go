package fixed

// Sin returns the sine of f (in radians). The result is accurate to the
// fixed resolution on [-π/2, π/2]; other arguments are first reduced into
// that interval, which costs up to one extra unit of error from the rounded
// value of π.
func (f Fix) Sin() Fix {
	x := int64(f)
	if x > int64(FracPi2) || x < -int64(FracPi2) {
		x = reduceHalfPi(x)
	}
	// evaluate on |x| so the result is exactly odd
	if x < 0 {
		return Fix(-roundShift(sinQ30(-x<<q30ToFix), q30ToFix))
	}
	return Fix(roundShift(sinQ30(x<<q30ToFix), q30ToFix))
}

// reduceHalfPi maps a raw Q16 angle onto [-π/2, π/2] preserving its sine.
func reduceHalfPi(x int64) int64 {
	x %= int64(TwoPi)
	if x > int64(Pi) {
		x -= int64(TwoPi)
	} else if x < -int64(Pi) {
		x += int64(TwoPi)
	}
	if x > int64(FracPi2) {
		x = int64(Pi) - x
	} else if x < -int64(FracPi2) {
		x = -int64(Pi) - x
	}
	return x
}

// sinQ30 evaluates the odd Taylor polynomial through x¹¹ in Horner form:
//
//	sin x ≈ x(1 - x²/6(1 - x²/20(1 - x²/42(1 - x²/72(1 - x²/110)))))
//
// x is Q30 with |x| ≤ π/2; the truncation error there is below 6e-8.
func sinQ30(x int64) int64 {
	x2 := mulQ30(x, x)
	t := q30One
	for _, d := range [...]int64{110, 72, 42, 20, 6} {
		t = q30One - mulQ30(x2, t)/d
	}
	return mulQ30(x, t)
}

func mulQ30(a, b int64) int64 {
	return roundShift(a*b, q30Shift)
}
