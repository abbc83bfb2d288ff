package easing

// SetPowf swaps the exponentiation used by the exponential curves and
// returns a function restoring the previous one.
func SetPowf(f func(base, exponent Fix) Fix) (restore func()) {
	orig := powf
	powf = f
	return func() { powf = orig }
}
