package easing

import "github.com/tphakala/go-fixed-easing/internal/fixed"

// Fix is the Q16.16 fixed-point value every curve is computed in.
// See FromInt, FromFloat64 and FromRaw for construction; Fix.ToFloat64
// converts back without loss.
type Fix = fixed.Fix

// Fixed-point constants re-exported for callers.
const (
	Zero   = fixed.Zero
	One    = fixed.One
	Half   = fixed.Half
	MaxFix = fixed.MaxFix
	MinFix = fixed.MinFix

	// Resolution is the smallest positive difference between two Fix values.
	Resolution = fixed.Delta
)

// FromInt converts n to a Fix, saturating outside [-32768, 32767].
func FromInt(n int) Fix {
	return fixed.FromInt(n)
}

// FromFloat64 converts v to the nearest Fix, saturating out of range values.
// It panics if v is NaN.
func FromFloat64(v float64) Fix {
	return fixed.FromFloat64(v)
}

// FromRaw builds a Fix from its Q16.16 bit pattern.
func FromRaw(raw int32) Fix {
	return fixed.FromRaw(raw)
}
