package fixed

import "math"

// Q16.16 layout.
const (
	fracBits = 16
	oneRaw   = 1 << fracBits
	halfRaw  = oneRaw >> 1
	fracMask = oneRaw - 1
	maxInt   = math.MaxInt32 >> fracBits // 32767
	minInt   = math.MinInt32 >> fracBits // -32768
)

// Exported constants.
const (
	Zero   Fix = 0
	One    Fix = oneRaw
	Half   Fix = halfRaw
	Two    Fix = 2 * oneRaw
	MaxFix Fix = math.MaxInt32
	MinFix Fix = math.MinInt32

	FracPi2 Fix = 102944 // round(π/2 · 2¹⁶)
	Pi      Fix = 205887 // round(π · 2¹⁶)
	TwoPi   Fix = 411775 // round(2π · 2¹⁶)

	// Delta is the resolution of a Fix as a float64.
	Delta float64 = 1.0 / oneRaw
)

// Internal Q2.30 working precision used by the transcendental functions.
const (
	q30Shift = 30
	q30One   = int64(1) << q30Shift

	// q30ToFix is the shift taking a Q30 value down to Q16.
	q30ToFix = q30Shift - fracBits

	ln2Q30 = 744261118 // round(ln 2 · 2³⁰)
)

// Series lengths.
const (
	expTerms = 12 // e^z for z in [0, ln 2): next term < 1e-12
)

// Powf range limits, in Q30.
const (
	exp2OverflowQ30  = int64(maxIntBits) << q30Shift
	exp2UnderflowQ30 = -int64(underflowBits) << q30Shift

	maxIntBits    = 15 // 2^15 no longer fits the integer part
	underflowBits = 32 // anything below 2^-32 rounds to zero
)
