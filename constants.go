package easing

import "github.com/tphakala/go-fixed-easing/internal/fixed"

// Whole-number and fractional literals used by the shaping functions.
const (
	fixMinusOne    = -fixed.One
	fixMinusHalf   = -fixed.Half
	fixTwo         = fixed.Two
	fixMinusTwo    = -fixed.Two
	fixThree       = 3 * fixed.One
	fixFour        = 4 * fixed.One
	fixMinusFour   = -4 * fixed.One
	fixMinusEight  = -8 * fixed.One
	fixTen         = 10 * fixed.One
	fixMinusTen    = -10 * fixed.One
	fixTwenty      = 20 * fixed.One
	fixMinusTwenty = -20 * fixed.One
)

// collectPrealloc caps the capacity Collect reserves up front.
const collectPrealloc = 1 << 16
