package verify

import "github.com/tphakala/go-fixed-easing/internal/fixed"

// ErrorMarginFactor scales a reference curve's value range into the largest
// absolute error a fixed-point sample may have.
const ErrorMarginFactor = 0.00015

// minTolerance is the error floor Compare allows. Half a Fix step is what
// rounding a float64 end point to Fix may cost, even over a zero range.
const minTolerance = fixed.Delta / 2

// Dump file naming.
const (
	dumpOughtSuffix = "-ought.json"
	dumpIsSuffix    = "-is.json"
	dumpExt         = ".json"
	dumpDirPerm     = 0o755
	dumpFilePerm    = 0o644
)
