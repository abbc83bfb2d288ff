package mathutil

// Curve constants shared by the reference models.
const (
	halfPoint = 0.5 // in-out curves switch halves here

	expScale       = 10.0 // exponential curves span 2^-10 .. 2^0
	expInOutScale  = 20.0
	expInOutOffset = 10.0

	quarticInOutGain = 8.0
	cubicInOutGain   = 4.0
)
