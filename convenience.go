package easing

// One constructor per curve. Each is New with the curve fixed, so none of
// them can fail.

// NewLinear creates a generator for CurveLinear.
func NewLinear(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveLinear, start, end, steps)
}

// NewQuadIn creates a generator for CurveQuadIn.
func NewQuadIn(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveQuadIn, start, end, steps)
}

// NewQuadOut creates a generator for CurveQuadOut.
func NewQuadOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveQuadOut, start, end, steps)
}

// NewQuadInOut creates a generator for CurveQuadInOut.
func NewQuadInOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveQuadInOut, start, end, steps)
}

// NewCubicIn creates a generator for CurveCubicIn.
func NewCubicIn(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveCubicIn, start, end, steps)
}

// NewCubicOut creates a generator for CurveCubicOut.
func NewCubicOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveCubicOut, start, end, steps)
}

// NewCubicInOut creates a generator for CurveCubicInOut.
func NewCubicInOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveCubicInOut, start, end, steps)
}

// NewQuarticIn creates a generator for CurveQuarticIn.
func NewQuarticIn(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveQuarticIn, start, end, steps)
}

// NewQuarticOut creates a generator for CurveQuarticOut.
func NewQuarticOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveQuarticOut, start, end, steps)
}

// NewQuarticInOut creates a generator for CurveQuarticInOut.
func NewQuarticInOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveQuarticInOut, start, end, steps)
}

// NewSinIn creates a generator for CurveSinIn.
func NewSinIn(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveSinIn, start, end, steps)
}

// NewSinOut creates a generator for CurveSinOut.
func NewSinOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveSinOut, start, end, steps)
}

// NewSinInOut creates a generator for CurveSinInOut.
func NewSinInOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveSinInOut, start, end, steps)
}

// NewExpIn creates a generator for CurveExpIn.
func NewExpIn(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveExpIn, start, end, steps)
}

// NewExpOut creates a generator for CurveExpOut.
func NewExpOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveExpOut, start, end, steps)
}

// NewExpInOut creates a generator for CurveExpInOut.
func NewExpInOut(start, end Fix, steps uint64) *Generator {
	return newGenerator(CurveExpInOut, start, end, steps)
}

// Sample runs curve once and returns every value.
func Sample(curve Curve, start, end Fix, steps uint64) ([]Fix, error) {
	g, err := New(curve, start, end, steps)
	if err != nil {
		return nil, err
	}
	return g.Collect(), nil
}

// SampleFloat64 is Sample for callers working in float64. The end points
// are rounded to the nearest Fix and the results converted back exactly.
func SampleFloat64(curve Curve, start, end float64, steps uint64) ([]float64, error) {
	cfg := Config{Curve: curve, Start: start, End: end, Steps: steps}
	g, err := NewFromConfig(&cfg)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, min(steps, collectPrealloc))
	for v := range g.All() {
		out = append(out, v.ToFloat64())
	}
	return out, nil
}
