package easing

import "github.com/tphakala/go-fixed-easing/internal/fixed"

// shapers is indexed by Curve.
var shapers = [numCurves]Func{
	CurveLinear:       linear,
	CurveQuadIn:       quadIn,
	CurveQuadOut:      quadOut,
	CurveQuadInOut:    quadInOut,
	CurveCubicIn:      cubicIn,
	CurveCubicOut:     cubicOut,
	CurveCubicInOut:   cubicInOut,
	CurveQuarticIn:    quarticIn,
	CurveQuarticOut:   quarticOut,
	CurveQuarticInOut: quarticInOut,
	CurveSinIn:        sinIn,
	CurveSinOut:       sinOut,
	CurveSinInOut:     sinInOut,
	CurveExpIn:        expIn,
	CurveExpOut:       expOut,
	CurveExpInOut:     expInOut,
}

// powf is the only route from the exponential curves to Fix.Powf.
var powf = Fix.Powf

func linear(x Fix) Fix {
	return x
}

func quadIn(x Fix) Fix {
	return x.Mul(x)
}

func quadOut(x Fix) Fix {
	return x.Mul(x.Sub(fixTwo)).Neg()
}

func quadInOut(x Fix) Fix {
	if x < Half {
		return fixTwo.Mul(x).Mul(x)
	}
	// -2x² + (4x - 1)
	return fixMinusTwo.Mul(x).MulAdd(x, x.MulAdd(fixFour, fixMinusOne))
}

func cubicIn(x Fix) Fix {
	return x.Mul(x).Mul(x)
}

func cubicOut(x Fix) Fix {
	y := x.Sub(One)
	return y.Mul(y).MulAdd(y, One)
}

func cubicInOut(x Fix) Fix {
	if x < Half {
		return fixFour.Mul(x).Mul(x).Mul(x)
	}
	y := x.MulAdd(fixTwo, fixMinusTwo)
	return y.Mul(y).Mul(y).MulAdd(Half, One)
}

func quarticIn(x Fix) Fix {
	x2 := x.Mul(x)
	return x2.Mul(x2)
}

func quarticOut(x Fix) Fix {
	y := x.Sub(One)
	return y.Mul(y).Mul(y).MulAdd(One.Sub(x), One)
}

func quarticInOut(x Fix) Fix {
	if x < Half {
		// 8x⁴ == ½(2x)⁴, which keeps more bits for small x
		y := x.Mul(fixTwo)
		y2 := y.Mul(y)
		return y2.Mul(y2).Mul(Half)
	}
	y := x.Sub(One)
	y2 := y.Mul(y)
	return y2.Mul(y2).MulAdd(fixMinusEight, One)
}

func sinIn(x Fix) Fix {
	return x.Sub(One).Mul(fixed.FracPi2).Sin().Add(One)
}

func sinOut(x Fix) Fix {
	return x.Mul(fixed.FracPi2).Sin()
}

func sinInOut(x Fix) Fix {
	// Both radicands are non-negative on [0, 1] but rounding can push them
	// one unit below zero at the ends.
	if x < Half {
		r := x.Mul(x).MulAdd(fixMinusFour, One).Clamp(Zero, MaxFix)
		return r.Sqrt().MulAdd(fixMinusHalf, Half)
	}
	r := x.MulAdd(fixMinusTwo, fixThree).Mul(x.MulAdd(fixTwo, fixMinusOne)).Clamp(Zero, MaxFix)
	return r.Sqrt().MulAdd(Half, Half)
}

// The exponential curves approach their ends asymptotically; the exact end
// points are pinned so 2^(±∞) is never requested.

func expIn(x Fix) Fix {
	if x == Zero {
		return Zero
	}
	return powf(fixTwo, x.MulAdd(fixTen, fixMinusTen))
}

func expOut(x Fix) Fix {
	if x == One {
		return One
	}
	return One.Sub(powf(fixTwo, fixMinusTen.Mul(x)))
}

func expInOut(x Fix) Fix {
	switch {
	case x == Zero:
		return Zero
	case x == One:
		return One
	case x < Half:
		return powf(fixTwo, x.MulAdd(fixTwenty, fixMinusTen)).Mul(Half)
	default:
		return powf(fixTwo, x.MulAdd(fixMinusTwenty, fixTen)).MulAdd(fixMinusHalf, One)
	}
}
