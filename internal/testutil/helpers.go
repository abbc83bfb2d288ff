// Package testutil provides reusable test helper functions for easing tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-fixed-easing/internal/fixed"
)

// Float64s converts fixed-point values to float64 exactly.
func Float64s(values []fixed.Fix) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.ToFloat64()
	}
	return out
}

// AssertWithinMargin verifies that is matches ought element-wise within margin.
func AssertWithinMargin(t *testing.T, ought, is []float64, margin float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, is, len(ought), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range ought {
		if !assert.InDelta(t, ought[i], is[i], margin,
			"sample %d: %f <> %f (margin %f)", i, is[i], ought[i], margin) {
			ok = false
		}
	}
	return ok
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}
