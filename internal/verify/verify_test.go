package verify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fixed-easing/internal/fixed"
)

func fixes(values ...float64) []fixed.Fix {
	out := make([]fixed.Fix, len(values))
	for i, v := range values {
		out[i] = fixed.FromFloat64(v)
	}
	return out
}

func TestTolerance(t *testing.T) {
	assert.InDelta(t, 1.5, Tolerance([]float64{0, 10000, 5000}), 1e-12)
	assert.InDelta(t, 1.5, Tolerance([]float64{10000, 0}), 1e-12)
	assert.Zero(t, Tolerance(nil))
	assert.Zero(t, Tolerance([]float64{3, 3, 3}))
}

func TestReference(t *testing.T) {
	tests := []struct {
		name       string
		curve      string
		start, end float64
		steps      int
		want       []float64
	}{
		{"Linear unit", "linear", 0, 1, 10, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{"Quad out", "quad-out", 0, 10000, 5, []float64{3600, 6400, 8400, 9600, 10000}},
		{"Descending", "linear", 10, 0, 4, []float64{7.5, 5, 2.5, 0}},
		{"Single step", "exp-in", 0, 100, 1, []float64{100}},
		{"No steps", "sin-out", 0, 1, 0, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reference(tt.curve, tt.start, tt.end, tt.steps)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9, "sample %d", i)
			}
		})
	}

	_, err := Reference("elastic-out", 0, 1, 3)
	require.ErrorIs(t, err, ErrNoReference)
}

// TestReference_LastSampleIsEnd checks the reference grid ends exactly at
// x = 1, so curves pinned there produce the end point at every step count.
func TestReference_LastSampleIsEnd(t *testing.T) {
	for _, name := range []string{"exp-out", "exp-in-out", "sin-in", "linear"} {
		for steps := 1; steps <= 1200; steps++ {
			got, err := Reference(name, 0, 10000, steps)
			require.NoError(t, err)
			require.Len(t, got, steps)
			if !assert.InDelta(t, 10000.0, got[steps-1], 0, "%s with %d steps", name, steps) {
				return
			}
		}
	}

	got, err := Reference("exp-out", 0, 10000, 6)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, got[5])
}

func TestCompare_MinimumTolerance(t *testing.T) {
	// a single sample has a zero value range
	r := Compare("single", []float64{0.3}, fixes(0.3))
	assert.InDelta(t, fixed.Delta/2, r.Tolerance, 0)
	assert.True(t, r.OK(), "max error %g", r.MaxError)

	r = Compare("single-off", []float64{0.3}, fixes(0.3+2*fixed.Delta))
	assert.False(t, r.OK())

	// wide ranges keep the proportional tolerance
	r = Compare("wide", []float64{0, 10000}, fixes(0, 10000))
	assert.InDelta(t, 1.5, r.Tolerance, 1e-12)
}

func TestCompare_Pass(t *testing.T) {
	ought := []float64{0, 5000, 10000}
	r := Compare("pass", ought, fixes(0.5, 5001, 9999))

	assert.True(t, r.OK())
	assert.InDelta(t, 1.0, r.MaxError, 1e-3)
	assert.InDelta(t, 2.5/3, r.MeanError, 1e-3)
	assert.NoError(t, Check(r, nil))
}

func TestCompare_Violation(t *testing.T) {
	ought := []float64{0, 5000, 10000}
	r := Compare("fail", ought, fixes(0, 5002, 10000))

	assert.False(t, r.OK())
	assert.Equal(t, []int{1}, r.Violations)
	assert.InDelta(t, 2.0, r.MaxError, 1e-9)
	assert.ErrorIs(t, Check(r, nil), ErrOutsideMargin)
}

func TestCompare_LengthMismatch(t *testing.T) {
	r := Compare("short", []float64{1, 2, 3}, fixes(1))
	assert.Equal(t, []int{1, 2}, r.Violations)

	r = Compare("long", []float64{1}, fixes(1, 2))
	assert.Equal(t, []int{1}, r.Violations)
}

func TestCheck_Dumps(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	r := Compare("quad_in_test", []float64{0, 10}, fixes(0, 11))

	err := Check(r, &Dumper{Dir: dir})
	require.ErrorIs(t, err, ErrOutsideMargin)

	var ought, is []float64
	data, err := os.ReadFile(filepath.Join(dir, "quad_in_test-ought.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &ought))
	data, err = os.ReadFile(filepath.Join(dir, "quad_in_test-is.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &is))

	assert.Equal(t, []float64{0, 10}, ought)
	assert.Equal(t, []float64{0, 11}, is)
}

func TestCheck_PassDoesNotDump(t *testing.T) {
	dir := t.TempDir()
	r := Compare("ok", []float64{0, 10}, fixes(0, 10))
	require.NoError(t, Check(r, &Dumper{Dir: dir}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCleanStale(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a-ought.json", "a-is.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0o644))
	}
	sub := filepath.Join(dir, "keep")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "nested.json"), []byte("[]"), 0o644))

	removed, err := CleanStale(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.FileExists(t, filepath.Join(sub, "nested.json"))
	assert.NoFileExists(t, filepath.Join(dir, "a-is.json"))
}

func TestCleanStale_MissingDir(t *testing.T) {
	removed, err := CleanStale(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Zero(t, removed)
}
