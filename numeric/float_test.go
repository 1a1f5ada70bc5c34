package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const floatTolerance = 1e-4

// TestFloatBackends_Agreement verifies that the stdlib and math32 providers
// agree within float32 precision on well-conditioned inputs.
func TestFloatBackends_Agreement(t *testing.T) {
	var std FloatBackend
	var libm LibmBackend

	values := []float32{0.1, 0.5, 1, 2, 10, 100.25}
	for _, v := range values {
		assert.InDelta(t, std.Sqrt(v), libm.Sqrt(v), floatTolerance, "sqrt(%f)", v)
		assert.InDelta(t, std.Ln(v), libm.Ln(v), floatTolerance, "ln(%f)", v)
		assert.InDelta(t, std.Log10(v), libm.Log10(v), floatTolerance, "log10(%f)", v)
		assert.InDelta(t, std.Sin(v), libm.Sin(v), floatTolerance, "sin(%f)", v)
		assert.InDelta(t, std.Cos(v), libm.Cos(v), floatTolerance, "cos(%f)", v)
		assert.InDelta(t, std.Atan2(v, 1), libm.Atan2(v, 1), floatTolerance, "atan2(%f,1)", v)
	}
}

// TestFloatBackend_Basics verifies the comparison and rounding operations.
func TestFloatBackend_Basics(t *testing.T) {
	var b FloatBackend

	assert.Equal(t, float32(2), b.Sqrt(4))
	assert.Equal(t, float32(3.5), b.Abs(-3.5))
	assert.Equal(t, float32(1), b.Min(1, 2))
	assert.Equal(t, float32(2), b.Max(1, 2))
	assert.Equal(t, float32(-2), b.Floor(-1.5))
	assert.Equal(t, float32(-1), b.Ceil(-1.5))
	assert.Equal(t, float32(8), b.Pow(2, 3))
	assert.InDelta(t, math.Pi, b.ToRadians(180), 1e-5)
	assert.InDelta(t, 180, b.ToDegrees(math.Pi), 1e-3)
}

// TestFloatBackend_Saturation verifies degenerate inputs return finite
// sentinels instead of NaN or Inf.
func TestFloatBackend_Saturation(t *testing.T) {
	backends := []struct {
		name string
		b    Backend[float32]
	}{
		{"float", FloatBackend{}},
		{"libm", LibmBackend{}},
	}

	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, float32(0), tt.b.Sqrt(-4), "negative sqrt")
			assert.Equal(t, lnSentinel, tt.b.Ln(0), "ln(0)")
			assert.Equal(t, lnSentinel, tt.b.Ln(-1), "ln(-1)")
			assert.Equal(t, lnSentinel, tt.b.Log10(0), "log10(0)")
			assert.Equal(t, float32(0), tt.b.Atan2(0, 0), "atan2 origin")

			// Negative base with fractional exponent has no real result;
			// the NaN collapses to zero.
			assert.Equal(t, float32(0), tt.b.Pow(-2, 0.5), "pow NaN case")

			// Near the pole tan stays inside the sentinel bound.
			pole := float32(math.Pi / 2)
			tan := tt.b.Tan(pole)
			assert.False(t, math.IsNaN(float64(tan)), "tan NaN")
			assert.False(t, math.IsInf(float64(tan), 0), "tan Inf")
			assert.LessOrEqual(t, float64(tt.b.Abs(tan)), float64(sentinelExtreme))
		})
	}
}
