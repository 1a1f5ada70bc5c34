package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-microchart/internal/testutil"
)

// TestMilli_Conversions verifies the ×1000 scaling contract, including the
// exact 1.234 → 1234 case that downstream code relies on.
func TestMilli_Conversions(t *testing.T) {
	assert.Equal(t, Milli(1234), MilliFromFloat(1.234), "to milli")
	assert.InDelta(t, 1.234, Milli(1234).Float(), 1e-6, "from milli")

	assert.Equal(t, Milli(5000), MilliFromInt(5))
	assert.Equal(t, int32(5), Milli(5000).Int())
	assert.Equal(t, Milli(-2500), MilliFromFloat(-2.5))

	// Saturation at the int32 extremes.
	assert.Equal(t, Milli(math.MaxInt32), MilliFromInt(3000000))
	assert.Equal(t, Milli(math.MinInt32), MilliFromInt(-3000000))
	assert.Equal(t, Milli(math.MaxInt32), MilliFromFloat(3e9))
}

// TestMilli_RoundTripTolerance verifies the documented 1e-3 round-trip
// bound over a spread of values.
func TestMilli_RoundTripTolerance(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, 1.2345, -9.8765, 123.456, -0.001}
	for _, v := range values {
		got := MilliFromFloat(v).Float()
		testutil.AssertInRange(t, float64(got-v), -testutil.MilliTolerance, testutil.MilliTolerance)
	}
}

// TestIntegerBackend_Sqrt verifies the binary-search square root over raw
// values.
func TestIntegerBackend_Sqrt(t *testing.T) {
	var b IntegerBackend

	tests := []struct {
		name  string
		value Milli
		want  Milli
	}{
		{"perfect_square", 1000000, 1000},
		{"four", 4, 2},
		{"non_square", 10, 3},
		{"one", 1, 1},
		{"zero", 0, 0},
		{"negative", -25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Sqrt(tt.value))
		})
	}
}

// TestIntegerBackend_Sin verifies the triangle-wave approximation at the
// quadrant boundaries and midpoints.
func TestIntegerBackend_Sin(t *testing.T) {
	var b IntegerBackend

	tests := []struct {
		name  string
		angle Milli // milliradians
		want  Milli // sine ×1000
	}{
		{"zero", 0, 0},
		{"quarter_pi", 785, 499},
		{"half_pi", 1571, 1000},
		{"pi", 3142, 0},
		{"three_half_pi", 4713, -1000},
		{"negative_half_pi", -1571, -1000},
		{"full_circle", 6284, 0},
		{"wrapped", 6284 + 1571, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Sin(tt.angle))
		})
	}
}

// TestIntegerBackend_CosTan verifies the cosine shift and the tangent pole
// sentinel.
func TestIntegerBackend_CosTan(t *testing.T) {
	var b IntegerBackend

	assert.Equal(t, Milli(1000), b.Cos(0), "cos(0)")
	assert.Equal(t, Milli(-1000), b.Cos(3142), "cos(π)")
	assert.Equal(t, Milli(0), b.Cos(1571), "cos(π/2)")

	// tan(π/4): sin=499, cos=500 on the triangle wave.
	assert.Equal(t, Milli(998), b.Tan(785), "tan(π/4)")

	// At the pole |cos| < 10 milli trips the sentinel.
	assert.Equal(t, milliTanLimit, b.Tan(1571), "tan(π/2) sentinel")
	assert.Equal(t, -milliTanLimit, b.Tan(-1571), "tan(-π/2) sentinel")
}

// TestIntegerBackend_Ln verifies the lookup table and the bit-length
// extension.
func TestIntegerBackend_Ln(t *testing.T) {
	var b IntegerBackend

	tests := []struct {
		name  string
		value Milli
		want  Milli
	}{
		{"one", 1, 0},
		{"two", 2, 693},
		{"three", 3, 693},
		{"four", 4, 1386},
		{"seven", 7, 1386},
		{"eight", 8, 2079},
		{"fifteen", 15, 2079},
		{"sixteen", 16, 2772},
		{"thirty_one", 31, 2772},
		{"thirty_two", 32, 6 * 693},
		{"thousand", 1000, 10 * 693},
		{"zero_sentinel", 0, -1000},
		{"negative_sentinel", -5, -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Ln(tt.value))
		})
	}
}

// TestIntegerBackend_Log10 verifies the ln(10) rescale.
func TestIntegerBackend_Log10(t *testing.T) {
	var b IntegerBackend

	// ln(1000) = 6930 by bit length; ×1000/2303 = 3009.
	assert.Equal(t, Milli(3009), b.Log10(1000))
	assert.Equal(t, Milli(0), b.Log10(1))
}

// TestIntegerBackend_Pow verifies raw-exponent squaring and its saturation.
func TestIntegerBackend_Pow(t *testing.T) {
	var b IntegerBackend

	assert.Equal(t, Milli(1), b.Pow(5, 0), "x^0")
	assert.Equal(t, Milli(0), b.Pow(5, -2), "negative exponent")
	assert.Equal(t, Milli(8), b.Pow(2, 3), "2^3 on raw values")
	assert.Equal(t, Milli(math.MaxInt32), b.Pow(1000, 4), "overflow saturates")
}

// TestIntegerBackend_Atan2 verifies the ratio approximation and its
// quadrant adjustments.
func TestIntegerBackend_Atan2(t *testing.T) {
	var b IntegerBackend

	tests := []struct {
		name string
		y, x Milli
		want Milli
	}{
		{"origin", 0, 0, 0},
		{"positive_y_axis", 500, 0, 1571},
		{"negative_y_axis", -500, 0, -1571},
		{"diagonal_q1", 1000, 1000, 785},
		{"diagonal_q2", 1000, -1000, 3142 - 785},
		{"diagonal_q3", -1000, -1000, -3142 + 785},
		{"diagonal_q4", -1000, 1000, -785},
		{"positive_x_axis", 0, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Atan2(tt.y, tt.x))
		})
	}
}

// TestIntegerBackend_AngleConversions verifies the milli degree/radian
// scaling.
func TestIntegerBackend_AngleConversions(t *testing.T) {
	var b IntegerBackend

	assert.Equal(t, Milli(785), b.ToRadians(MilliFromInt(45)), "45° in mrad")
	assert.Equal(t, Milli(44971), b.ToDegrees(785), "785 mrad in m°")
}

// TestIntegerBackend_FloorCeilIdentity verifies that milli values pass
// through rounding untouched.
func TestIntegerBackend_FloorCeilIdentity(t *testing.T) {
	var b IntegerBackend

	for _, v := range []Milli{0, 1, -1, 1234, -1234} {
		assert.Equal(t, v, b.Floor(v))
		assert.Equal(t, v, b.Ceil(v))
	}
}
