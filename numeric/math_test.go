//go:build !fpmath && !libmmath && !fixedmath && !cordicmath && !intmath

package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-microchart/internal/testutil"
)

// TestNumber_DefaultBinding verifies that with no capability tags the
// Number alias is float32 and conversions are the identity.
func TestNumber_DefaultBinding(t *testing.T) {
	var n Number = 1.5
	assert.Equal(t, float32(1.5), FromNumber(n))
	assert.Equal(t, Number(2.25), ToNumber(2.25))
	assert.Equal(t, Number(7), IntToNumber(7))
	assert.Equal(t, int32(7), NumberToInt(7.9), "truncates toward zero")
}

// TestFacade_ForwardsToFallback verifies the facade dispatches to the
// fallback backend under the default build.
func TestFacade_ForwardsToFallback(t *testing.T) {
	testutil.AssertRelativeError(t, 2.0, float64(Sqrt(4)), 0.005)
	assert.Equal(t, Number(0), Sin(1.0), "fallback sine stub")
	assert.Equal(t, Number(1), Cos(1.0), "fallback cosine stub")
	assert.Equal(t, Number(0), Atan2(1, 1), "fallback atan2 stub")
	assert.Equal(t, Number(4), Pow(2, 2))
	assert.Equal(t, Number(3), Abs(-3))
	assert.Equal(t, Number(1), Min(1, 2))
	assert.Equal(t, Number(2), Max(1, 2))
	assert.Equal(t, Number(1), Floor(1.9))
	assert.Equal(t, Number(2), Ceil(1.1))
	assert.InDelta(t, 3.14159, ToRadians(180), 1e-4)
}

// TestConversionRoundTrip verifies the representation-specific round-trip
// bounds for every backend tier, using the always-compiled constructors.
func TestConversionRoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, 3.75, -12.125, 100.01, -99.99}

	tests := []struct {
		name      string
		roundTrip func(float32) float32
		tolerance float64
	}{
		{"float_identity", func(v float32) float32 { return v }, 0},
		{"fixed_q16_16", func(v float32) float32 { return FixedFromFloat(v).Float() }, 1.0 / 65536.0},
		{"integer_milli", func(v float32) float32 { return MilliFromFloat(v).Float() }, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range values {
				got := tt.roundTrip(v)
				assert.InDelta(t, v, got, tt.tolerance, "value %f", v)
			}
		})
	}
}

// TestIntConversionRoundTrip verifies int32 domain values survive every
// representation unscathed within the chart coordinate range.
func TestIntConversionRoundTrip(t *testing.T) {
	ints := []int32{0, 1, -1, 240, -320, 1000}

	for _, v := range ints {
		assert.Equal(t, v, FixedFromInt(v).Int(), "fixed %d", v)
		assert.Equal(t, v, MilliFromInt(v).Int(), "milli %d", v)
		assert.Equal(t, v, int32(float32(v)), "float %d", v)
	}
}
