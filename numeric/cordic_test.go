package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-microchart/internal/testutil"
)

const cordicTolerance = 0.01

// TestCordicBackend_SinCos verifies the shift-add rotation against the
// float reference across all quadrants.
func TestCordicBackend_SinCos(t *testing.T) {
	var b CordicBackend

	angles := []float32{0, 0.25, 0.5, 1.0, math.Pi / 2, 2.0, 3.0, math.Pi,
		-0.5, -1.0, -math.Pi / 2, -2.5, 2*math.Pi + 0.75}
	for _, angle := range angles {
		gotSin := b.Sin(FixedFromFloat(angle)).Float()
		gotCos := b.Cos(FixedFromFloat(angle)).Float()

		wantSin := float32(math.Sin(float64(angle)))
		wantCos := float32(math.Cos(float64(angle)))

		assert.InDelta(t, wantSin, gotSin, cordicTolerance, "sin(%f)", angle)
		assert.InDelta(t, wantCos, gotCos, cordicTolerance, "cos(%f)", angle)
	}
}

// TestCordicBackend_PythagoreanIdentity verifies sin²+cos² stays near one,
// confirming the gain compensation.
func TestCordicBackend_PythagoreanIdentity(t *testing.T) {
	var b CordicBackend

	for angle := float32(-3.0); angle <= 3.0; angle += 0.375 {
		sin := float64(b.Sin(FixedFromFloat(angle)).Float())
		cos := float64(b.Cos(FixedFromFloat(angle)).Float())
		testutil.AssertRelativeError(t, 1.0, sin*sin+cos*cos, 0.01)
	}
}

// TestCordicBackend_Tan verifies the tangent ratio and its pole sentinel.
func TestCordicBackend_Tan(t *testing.T) {
	var b CordicBackend

	assert.InDelta(t, math.Tan(0.5), b.Tan(FixedFromFloat(0.5)).Float(), 0.02)
	assert.InDelta(t, math.Tan(-1.0), b.Tan(FixedFromFloat(-1.0)).Float(), 0.05)

	got := b.Tan(fixedHalfPi)
	assert.True(t, got == fixedSentinel || got == -fixedSentinel,
		"tan at the pole should return a sentinel, got %v", got)
}

// TestCordicBackend_Delegation verifies non-trig operations defer to the
// fixed-point implementations.
func TestCordicBackend_Delegation(t *testing.T) {
	var cordic CordicBackend
	var fixed FixedBackend

	x := FixedFromFloat(4)
	assert.Equal(t, fixed.Sqrt(x), cordic.Sqrt(x), "sqrt delegates")
	assert.Equal(t, fixed.Ln(x), cordic.Ln(x), "ln delegates")
	assert.Equal(t, fixed.Pow(x, FixedFromFloat(2)), cordic.Pow(x, FixedFromFloat(2)), "pow delegates")
	assert.Equal(t, fixed.Atan2(x, x), cordic.Atan2(x, x), "atan2 delegates")
	assert.Equal(t, fixed.Floor(FixedFromFloat(1.5)), cordic.Floor(FixedFromFloat(1.5)))
}
