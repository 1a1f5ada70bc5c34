package numeric

import (
	"math"
	"math/bits"
)

// Milli is a value scaled by 1000 into an int32: 1.234 is stored as 1234.
// It is the native representation of the integer backend, the tier for
// targets without multiply-accumulate hardware, and carries three decimal
// digits of fraction.
type Milli int32

const (
	milliScale = 1000

	// MilliOne is the milli-unit representation of 1.0.
	MilliOne Milli = milliScale
)

// Milliradian constants used by the integer trigonometry.
const (
	milliPi     Milli = 3142 // π·1000
	milliTwoPi  Milli = 6284 // 2π·1000
	milliHalfPi Milli = 1571 // π/2·1000
	milliLn2    Milli = 693  // ln(2)·1000
	milliLn10   Milli = 2303 // ln(10)·1000

	// milliTanLimit (±100.0) replaces the tangent near its asymptotes,
	// detected when |cos| drops under 10 milli.
	milliTanLimit  Milli = 100000
	milliCosCutoff Milli = 10
)

// MilliFromFloat converts a float32 to milli-units. The product is formed in
// float32 so domain arithmetic and conversion round identically; the result
// truncates toward zero and saturates at the int32 extremes.
func MilliFromFloat(v float32) Milli {
	scaled := float64(v * milliScale)
	switch {
	case scaled > math.MaxInt32:
		return Milli(math.MaxInt32)
	case scaled < math.MinInt32:
		return Milli(math.MinInt32)
	}
	return Milli(scaled)
}

// MilliFromInt converts an int32 to milli-units, saturating on overflow.
func MilliFromInt(v int32) Milli {
	return Milli(satMul32(int32(v), milliScale))
}

// Float returns the value as a float32.
func (m Milli) Float() float32 {
	return float32(m) / milliScale
}

// Int returns the integer part, truncated toward zero.
func (m Milli) Int() int32 {
	return int32(m / milliScale)
}

// satMul32 multiplies two int32 values, clamping the product to the int32
// range instead of wrapping.
func satMul32(a, b int32) int32 {
	p := int64(a) * int64(b)
	switch {
	case p > math.MaxInt32:
		return math.MaxInt32
	case p < math.MinInt32:
		return math.MinInt32
	}
	return int32(p)
}

// IntegerBackend computes on raw [Milli] values with integer-only
// arithmetic. Its approximations are deliberately coarse: they exist so that
// bounds rounding and slice trigonometry stay usable on parts with no
// multiplier, not to be accurate. Selected by the intmath build tag.
type IntegerBackend struct{}

var _ Backend[Milli] = IntegerBackend{}

// Sqrt returns the integer square root of the raw value via binary search.
func (IntegerBackend) Sqrt(x Milli) Milli {
	if x <= 0 {
		return 0
	}

	left, right := Milli(0), x
	result := Milli(0)
	for left <= right {
		mid := left + (right-left)/2
		sq := int64(satMul32(int32(mid), int32(mid)))

		switch {
		case sq == int64(x):
			return mid
		case sq < int64(x):
			left = mid + 1
			result = mid
		default:
			right = mid - 1
		}
	}
	return result
}

func (IntegerBackend) Abs(x Milli) Milli {
	if x < 0 {
		return -x
	}
	return x
}

func (IntegerBackend) Min(a, b Milli) Milli {
	if a < b {
		return a
	}
	return b
}

func (IntegerBackend) Max(a, b Milli) Milli {
	if a > b {
		return a
	}
	return b
}

// Floor is the identity: milli values carry no sub-unit structure to drop.
func (IntegerBackend) Floor(x Milli) Milli {
	return x
}

// Ceil is the identity, matching Floor.
func (IntegerBackend) Ceil(x Milli) Milli {
	return x
}

// Pow raises x to the raw exponent y by repeated squaring with saturation.
// Negative exponents return zero, the integer-division result for almost
// every base.
func (IntegerBackend) Pow(x, y Milli) Milli {
	if y == 0 {
		return 1
	}
	if y < 0 {
		return 0
	}

	result := int32(1)
	base := int32(x)
	exp := uint32(y)
	for exp > 0 {
		if exp&1 == 1 {
			result = satMul32(result, base)
		}
		base = satMul32(base, base)
		exp >>= 1
	}
	return Milli(result)
}

// Ln approximates the natural logarithm of the raw value with a small
// lookup table and, beyond it, the bit-length estimate ln(2ⁿ) = n·ln(2).
// Non-positive inputs return −1000.
func (IntegerBackend) Ln(x Milli) Milli {
	if x <= 0 {
		return -1000
	}

	switch {
	case x == 1:
		return 0
	case x <= 3:
		return milliLn2
	case x <= 7:
		return 2 * milliLn2
	case x <= 15:
		return 3 * milliLn2
	case x <= 31:
		return 4 * milliLn2
	}

	bitLen := Milli(bits.Len32(uint32(x)))
	return bitLen * milliLn2
}

func (b IntegerBackend) Log10(x Milli) Milli {
	return b.Ln(x) * milliScale / milliLn10
}

// Sin approximates sine with a piecewise-linear triangle wave over the four
// quadrants. The input is in milliradians.
func (IntegerBackend) Sin(x Milli) Milli {
	angle := x % milliTwoPi
	if angle < 0 {
		angle += milliTwoPi
	}

	switch {
	case angle <= milliPi/2:
		return (angle * milliScale) / (milliPi / 2)
	case angle <= milliPi:
		return ((milliPi - angle) * milliScale) / (milliPi / 2)
	case angle <= 3*milliPi/2:
		return -((angle - milliPi) * milliScale) / (milliPi / 2)
	default:
		return -((milliTwoPi - angle) * milliScale) / (milliPi / 2)
	}
}

func (b IntegerBackend) Cos(x Milli) Milli {
	return b.Sin(x + milliHalfPi)
}

func (b IntegerBackend) Tan(x Milli) Milli {
	sin := b.Sin(x)
	cos := b.Cos(x)

	if abs32(cos) < milliCosCutoff {
		if sin >= 0 {
			return milliTanLimit
		}
		return -milliTanLimit
	}
	return (sin * milliScale) / cos
}

func (IntegerBackend) ToRadians(degrees Milli) Milli {
	return (degrees * milliPi) / (180 * milliScale)
}

func (IntegerBackend) ToDegrees(radians Milli) Milli {
	return (radians * 180 * milliScale) / milliPi
}

// Atan2 returns a quadrant-adjusted ratio approximation of the angle in
// milliradians.
func (IntegerBackend) Atan2(y, x Milli) Milli {
	if x == 0 {
		switch {
		case y > 0:
			return milliHalfPi
		case y < 0:
			return -milliHalfPi
		}
		return 0
	}

	absY := abs32(y)
	absX := abs32(x)

	var angle Milli
	if absX >= absY {
		angle = (absY * milliHalfPi) / absX / 2
	} else {
		angle = milliHalfPi - (absX*milliHalfPi)/absY/2
	}

	switch {
	case x > 0 && y >= 0:
		return angle
	case x <= 0 && y > 0:
		return milliPi - angle
	case x < 0 && y <= 0:
		return -milliPi + angle
	default:
		return -angle
	}
}

func abs32(x Milli) Milli {
	if x < 0 {
		return -x
	}
	return x
}
