package numeric

import "math"

// The facade below forwards every operation to the backend bound at build
// time. Because active is a concrete zero-sized value, each call is direct
// static dispatch with no interface indirection.

// Sqrt returns the square root of x.
func Sqrt(x Number) Number { return active.Sqrt(x) }

// Abs returns the absolute value of x.
func Abs(x Number) Number { return active.Abs(x) }

// Min returns the smaller of a and b.
func Min(a, b Number) Number { return active.Min(a, b) }

// Max returns the larger of a and b.
func Max(a, b Number) Number { return active.Max(a, b) }

// Floor rounds x down to the nearest integral value.
func Floor(x Number) Number { return active.Floor(x) }

// Ceil rounds x up to the nearest integral value.
func Ceil(x Number) Number { return active.Ceil(x) }

// Pow raises x to the power y.
func Pow(x, y Number) Number { return active.Pow(x, y) }

// Ln returns the natural logarithm of x.
func Ln(x Number) Number { return active.Ln(x) }

// Log10 returns the base-10 logarithm of x.
func Log10(x Number) Number { return active.Log10(x) }

// Sin returns the sine of x (radians).
func Sin(x Number) Number { return active.Sin(x) }

// Cos returns the cosine of x (radians).
func Cos(x Number) Number { return active.Cos(x) }

// Tan returns the tangent of x.
func Tan(x Number) Number { return active.Tan(x) }

// ToRadians converts degrees to radians.
func ToRadians(degrees Number) Number { return active.ToRadians(degrees) }

// ToDegrees converts radians to degrees.
func ToDegrees(radians Number) Number { return active.ToDegrees(radians) }

// Atan2 returns the quadrant-correct arc tangent of y/x.
func Atan2(y, x Number) Number { return active.Atan2(y, x) }

// clampInt32 narrows a float32 to int32, saturating out-of-range values so
// the conversion is defined for every input.
func clampInt32(v float32) int32 {
	switch {
	case float64(v) > math.MaxInt32:
		return math.MaxInt32
	case float64(v) < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
