package numeric

// Backend is the operation contract every math backend implements.
// Implementations are stateless zero-sized values; all methods are pure,
// reentrant and total (see the package saturation policy). The type
// parameter is the backend's native representation: float32 for the
// floating-point tiers, [Fixed] for Q16.16, [Milli] for the integer tier.
type Backend[T any] interface {
	// Sqrt returns the square root of x. Negative inputs return zero.
	Sqrt(x T) T

	// Abs returns the absolute value of x.
	Abs(x T) T

	// Min returns the smaller of a and b.
	Min(a, b T) T

	// Max returns the larger of a and b.
	Max(a, b T) T

	// Floor rounds x down to the nearest integral value.
	Floor(x T) T

	// Ceil rounds x up to the nearest integral value.
	Ceil(x T) T

	// Pow raises x to the power y. Fractional exponents are supported only
	// by the floating-point tiers; the others truncate the exponent.
	Pow(x, y T) T

	// Ln returns the natural logarithm of x. Non-positive inputs return
	// the backend's negative sentinel.
	Ln(x T) T

	// Log10 returns the base-10 logarithm of x.
	Log10(x T) T

	// Sin returns the sine of x (x in radians).
	Sin(x T) T

	// Cos returns the cosine of x (x in radians).
	Cos(x T) T

	// Tan returns the tangent of x, clamped to a finite extreme near the
	// asymptotes.
	Tan(x T) T

	// ToRadians converts degrees to radians.
	ToRadians(degrees T) T

	// ToDegrees converts radians to degrees.
	ToDegrees(radians T) T

	// Atan2 returns the quadrant-correct arc tangent of y/x.
	// Both arguments zero returns zero.
	Atan2(y, x T) T
}
