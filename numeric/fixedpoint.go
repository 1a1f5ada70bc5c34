package numeric

// Q16.16 constants, each rounded to nearest from the float value.
const (
	fixedPi     Fixed = 205887      // π
	fixedTwoPi  Fixed = 2 * fixedPi // 2π
	fixedHalfPi Fixed = 102944      // π/2
	fixedLn10   Fixed = 150902      // ln(10)
	fixed180    Fixed = 180 << fixedShift

	// fixedTolerance (≈0.001) terminates the Newton iteration and guards
	// the tangent against its asymptotes.
	fixedTolerance Fixed = 66

	// fixedSentinel (±100.0) stands in for unbounded results: the
	// logarithm of a non-positive value and the tangent near a pole.
	fixedSentinel Fixed = 100 << fixedShift
)

// sqrtIterations bounds the Newton-Raphson refinement; eight passes reach
// the Q16.16 resolution from the x/2 starting guess.
const sqrtIterations = 8

// FixedBackend computes on Q16.16 [Fixed] values using integer-only
// arithmetic: Newton-Raphson square roots, short Taylor polynomials for the
// transcendental functions, and quadrant-corrected arc tangents. Selected by
// the fixedmath build tag for targets without an FPU.
type FixedBackend struct{}

var _ Backend[Fixed] = FixedBackend{}

func (FixedBackend) Sqrt(x Fixed) Fixed {
	if x <= 0 {
		return 0
	}

	guess := x / 2
	for i := 0; i < sqrtIterations; i++ {
		next := (guess + x.Div(guess)) / 2
		if (next - guess).Abs() < fixedTolerance {
			break
		}
		guess = next
	}
	return guess
}

func (FixedBackend) Abs(x Fixed) Fixed {
	return x.Abs()
}

func (FixedBackend) Min(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

func (FixedBackend) Max(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}

func (FixedBackend) Floor(x Fixed) Fixed {
	return x.Floor()
}

func (FixedBackend) Ceil(x Fixed) Fixed {
	return x.Ceil()
}

// Pow raises x to the integer part of y by repeated squaring. Negative
// exponents go through the reciprocal.
func (b FixedBackend) Pow(x, y Fixed) Fixed {
	if y == 0 {
		return FixedOne
	}
	if y < 0 {
		return FixedOne.Div(b.Pow(x, -y))
	}

	result := FixedOne
	base := x
	exp := uint32(y.Int())
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Ln approximates the natural logarithm with the four-term Taylor series of
// ln(1+t) around t = x−1. Accuracy degrades away from 1; non-positive
// inputs return the negative sentinel.
func (FixedBackend) Ln(x Fixed) Fixed {
	if x <= 0 {
		return -fixedSentinel
	}

	t := x - FixedOne
	t2 := t.Mul(t)
	t3 := t2.Mul(t)
	t4 := t3.Mul(t)

	return t - t2/2 + t3/3 - t4/4
}

func (b FixedBackend) Log10(x Fixed) Fixed {
	return b.Ln(x).Div(fixedLn10)
}

// Sin reduces the angle to [−π, π] and evaluates the seven-term Taylor
// polynomial x − x³/6 + x⁵/120 − x⁷/5040.
func (FixedBackend) Sin(x Fixed) Fixed {
	angle := x
	for angle > fixedPi {
		angle -= fixedTwoPi
	}
	for angle < -fixedPi {
		angle += fixedTwoPi
	}

	x2 := angle.Mul(angle)
	x3 := x2.Mul(angle)
	x5 := x3.Mul(x2)
	x7 := x5.Mul(x2)

	return angle - x3/6 + x5/120 - x7/5040
}

func (b FixedBackend) Cos(x Fixed) Fixed {
	return b.Sin(x + fixedHalfPi)
}

func (b FixedBackend) Tan(x Fixed) Fixed {
	sin := b.Sin(x)
	cos := b.Cos(x)

	if cos.Abs() < fixedTolerance {
		if sin >= 0 {
			return fixedSentinel
		}
		return -fixedSentinel
	}
	return sin.Div(cos)
}

func (FixedBackend) ToRadians(degrees Fixed) Fixed {
	return degrees.Mul(fixedPi).Div(fixed180)
}

func (FixedBackend) ToDegrees(radians Fixed) Fixed {
	return radians.Mul(fixed180).Div(fixedPi)
}

func (b FixedBackend) Atan2(y, x Fixed) Fixed {
	if x == 0 {
		switch {
		case y > 0:
			return fixedHalfPi
		case y < 0:
			return -fixedHalfPi
		}
		return 0
	}

	atan := b.atan(y.Div(x))
	switch {
	case x > 0:
		return atan
	case y >= 0:
		return atan + fixedPi
	}
	return atan - fixedPi
}

// atan evaluates x − x³/3 + x⁵/5 − x⁷/7 for |x| ≤ 1 and falls back to the
// identity atan(x) = ±π/2 − atan(1/x) otherwise (one level of recursion).
func (b FixedBackend) atan(x Fixed) Fixed {
	if x.Abs() <= FixedOne {
		x2 := x.Mul(x)
		x3 := x2.Mul(x)
		x5 := x3.Mul(x2)
		x7 := x5.Mul(x2)

		return x - x3/3 + x5/5 - x7/7
	}

	inv := FixedOne.Div(x)
	if x > 0 {
		return fixedHalfPi - b.atan(inv)
	}
	return -fixedHalfPi - b.atan(inv)
}
