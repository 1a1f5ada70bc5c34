package numeric

import "math"

// FallbackBackend is the build-anywhere tier: float32 storage with crude,
// dependency-free approximations. It exists so the library always compiles
// even when no math capability is configured; geometry that leans on
// trigonometry degrades visibly but never faults. Selected when no backend
// build tag is set.
type FallbackBackend struct{}

var _ Backend[float32] = FallbackBackend{}

// Sqrt uses the bit-trick reciprocal square root (the 0x5f3759df constant)
// with a single Newton refinement, then multiplies back by x. Accurate to
// roughly 0.2%.
func (FallbackBackend) Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}

	i := math.Float32bits(x)
	i = 0x5f3759df - i>>1
	inv := math.Float32frombits(i)
	inv *= 1.5 - 0.5*x*inv*inv
	return x * inv
}

func (FallbackBackend) Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func (FallbackBackend) Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func (FallbackBackend) Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Floor truncates through int32, so it rounds toward zero rather than
// negative infinity for negative inputs.
func (FallbackBackend) Floor(x float32) float32 {
	return float32(int32(x))
}

func (FallbackBackend) Ceil(x float32) float32 {
	intPart := int32(x)
	if x > float32(intPart) {
		return float32(intPart + 1)
	}
	return float32(intPart)
}

// Pow handles the exponents chart code actually uses (0, 1 and 2) and
// returns x unchanged for anything else.
func (FallbackBackend) Pow(x, y float32) float32 {
	switch y {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	}
	return x
}

// Ln is a stub; callers on this tier get no logarithmic scaling.
func (FallbackBackend) Ln(_ float32) float32 {
	return 0
}

// Log10 is a stub like Ln.
func (FallbackBackend) Log10(_ float32) float32 {
	return 0
}

// Sin is a stub; angles collapse to zero on this tier.
func (FallbackBackend) Sin(_ float32) float32 {
	return 0
}

// Cos is a stub returning one, consistent with Sin.
func (FallbackBackend) Cos(_ float32) float32 {
	return 1
}

// Tan is a stub, consistent with Sin and Cos.
func (FallbackBackend) Tan(_ float32) float32 {
	return 0
}

func (FallbackBackend) ToRadians(degrees float32) float32 {
	return degrees * 0.017453292
}

func (FallbackBackend) ToDegrees(radians float32) float32 {
	return radians * 57.29578
}

// Atan2 is a stub returning zero for every quadrant.
func (FallbackBackend) Atan2(_, _ float32) float32 {
	return 0
}
