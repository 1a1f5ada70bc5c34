package numeric

import "math"

// Sentinel values for degenerate inputs on the float32 backends.
const (
	// sentinelExtreme bounds results that would otherwise be infinite
	// (tan at an asymptote, pow overflow).
	sentinelExtreme float32 = 1e6

	// lnSentinel is returned for the logarithm of a non-positive value.
	lnSentinel float32 = -sentinelExtreme

	degPerRad float32 = 180.0 / math.Pi
	radPerDeg float32 = math.Pi / 180.0
)

// saturate maps NaN to zero and infinities to the sentinel extremes so a
// degenerate result never escapes into geometry code.
func saturate(v float32) float32 {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return sentinelExtreme
	case math.IsInf(f, -1):
		return -sentinelExtreme
	}
	return v
}

// FloatBackend computes on native float32 through the standard math library.
// It is the highest-precedence backend, selected by the fpmath build tag for
// targets with hardware (or fast soft) floating point.
type FloatBackend struct{}

var _ Backend[float32] = FloatBackend{}

func (FloatBackend) Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

func (FloatBackend) Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func (FloatBackend) Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func (FloatBackend) Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func (FloatBackend) Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

func (FloatBackend) Ceil(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

func (FloatBackend) Pow(x, y float32) float32 {
	return saturate(float32(math.Pow(float64(x), float64(y))))
}

func (FloatBackend) Ln(x float32) float32 {
	if x <= 0 {
		return lnSentinel
	}
	return float32(math.Log(float64(x)))
}

func (FloatBackend) Log10(x float32) float32 {
	if x <= 0 {
		return lnSentinel
	}
	return float32(math.Log10(float64(x)))
}

func (FloatBackend) Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func (FloatBackend) Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func (FloatBackend) Tan(x float32) float32 {
	t := float32(math.Tan(float64(x)))
	switch {
	case t > sentinelExtreme:
		return sentinelExtreme
	case t < -sentinelExtreme:
		return -sentinelExtreme
	}
	return saturate(t)
}

func (FloatBackend) ToRadians(degrees float32) float32 {
	return degrees * radPerDeg
}

func (FloatBackend) ToDegrees(radians float32) float32 {
	return radians * degPerRad
}

func (FloatBackend) Atan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	return float32(math.Atan2(float64(y), float64(x)))
}
