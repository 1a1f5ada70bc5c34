package numeric

import "github.com/chewxy/math32"

// LibmBackend computes on native float32 through the math32 library, a
// float32-native port of the C math library. It avoids the widen-to-float64
// round trips of [FloatBackend], which matters on 32-bit soft-float targets.
// Selected by the libmmath build tag.
type LibmBackend struct{}

var _ Backend[float32] = LibmBackend{}

func (LibmBackend) Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return math32.Sqrt(x)
}

func (LibmBackend) Abs(x float32) float32 {
	return math32.Abs(x)
}

func (LibmBackend) Min(a, b float32) float32 {
	return math32.Min(a, b)
}

func (LibmBackend) Max(a, b float32) float32 {
	return math32.Max(a, b)
}

func (LibmBackend) Floor(x float32) float32 {
	return math32.Floor(x)
}

func (LibmBackend) Ceil(x float32) float32 {
	return math32.Ceil(x)
}

func (LibmBackend) Pow(x, y float32) float32 {
	return saturate(math32.Pow(x, y))
}

func (LibmBackend) Ln(x float32) float32 {
	if x <= 0 {
		return lnSentinel
	}
	return math32.Log(x)
}

func (LibmBackend) Log10(x float32) float32 {
	if x <= 0 {
		return lnSentinel
	}
	return math32.Log10(x)
}

func (LibmBackend) Sin(x float32) float32 {
	return math32.Sin(x)
}

func (LibmBackend) Cos(x float32) float32 {
	return math32.Cos(x)
}

func (LibmBackend) Tan(x float32) float32 {
	t := math32.Tan(x)
	switch {
	case t > sentinelExtreme:
		return sentinelExtreme
	case t < -sentinelExtreme:
		return -sentinelExtreme
	}
	return saturate(t)
}

func (LibmBackend) ToRadians(degrees float32) float32 {
	return degrees * radPerDeg
}

func (LibmBackend) ToDegrees(radians float32) float32 {
	return radians * degPerRad
}

func (LibmBackend) Atan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	return math32.Atan2(y, x)
}
