package numeric

import "strconv"

// Fixed is a signed Q16.16 fixed-point value: 16 integer bits and 16
// fractional bits in an int32. It is the native representation of the
// fixed-point and CORDIC backends, covering ±32767 with a resolution of
// 2⁻¹⁶ ≈ 0.0000153.
//
// Addition and subtraction use the ordinary + and - operators. Products and
// quotients go through [Fixed.Mul] and [Fixed.Div], which widen to int64
// internally and saturate at the representable extremes instead of wrapping.
type Fixed int32

const (
	fixedShift = 16
	fixedFrac  = 1<<fixedShift - 1

	// FixedOne is the Q16.16 representation of 1.0.
	FixedOne Fixed = 1 << fixedShift

	// FixedMax and FixedMin are the saturation bounds.
	FixedMax Fixed = 1<<31 - 1
	FixedMin Fixed = -1 << 31
)

// FixedFromFloat converts a float32 to Q16.16, rounding to nearest.
// Values outside the representable range saturate.
func FixedFromFloat(v float32) Fixed {
	scaled := float64(v) * (1 << fixedShift)
	switch {
	case scaled >= float64(FixedMax):
		return FixedMax
	case scaled <= float64(FixedMin):
		return FixedMin
	case scaled >= 0:
		return Fixed(scaled + 0.5)
	}
	return Fixed(scaled - 0.5)
}

// FixedFromInt converts an int32 to Q16.16, saturating out-of-range values.
func FixedFromInt(v int32) Fixed {
	if v > 1<<15-1 {
		return FixedMax
	}
	if v < -(1 << 15) {
		return FixedMin
	}
	return Fixed(v) << fixedShift
}

// Float returns the value as a float32.
func (x Fixed) Float() float32 {
	return float32(x) / (1 << fixedShift)
}

// Int returns the integer part, truncated toward negative infinity.
func (x Fixed) Int() int32 {
	return int32(x >> fixedShift)
}

// Mul returns the Q16.16 product x·y, saturating on overflow.
func (x Fixed) Mul(y Fixed) Fixed {
	return clampFixed(int64(x) * int64(y) >> fixedShift)
}

// Div returns the Q16.16 quotient x/y. Division by zero saturates to the
// extreme matching the sign of x instead of faulting.
func (x Fixed) Div(y Fixed) Fixed {
	if y == 0 {
		if x < 0 {
			return FixedMin
		}
		return FixedMax
	}
	return clampFixed((int64(x) << fixedShift) / int64(y))
}

// Abs returns the absolute value of x. The most negative value saturates
// to FixedMax.
func (x Fixed) Abs() Fixed {
	if x == FixedMin {
		return FixedMax
	}
	if x < 0 {
		return -x
	}
	return x
}

// Floor returns x rounded down to the nearest whole value.
func (x Fixed) Floor() Fixed {
	return x &^ fixedFrac
}

// Ceil returns x rounded up to the nearest whole value.
func (x Fixed) Ceil() Fixed {
	return (x + fixedFrac) &^ fixedFrac
}

// String formats the value in decimal, mainly for test failure output.
func (x Fixed) String() string {
	return strconv.FormatFloat(float64(x.Float()), 'g', -1, 32)
}

func clampFixed(v int64) Fixed {
	if v > int64(FixedMax) {
		return FixedMax
	}
	if v < int64(FixedMin) {
		return FixedMin
	}
	return Fixed(v)
}
