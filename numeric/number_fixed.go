//go:build fixedmath && !fpmath && !libmmath

package numeric

// Number is the build-selected numeric representation. The fixedmath tag
// binds it to Q16.16 [Fixed] served by [FixedBackend], yielding to the
// floating-point tiers.
type Number = Fixed

var active FixedBackend

// ToNumber converts a float32 domain value to the active representation.
// Exact up to the 2⁻¹⁶ resolution.
func ToNumber(v float32) Number { return FixedFromFloat(v) }

// FromNumber converts a Number back to float32.
func FromNumber(n Number) float32 { return n.Float() }

// IntToNumber converts an int32 domain value to the active representation.
func IntToNumber(v int32) Number { return FixedFromInt(v) }

// NumberToInt converts a Number back to int32.
func NumberToInt(n Number) int32 { return n.Int() }
