//go:build !fpmath && !libmmath && !fixedmath && !cordicmath && !intmath

package numeric

// Number is the build-selected numeric representation. With no math
// capability tag set it is a float32 served by [FallbackBackend], the
// dependency-free tier that always builds.
type Number = float32

var active FallbackBackend

// ToNumber converts a float32 domain value to the active representation.
func ToNumber(v float32) Number { return v }

// FromNumber converts a Number back to float32.
func FromNumber(n Number) float32 { return n }

// IntToNumber converts an int32 domain value to the active representation.
func IntToNumber(v int32) Number { return float32(v) }

// NumberToInt converts a Number back to int32, truncating toward zero.
func NumberToInt(n Number) int32 { return clampInt32(n) }
