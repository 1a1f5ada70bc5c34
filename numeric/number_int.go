//go:build intmath && !fpmath && !libmmath && !fixedmath && !cordicmath

package numeric

// Number is the build-selected numeric representation. The intmath tag
// binds it to [Milli], the ×1000-scaled int32 tier. Conversions carry three
// decimal digits; callers must not assume exactness.
type Number = Milli

var active IntegerBackend

// ToNumber converts a float32 domain value to the active representation,
// keeping three decimal digits.
func ToNumber(v float32) Number { return MilliFromFloat(v) }

// FromNumber converts a Number back to float32.
func FromNumber(n Number) float32 { return n.Float() }

// IntToNumber converts an int32 domain value to the active representation.
func IntToNumber(v int32) Number { return MilliFromInt(v) }

// NumberToInt converts a Number back to int32.
func NumberToInt(n Number) int32 { return n.Int() }
