// Package numeric provides the compile-time numeric abstraction used by all
// chart geometry: an opaque [Number] representation, a set of interchangeable
// math backends, and a zero-cost facade over the backend selected at build
// time.
//
// # Backend Selection
//
// Exactly one backend is compiled in, chosen by build tags:
//
//	(none)     Fallback    float32, dependency-free approximations
//	fpmath     Float       float32, hardware/soft float via the standard library
//	libmmath   Libm        float32, portable soft-float via github.com/chewxy/math32
//	fixedmath  FixedPoint  Q16.16 fixed point ([Fixed])
//	cordicmath CORDIC      Q16.16 fixed point, shift-add trigonometry
//	intmath    Integer     milli-unit scaled int32 ([Milli])
//
// When several tags are set the highest-precedence backend wins:
// Float > Libm > FixedPoint > CORDIC > Integer > Fallback. The precedence is
// encoded directly in the tag expressions of the number_*.go files, so the
// selection never involves runtime dispatch; every facade call compiles down
// to a direct call on a zero-sized backend value.
//
// All six backend implementations are always compiled and exported, so code
// (and tests) can exercise any backend regardless of the active tags. The
// build tags only decide which backend the [Number] alias and the facade
// functions bind to.
//
// # Saturation Policy
//
// Backend operations are total: every input produces a finite, representable
// result. Degenerate cases (square root of a negative, logarithm of a
// non-positive value, tangent near an asymptote, atan2 at the origin) return
// defined sentinel extremes instead of NaN or Inf, because downstream
// pixel-coordinate arithmetic must never see an undefined value.
//
// # Conversions
//
// [ToNumber] and [FromNumber] convert between float32 domain values and the
// active representation; [IntToNumber] and [NumberToInt] do the same for
// int32. Round-trip error is bounded by the representation: exact for the
// float backends, at most 2⁻¹⁶ for Q16.16, and at most 1e-3 for the
// milli-unit integer backend.
package numeric
