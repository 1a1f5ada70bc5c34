// Package anim provides the progress-based animation primitives used for
// chart transitions: easing curves over a 0-100 progress value and a
// stateless animator that interpolates between two states on demand.
//
// The package holds no clocks or timers. The caller owns time: it maps
// elapsed time to a [Progress] however it likes (frame ticks, input
// events, a hardware timer) and asks the animator for the value at that
// progress. That keeps the package free of goroutines and usable under
// the same bounded-work model as the rest of the library.
package anim

// Progress is an animation position from 0 (start) to 100 (end).
// Values above 100 are treated as 100.
type Progress uint8

// ProgressComplete is the final progress value.
const ProgressComplete Progress = 100

// Easing shapes the progress curve of an animation.
type Easing uint8

const (
	// EaseLinear advances at constant speed.
	EaseLinear Easing = iota

	// EaseIn starts slow and accelerates: t².
	EaseIn

	// EaseOut starts fast and decelerates: 1−(1−t)².
	EaseOut

	// EaseInOut accelerates through the first half and decelerates
	// through the second.
	EaseInOut
)

// String returns the easing name.
func (e Easing) String() string {
	switch e {
	case EaseLinear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	default:
		return "unknown"
	}
}

// Apply maps a linear progress t in [0, 1] through the easing curve.
// Out-of-range inputs are clamped.
func (e Easing) Apply(t float32) float32 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	switch e {
	case EaseIn:
		return t * t
	case EaseOut:
		return 1 - (1-t)*(1-t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	default:
		return t
	}
}

// LerpFunc interpolates between two values of T at t in [0, 1].
// [data.Point.Lerp] and [style.Color.Lerp] satisfy it directly via method
// values; LerpFloat32 covers plain numbers.
type LerpFunc[T any] func(from, to T, t float32) T

// LerpFloat32 linearly interpolates between two float32 values.
func LerpFloat32(from, to, t float32) float32 {
	return from + (to-from)*t
}

// Animator interpolates between a from-state and a to-state under an
// easing curve. It is stateless with respect to time: ValueAt can be
// called with any progress, in any order, from any goroutine.
type Animator[T any] struct {
	from   T
	to     T
	easing Easing
	lerp   LerpFunc[T]
}

// NewAnimator creates an animator over the given states.
func NewAnimator[T any](from, to T, easing Easing, lerp LerpFunc[T]) *Animator[T] {
	return &Animator[T]{from: from, to: to, easing: easing, lerp: lerp}
}

// ValueAt returns the interpolated value at the given progress.
func (a *Animator[T]) ValueAt(p Progress) T {
	if p > ProgressComplete {
		p = ProgressComplete
	}
	t := a.easing.Apply(float32(p) / float32(ProgressComplete))
	return a.lerp(a.from, a.to, t)
}

// SetTarget starts a new leg: the current to-state becomes the from-state
// and the argument becomes the new target.
func (a *Animator[T]) SetTarget(to T) {
	a.from = a.to
	a.to = to
}

// SetStates replaces both endpoints.
func (a *Animator[T]) SetStates(from, to T) {
	a.from = from
	a.to = to
}

// From returns the start state.
func (a *Animator[T]) From() T { return a.from }

// To returns the target state.
func (a *Animator[T]) To() T { return a.to }
