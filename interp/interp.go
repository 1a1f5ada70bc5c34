// Package interp generates smooth curves from discrete chart points.
//
// The engine subdivides each input segment with one of four algorithms
// (linear, cubic spline, Catmull-Rom, quadratic Bezier) and writes into a
// statically bounded output: at most [MaxInterpolatedPoints] generated
// points per call. Exceeding the bound fails with [ErrMemoryFull] instead
// of truncating, so a caller can react by lowering the subdivision count
// or pre-aggregating its input.
//
// Interpolation works directly on float32 coordinates rather than the
// numeric backend abstraction: chart geometry stays in the domain's native
// float type, while the backend-dependent operations (trigonometry, roots,
// logarithms) live behind the numeric facade.
//
// Every call is pure and retains no state, so concurrent use on disjoint
// slices needs no synchronization, and worst-case work is bounded by
// O(len(points) × subdivisions).
package interp

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-microchart/data"
)

// MaxInterpolatedPoints is the fixed capacity of an interpolation result.
const MaxInterpolatedPoints = 512

// MaxSeriesPoints is the fixed capacity of a smoothing result, matching
// the bounded series size feeding the interpolator.
const MaxSeriesPoints = 256

// Subdivision and tension limits enforced on every Interpolate call.
const (
	MinSubdivisions = 2
	MaxSubdivisions = 32
)

// Errors returned by the interpolation engine.
var (
	// ErrInsufficientData indicates fewer than two input points.
	ErrInsufficientData = errors.New("insufficient data for interpolation")

	// ErrMemoryFull indicates the generated curve would exceed the fixed
	// output capacity.
	ErrMemoryFull = errors.New("interpolation output capacity exceeded")

	// ErrIndexOutOfRange indicates a smoothing index outside the input.
	ErrIndexOutOfRange = errors.New("point index out of range")
)

// Type selects the curve generation algorithm.
type Type uint8

const (
	// Linear draws straight subdivided segments between points.
	Linear Type = iota

	// CubicSpline draws a smooth curve through all points using a
	// Hermite basis with locally estimated second derivatives.
	CubicSpline

	// CatmullRom draws a smooth curve with local control: each segment
	// depends only on its four surrounding points.
	CatmullRom

	// Bezier approximates the data with one quadratic Bezier arc per
	// segment, bulging perpendicular to the chord by the tension.
	Bezier
)

// String returns the algorithm name.
func (t Type) String() string {
	switch t {
	case Linear:
		return "linear"
	case CubicSpline:
		return "cubic-spline"
	case CatmullRom:
		return "catmull-rom"
	case Bezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// Config controls one interpolation call. It is treated as immutable:
// out-of-range values are clamped on entry without modifying the caller's
// copy.
type Config struct {
	// Type selects the curve algorithm.
	Type Type

	// Subdivisions is the number of samples generated per input segment,
	// clamped to [MinSubdivisions, MaxSubdivisions].
	Subdivisions uint32

	// Tension controls how far Bezier arcs bulge from the chord, clamped
	// to [0, 1]. The Catmull-Rom path accepts but does not consult it;
	// that algorithm always uses the uniform basis with its fixed 0.5
	// blend weight.
	Tension float32

	// Closed requests connecting the last point back to the first. The
	// field is carried for chart styles that post-process the output; the
	// generation algorithms themselves always produce open curves.
	Closed bool
}

// DefaultConfig returns the standard curve setup: a cubic spline with
// eight subdivisions per segment.
func DefaultConfig() Config {
	return Config{
		Type:         CubicSpline,
		Subdivisions: 8,
		Tension:      0.5,
		Closed:       false,
	}
}

// clamped returns the config with subdivisions and tension forced into
// their valid ranges.
func (c Config) clamped() Config {
	if c.Subdivisions < MinSubdivisions {
		c.Subdivisions = MinSubdivisions
	}
	if c.Subdivisions > MaxSubdivisions {
		c.Subdivisions = MaxSubdivisions
	}
	if c.Tension < 0 {
		c.Tension = 0
	}
	if c.Tension > 1 {
		c.Tension = 1
	}
	return c
}

// buffer is a bounded output sequence in the style of the series
// containers: appending past the capacity fails instead of growing.
type buffer struct {
	points []data.Point
	limit  int
}

func newBuffer(limit int) *buffer {
	return &buffer{points: make([]data.Point, 0, limit), limit: limit}
}

func (b *buffer) push(p data.Point) error {
	if len(b.points) >= b.limit {
		return fmt.Errorf("%w: capacity %d", ErrMemoryFull, b.limit)
	}
	b.points = append(b.points, p)
	return nil
}

// Interpolate generates a smooth curve through points using the
// configured algorithm.
//
// Fewer than two points fail with ErrInsufficientData. The spline
// algorithms need at least three points and silently fall back to Linear
// below that, so two-point inputs always produce an evenly subdivided
// straight segment. For every algorithm the output starts and ends with
// the exact input endpoints.
func Interpolate(points []data.Point, cfg Config) ([]data.Point, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: have %d points, need 2", ErrInsufficientData, len(points))
	}

	cfg = cfg.clamped()
	out := newBuffer(MaxInterpolatedPoints)

	var err error
	switch cfg.Type {
	case Linear:
		err = linearInto(out, points, cfg)
	case CubicSpline:
		err = cubicSplineInto(out, points, cfg)
	case CatmullRom:
		err = catmullRomInto(out, points, cfg)
	case Bezier:
		err = bezierInto(out, points, cfg)
	default:
		err = linearInto(out, points, cfg)
	}
	if err != nil {
		return nil, err
	}
	return out.points, nil
}

// linearInto subdivides each segment with a parametric lerp: the segment
// start plus subdivisions−1 interior samples, with the final input point
// appended once at the end. Output length = (n−1)·(subdivisions−1) + n.
func linearInto(out *buffer, points []data.Point, cfg Config) error {
	for i := 0; i < len(points)-1; i++ {
		p0 := points[i]
		p1 := points[i+1]

		if err := out.push(p0); err != nil {
			return err
		}
		for j := uint32(1); j < cfg.Subdivisions; j++ {
			t := float32(j) / float32(cfg.Subdivisions)
			if err := out.push(p0.Lerp(p1, t)); err != nil {
				return err
			}
		}
	}
	return out.push(points[len(points)-1])
}

// cubicSplineInto renders each segment with the cubic Hermite basis.
//
// Interior second derivatives are estimated from divided differences over
// the (possibly non-uniform) spacing: d_i = 2·(Δ2−Δ1)/(h1+h2), with the
// endpoint derivatives held at zero. This is deliberately not a full
// tridiagonal natural-spline solve; the local estimate is cheaper and
// matches the curve shape chart callers already rely on.
func cubicSplineInto(out *buffer, points []data.Point, cfg Config) error {
	n := len(points)
	if n < 3 {
		return linearInto(out, points, cfg)
	}

	derivatives := make([]float32, n)
	for i := 1; i < n-1; i++ {
		h1 := points[i].X - points[i-1].X
		h2 := points[i+1].X - points[i].X
		delta1 := (points[i].Y - points[i-1].Y) / h1
		delta2 := (points[i+1].Y - points[i].Y) / h2
		derivatives[i] = 2 * (delta2 - delta1) / (h1 + h2)
	}

	for i := 0; i < n-1; i++ {
		p0 := points[i]
		p1 := points[i+1]
		d0 := derivatives[i]
		d1 := derivatives[i+1]

		if err := out.push(p0); err != nil {
			return err
		}

		h := p1.X - p0.X
		for j := uint32(1); j < cfg.Subdivisions; j++ {
			t := float32(j) / float32(cfg.Subdivisions)
			t2 := t * t
			t3 := t2 * t

			h00 := 2*t3 - 3*t2 + 1
			h10 := t3 - 2*t2 + t
			h01 := -2*t3 + 3*t2
			h11 := t3 - t2

			p := data.Point{
				X: p0.X + t*h,
				Y: h00*p0.Y + h10*h*d0 + h01*p1.Y + h11*h*d1,
			}
			if err := out.push(p); err != nil {
				return err
			}
		}
	}
	return out.push(points[n-1])
}

// catmullRomInto renders each segment from its four surrounding control
// points with the canonical uniform Catmull-Rom basis (fixed 0.5 blend
// weight). The first and last segments duplicate the boundary point as
// their missing outer control.
func catmullRomInto(out *buffer, points []data.Point, cfg Config) error {
	n := len(points)
	if n < 3 {
		return linearInto(out, points, cfg)
	}

	for i := 0; i < n-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, n-1)]

		if err := out.push(p1); err != nil {
			return err
		}

		for j := uint32(1); j < cfg.Subdivisions; j++ {
			t := float32(j) / float32(cfg.Subdivisions)
			t2 := t * t
			t3 := t2 * t

			p := data.Point{
				X: 0.5 * (2*p1.X +
					(-p0.X+p2.X)*t +
					(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 +
					(-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
				Y: 0.5 * (2*p1.Y +
					(-p0.Y+p2.Y)*t +
					(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
					(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
			}
			if err := out.push(p); err != nil {
				return err
			}
		}
	}
	return out.push(points[n-1])
}

// bezierInto renders one quadratic Bezier arc per segment. The control
// point sits at the segment midpoint, offset perpendicular to the chord
// by tension·0.2 of the chord's extent, so tension 0 degenerates to a
// straight segment. This is a per-segment approximation, not one global
// Bezier curve through all points.
func bezierInto(out *buffer, points []data.Point, cfg Config) error {
	n := len(points)
	if n < 3 {
		return linearInto(out, points, cfg)
	}

	for i := 0; i < n-1; i++ {
		p0 := points[i]
		p2 := points[i+1]

		ctrl := data.Point{
			X: (p0.X+p2.X)*0.5 + (p2.Y-p0.Y)*cfg.Tension*0.2,
			Y: (p0.Y+p2.Y)*0.5 + (p0.X-p2.X)*cfg.Tension*0.2,
		}

		if err := out.push(p0); err != nil {
			return err
		}

		for j := uint32(1); j < cfg.Subdivisions; j++ {
			t := float32(j) / float32(cfg.Subdivisions)
			u := 1 - t

			p := data.Point{
				X: u*u*p0.X + 2*u*t*ctrl.X + t*t*p2.X,
				Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p2.Y,
			}
			if err := out.push(p); err != nil {
				return err
			}
		}
	}
	return out.push(points[n-1])
}
