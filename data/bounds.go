package data

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-microchart/numeric"
)

// Common errors returned by the data containers.
var (
	// ErrBufferFull indicates a bounded container rejected a value because
	// its capacity is exhausted.
	ErrBufferFull = errors.New("data buffer full")

	// ErrInsufficientData indicates an operation needs more points than
	// were provided.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidBounds indicates a min/max pair with min greater than max.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrIndexOutOfRange indicates an index outside the container.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Bounds is the axis-aligned extent of a dataset, used by the axis and
// chart layers to map data coordinates onto pixels.
type Bounds struct {
	MinX float32
	MaxX float32
	MinY float32
	MaxY float32
}

// NewBounds creates bounds, rejecting inverted ranges.
func NewBounds(minX, maxX, minY, maxY float32) (Bounds, error) {
	if minX > maxX || minY > maxY {
		return Bounds{}, fmt.Errorf("%w: min exceeds max", ErrInvalidBounds)
	}
	return Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}, nil
}

// Width returns the extent of the X range.
func (b Bounds) Width() float32 {
	return b.MaxX - b.MinX
}

// Height returns the extent of the Y range.
func (b Bounds) Height() float32 {
	return b.MaxY - b.MinY
}

// Contains reports whether p lies within the bounds, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ExpandToInclude grows the bounds just enough to contain p.
func (b Bounds) ExpandToInclude(p Point) Bounds {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// Merge returns the smallest bounds containing both b and other.
func (b Bounds) Merge(other Bounds) Bounds {
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
	return b
}

// WithPadding returns the bounds expanded on every side by the given
// percentage of the corresponding range.
func (b Bounds) WithPadding(percent float32) Bounds {
	xPad := b.Width() * percent / 100
	yPad := b.Height() * percent / 100
	return Bounds{
		MinX: b.MinX - xPad,
		MaxX: b.MaxX + xPad,
		MinY: b.MinY - yPad,
		MaxY: b.MaxY + yPad,
	}
}

// Nice returns bounds whose ranges are rounded up to "nice" numbers
// (1, 2, 5 times a power of ten), centered on the original data. Axis
// tick generation builds on the same rounding.
func (b Bounds) Nice() Bounds {
	niceW := NiceNumber(b.Width(), false)
	niceH := NiceNumber(b.Height(), false)

	xCenter := (b.MinX + b.MaxX) / 2
	yCenter := (b.MinY + b.MaxY) / 2

	return Bounds{
		MinX: xCenter - niceW/2,
		MaxX: xCenter + niceW/2,
		MinY: yCenter - niceH/2,
		MaxY: yCenter + niceH/2,
	}
}

// NiceNumber rounds value to a graphically pleasant number: 1, 2, 5 or 10
// times the value's power of ten. With round set, thresholds sit between
// the candidates (1.5, 3, 7) so the nearest nice number wins; otherwise the
// smallest nice number not below the value is chosen. The magnitude is
// derived through the numeric facade so the rounding works on every
// backend tier.
func NiceNumber(value float32, round bool) float32 {
	if value == 0 {
		return 0
	}

	abs := numeric.Abs(numeric.ToNumber(value))
	exp := numeric.Floor(numeric.Log10(abs))
	magnitude := numeric.FromNumber(numeric.Pow(numeric.IntToNumber(10), exp))
	f := value / magnitude

	var nice float32
	if round {
		switch {
		case f < 1.5:
			nice = 1
		case f < 3:
			nice = 2
		case f < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case f <= 1:
			nice = 1
		case f <= 2:
			nice = 2
		case f <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * magnitude
}

// CalculateBounds computes the bounds of a point set.
// Returns ErrInsufficientData for an empty set.
func CalculateBounds(points []Point) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, fmt.Errorf("%w: no points", ErrInsufficientData)
	}

	b := Bounds{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		b = b.ExpandToInclude(p)
	}
	return b, nil
}

// CalculateMultiBounds computes the union bounds of several point sets.
// Empty sets are skipped; if every set is empty, ErrInsufficientData is
// returned.
func CalculateMultiBounds(sets ...[]Point) (Bounds, error) {
	var merged Bounds
	found := false
	for _, points := range sets {
		b, err := CalculateBounds(points)
		if err != nil {
			continue
		}
		if !found {
			merged = b
			found = true
			continue
		}
		merged = merged.Merge(b)
	}
	if !found {
		return Bounds{}, fmt.Errorf("%w: all series empty", ErrInsufficientData)
	}
	return merged, nil
}
