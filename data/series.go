package data

import (
	"fmt"
	"sort"
)

// DefaultSeriesCapacity is the default bounded capacity of a Series. It
// matches the maximum input size accepted by the interpolation engine.
const DefaultSeriesCapacity = 256

// Series is an ordered, capacity-bounded collection of points with an
// optional label. The backing array is allocated once at construction;
// pushing past the capacity fails with [ErrBufferFull] rather than
// growing, keeping memory statically analyzable.
type Series struct {
	label  string
	points []Point
}

// NewSeries creates an empty series with [DefaultSeriesCapacity].
func NewSeries(label string) *Series {
	return NewSeriesWithCapacity(label, DefaultSeriesCapacity)
}

// NewSeriesWithCapacity creates an empty series with a fixed capacity.
// Capacities below 1 are raised to 1.
func NewSeriesWithCapacity(label string, capacity int) *Series {
	if capacity < 1 {
		capacity = 1
	}
	return &Series{
		label:  label,
		points: make([]Point, 0, capacity),
	}
}

// SeriesFromValues creates a series from Y values with X set to the value
// index. Fails if the values exceed the default capacity.
func SeriesFromValues(label string, values ...float32) (*Series, error) {
	capacity := DefaultSeriesCapacity
	if len(values) > capacity {
		return nil, fmt.Errorf("%w: %d values exceed capacity %d", ErrBufferFull, len(values), capacity)
	}
	s := NewSeriesWithCapacity(label, capacity)
	for i, v := range values {
		s.points = append(s.points, Point{X: float32(i), Y: v})
	}
	return s, nil
}

// SeriesFromTuples creates a series from (x, y) pairs. Fails if the
// tuples exceed the default capacity.
func SeriesFromTuples(label string, tuples ...[2]float32) (*Series, error) {
	capacity := DefaultSeriesCapacity
	if len(tuples) > capacity {
		return nil, fmt.Errorf("%w: %d tuples exceed capacity %d", ErrBufferFull, len(tuples), capacity)
	}
	s := NewSeriesWithCapacity(label, capacity)
	for _, t := range tuples {
		s.points = append(s.points, Point{X: t[0], Y: t[1]})
	}
	return s, nil
}

// Label returns the series label.
func (s *Series) Label() string {
	return s.label
}

// Push appends a point, failing with ErrBufferFull at capacity.
func (s *Series) Push(p Point) error {
	if len(s.points) == cap(s.points) {
		return fmt.Errorf("%w: series %q at capacity %d", ErrBufferFull, s.label, cap(s.points))
	}
	s.points = append(s.points, p)
	return nil
}

// Extend appends all given points. On overflow nothing past the capacity
// is stored and ErrBufferFull is returned.
func (s *Series) Extend(points []Point) error {
	for _, p := range points {
		if err := s.Push(p); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the point at index i.
func (s *Series) Get(i int) (Point, error) {
	if i < 0 || i >= len(s.points) {
		return Point{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s.points))
	}
	return s.points[i], nil
}

// Len returns the number of stored points.
func (s *Series) Len() int {
	return len(s.points)
}

// Capacity returns the fixed capacity.
func (s *Series) Capacity() int {
	return cap(s.points)
}

// IsFull reports whether the series is at capacity.
func (s *Series) IsFull() bool {
	return len(s.points) == cap(s.points)
}

// Clear removes all points, keeping the backing array.
func (s *Series) Clear() {
	s.points = s.points[:0]
}

// Points returns a view of the stored points. The slice aliases the
// series storage; callers must not retain it across mutations.
func (s *Series) Points() []Point {
	return s.points
}

// XValues returns a copy of the X coordinates.
func (s *Series) XValues() []float32 {
	xs := make([]float32, len(s.points))
	for i, p := range s.points {
		xs[i] = p.X
	}
	return xs
}

// YValues returns a copy of the Y coordinates.
func (s *Series) YValues() []float32 {
	ys := make([]float32, len(s.points))
	for i, p := range s.points {
		ys[i] = p.Y
	}
	return ys
}

// SortByX sorts the points by ascending X coordinate. Line-style charts
// expect their input ordered along the X axis.
func (s *Series) SortByX() {
	sort.Slice(s.points, func(i, j int) bool {
		return s.points[i].X < s.points[j].X
	})
}

// Bounds returns the extent of the stored points.
func (s *Series) Bounds() (Bounds, error) {
	return CalculateBounds(s.points)
}
