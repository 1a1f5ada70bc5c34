package data

import (
	"fmt"
	"sync"

	"github.com/tphakala/simd/f32"
	"gonum.org/v1/gonum/stat"
)

// RingBuffer is a fixed-capacity sliding window over streaming points.
// When full, pushing overwrites the oldest point, so the buffer always
// holds the most recent capacity samples. It is safe for concurrent use:
// a producer goroutine can push while a render goroutine snapshots.
type RingBuffer struct {
	mu       sync.Mutex
	points   []Point
	head     int // index of the oldest point
	size     int
	capacity int
}

// NewRingBuffer creates a ring buffer holding up to capacity points.
// Capacities below 1 are raised to 1.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer{
		points:   make([]Point, capacity),
		capacity: capacity,
	}
}

// Push appends a point, overwriting the oldest when full.
func (r *RingBuffer) Push(p Point) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tail := (r.head + r.size) % r.capacity
	r.points[tail] = p
	if r.size == r.capacity {
		r.head = (r.head + 1) % r.capacity
	} else {
		r.size++
	}
}

// Pop removes and returns the oldest point. The second return value is
// false when the buffer is empty.
func (r *RingBuffer) Pop() (Point, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size == 0 {
		return Point{}, false
	}
	p := r.points[r.head]
	r.head = (r.head + 1) % r.capacity
	r.size--
	return p, true
}

// PeekOldest returns the oldest point without removing it.
func (r *RingBuffer) PeekOldest() (Point, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size == 0 {
		return Point{}, false
	}
	return r.points[r.head], true
}

// PeekNewest returns the most recently pushed point without removing it.
func (r *RingBuffer) PeekNewest() (Point, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size == 0 {
		return Point{}, false
	}
	return r.points[(r.head+r.size-1)%r.capacity], true
}

// Len returns the number of stored points.
func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Capacity returns the fixed capacity.
func (r *RingBuffer) Capacity() int {
	return r.capacity
}

// IsFull reports whether the window has wrapped at least once.
func (r *RingBuffer) IsFull() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size == r.capacity
}

// Clear discards all points.
func (r *RingBuffer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.size = 0
}

// Chronological returns a copy of the stored points in push order, oldest
// first. The copy is safe to hand to a renderer while pushes continue.
func (r *RingBuffer) Chronological() []Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Recent returns a copy of the newest n points in push order. When fewer
// than n points are stored, all of them are returned.
func (r *RingBuffer) Recent(n int) []Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > r.size {
		n = r.size
	}
	if n <= 0 {
		return []Point{}
	}
	out := make([]Point, n)
	start := r.head + r.size - n
	for i := 0; i < n; i++ {
		out[i] = r.points[(start+i)%r.capacity]
	}
	return out
}

// Bounds returns the extent of the stored points.
func (r *RingBuffer) Bounds() (Bounds, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return CalculateBounds(r.snapshot())
}

// SeriesStats summarizes the Y values of a buffered window.
type SeriesStats struct {
	Min    float32
	Max    float32
	Mean   float32
	StdDev float32
}

// Stats computes min/max/mean/standard deviation over the stored Y values.
// The sum runs through the SIMD kernel; the deviation is delegated to
// gonum. Returns ErrInsufficientData on an empty buffer.
func (r *RingBuffer) Stats() (SeriesStats, error) {
	r.mu.Lock()
	points := r.snapshot()
	r.mu.Unlock()

	if len(points) == 0 {
		return SeriesStats{}, fmt.Errorf("%w: empty buffer", ErrInsufficientData)
	}

	ys := make([]float32, len(points))
	wide := make([]float64, len(points))
	minY, maxY := points[0].Y, points[0].Y
	for i, p := range points {
		ys[i] = p.Y
		wide[i] = float64(p.Y)
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	mean := f32.Sum(ys) / float32(len(ys))
	return SeriesStats{
		Min:    minY,
		Max:    maxY,
		Mean:   mean,
		StdDev: float32(stat.StdDev(wide, nil)),
	}, nil
}

// MovingAverage returns the windowed mean of the Y values in push order.
// The result has size−window+1 entries; a window larger than the stored
// size yields a single all-points mean. Windows below 1 are raised to 1.
func (r *RingBuffer) MovingAverage(window int) []float32 {
	r.mu.Lock()
	points := r.snapshot()
	r.mu.Unlock()

	if len(points) == 0 {
		return []float32{}
	}
	if window < 1 {
		window = 1
	}
	if window > len(points) {
		window = len(points)
	}

	ys := make([]float32, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}

	out := make([]float32, len(ys)-window+1)
	inv := 1 / float32(window)
	for i := range out {
		out[i] = f32.Sum(ys[i:i+window]) * inv
	}
	return out
}

// Downsample reduces the buffered window to approximately target points
// using min/max aggregation, so a decimated streaming view keeps its
// peaks. Min/max emits up to two points per group, so the result may
// run up to twice the target.
func (r *RingBuffer) Downsample(target int) ([]Point, error) {
	r.mu.Lock()
	points := r.snapshot()
	r.mu.Unlock()

	return Aggregate(points, AggregationConfig{
		Strategy:          AggregateMinMax,
		TargetPoints:      target,
		PreserveEndpoints: true,
		MinGroupSize:      1,
	})
}

// snapshot copies the points in chronological order. Callers must hold mu.
func (r *RingBuffer) snapshot() []Point {
	out := make([]Point, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.points[(r.head+i)%r.capacity]
	}
	return out
}
