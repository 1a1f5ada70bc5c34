package interp

import (
	"fmt"

	"github.com/tphakala/go-microchart/data"
)

// SmoothPoint blends the point at index toward the average of its two
// neighbors: curr·(1−factor) + (prev+next)/2·factor, with factor clamped
// to [0, 1]. The first and last points, and any point of a series shorter
// than three, are returned unchanged so smoothing never moves the curve
// endpoints. An index outside the input fails with ErrIndexOutOfRange.
func SmoothPoint(points []data.Point, index int, factor float32) (data.Point, error) {
	if index < 0 || index >= len(points) {
		return data.Point{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(points))
	}

	n := len(points)
	if n < 3 || index == 0 || index == n-1 {
		return points[index], nil
	}

	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}

	prev := points[index-1]
	curr := points[index]
	next := points[index+1]

	return data.Point{
		X: curr.X*(1-factor) + (prev.X+next.X)*0.5*factor,
		Y: curr.Y*(1-factor) + (prev.Y+next.Y)*0.5*factor,
	}, nil
}

// SmoothSeries applies SmoothPoint across the whole sequence for the given
// number of passes, each pass reading the previous pass's output. The
// result has the same length as the input; inputs longer than
// [MaxSeriesPoints] fail with ErrMemoryFull.
func SmoothSeries(points []data.Point, factor float32, iterations uint32) ([]data.Point, error) {
	if len(points) > MaxSeriesPoints {
		return nil, fmt.Errorf("%w: %d points exceed smoothing capacity %d",
			ErrMemoryFull, len(points), MaxSeriesPoints)
	}

	working := make([]data.Point, len(points))
	copy(working, points)

	for pass := uint32(0); pass < iterations; pass++ {
		smoothed := make([]data.Point, len(working))
		for i := range working {
			p, err := SmoothPoint(working, i, factor)
			if err != nil {
				return nil, err
			}
			smoothed[i] = p
		}
		working = smoothed
	}
	return working, nil
}
