package data

import (
	"fmt"
	"sort"

	"github.com/tphakala/simd/f32"
)

// AggregationStrategy selects how a group of points is reduced to one.
type AggregationStrategy int

const (
	// AggregateMean replaces each group with its centroid.
	AggregateMean AggregationStrategy = iota

	// AggregateMedian replaces each group with the per-coordinate median.
	AggregateMedian

	// AggregateMinMax keeps the point with the largest Y in each group,
	// preserving peaks that a mean would flatten.
	AggregateMinMax

	// AggregateFirst keeps the first point of each group.
	AggregateFirst

	// AggregateLast keeps the last point of each group.
	AggregateLast

	// AggregateMin keeps the point with the smallest Y in each group.
	AggregateMin

	// AggregateMax keeps the point with the largest Y in each group.
	AggregateMax
)

// String returns the strategy name.
func (s AggregationStrategy) String() string {
	switch s {
	case AggregateMean:
		return "mean"
	case AggregateMedian:
		return "median"
	case AggregateMinMax:
		return "minmax"
	case AggregateFirst:
		return "first"
	case AggregateLast:
		return "last"
	case AggregateMin:
		return "min"
	case AggregateMax:
		return "max"
	default:
		return "unknown"
	}
}

// AggregationConfig controls downsampling of a large point set to a
// drawable size.
type AggregationConfig struct {
	// Strategy selects the group reduction.
	Strategy AggregationStrategy

	// TargetPoints is the approximate output size.
	TargetPoints int

	// PreserveEndpoints keeps the exact first and last input points, so a
	// downsampled line still starts and ends where the data does.
	PreserveEndpoints bool

	// MinGroupSize is the smallest group the grouping will form.
	MinGroupSize int
}

// DefaultAggregationConfig returns the standard downsampling setup:
// mean aggregation to 100 points with endpoints preserved.
func DefaultAggregationConfig() AggregationConfig {
	return AggregationConfig{
		Strategy:          AggregateMean,
		TargetPoints:      100,
		PreserveEndpoints: true,
		MinGroupSize:      1,
	}
}

// Validate checks the configuration.
func (c *AggregationConfig) Validate() error {
	if c.TargetPoints < 1 {
		return fmt.Errorf("%w: target points must be at least 1", ErrInvalidBounds)
	}
	if c.MinGroupSize < 1 {
		return fmt.Errorf("%w: min group size must be at least 1", ErrInvalidBounds)
	}
	return nil
}

// Aggregate downsamples points to approximately cfg.TargetPoints by
// reducing consecutive groups with the configured strategy. Inputs already
// at or below the target are returned as a copy.
func Aggregate(points []Point, cfg AggregationConfig) ([]Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return []Point{}, nil
	}
	if len(points) <= cfg.TargetPoints {
		out := make([]Point, len(points))
		copy(out, points)
		return out, nil
	}

	groupSize := (len(points) + cfg.TargetPoints - 1) / cfg.TargetPoints
	if groupSize < cfg.MinGroupSize {
		groupSize = cfg.MinGroupSize
	}

	result := make([]Point, 0, cfg.TargetPoints+2)
	i := 0

	if cfg.PreserveEndpoints {
		result = append(result, points[0])
		i = 1
	}

	for i < len(points) {
		end := i + groupSize
		if end > len(points) {
			end = len(points)
		}
		// Leave the final point for the endpoint pass.
		if cfg.PreserveEndpoints && end == len(points) && i+1 < len(points) {
			end = len(points) - 1
		}
		if i < end {
			result = append(result, aggregateGroup(points[i:end], cfg.Strategy))
		}
		i = end
	}

	if cfg.PreserveEndpoints && len(points) > 1 {
		last := points[len(points)-1]
		if len(result) == 0 || result[len(result)-1].X != last.X {
			result = append(result, last)
		}
	}

	return result, nil
}

func aggregateGroup(group []Point, strategy AggregationStrategy) Point {
	switch strategy {
	case AggregateMean:
		return groupMean(group)
	case AggregateMedian:
		return groupMedian(group)
	case AggregateMinMax, AggregateMax:
		return groupExtreme(group, false)
	case AggregateMin:
		return groupExtreme(group, true)
	case AggregateFirst:
		return group[0]
	case AggregateLast:
		return group[len(group)-1]
	default:
		return groupMean(group)
	}
}

// groupMean computes the centroid with the SIMD sum kernel. This is the
// hot path when streaming charts re-aggregate on every frame.
func groupMean(group []Point) Point {
	xs := make([]float32, len(group))
	ys := make([]float32, len(group))
	for i, p := range group {
		xs[i] = p.X
		ys[i] = p.Y
	}
	inv := 1 / float32(len(group))
	return Point{X: f32.Sum(xs) * inv, Y: f32.Sum(ys) * inv}
}

func groupMedian(group []Point) Point {
	xs := make([]float32, len(group))
	ys := make([]float32, len(group))
	for i, p := range group {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return Point{X: median(xs), Y: median(ys)}
}

func median(values []float32) float32 {
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

func groupExtreme(group []Point, wantMin bool) Point {
	best := group[0]
	for _, p := range group[1:] {
		if wantMin && p.Y < best.Y || !wantMin && p.Y > best.Y {
			best = p
		}
	}
	return best
}
