package data

import (
	"fmt"

	"github.com/tphakala/go-microchart/numeric"
)

// Point is a 2D data point with float32 coordinates. It is the uniform
// input and output type of the interpolation engine and all chart types,
// regardless of which numeric backend is compiled in.
type Point struct {
	X float32
	Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance to q, computed through the
// active numeric backend.
func (p Point) Distance(q Point) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return numeric.FromNumber(numeric.Sqrt(numeric.ToNumber(dx*dx + dy*dy)))
}

// Lerp returns the point linearly interpolated between p and q at t,
// where t=0 yields p and t=1 yields q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// String formats the point for test failure output.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IntPoint is a 2D data point with integer coordinates for targets where
// even float32 storage per sample is too expensive.
type IntPoint struct {
	X int32
	Y int32
}

// Float converts the point to float32 coordinates.
func (p IntPoint) Float() Point {
	return Point{X: float32(p.X), Y: float32(p.Y)}
}

// Lerp returns the point linearly interpolated between p and q at t,
// truncated back to integer coordinates.
func (p IntPoint) Lerp(q IntPoint, t float32) IntPoint {
	return IntPoint{
		X: p.X + int32(float32(q.X-p.X)*t),
		Y: p.Y + int32(float32(q.Y-p.Y)*t),
	}
}

// TimestampedPoint is a time-series sample: a value observed at a moment,
// typically seconds since some epoch or a relative time.
type TimestampedPoint struct {
	Timestamp float32
	Value     float32
}

// Point converts the sample to a Point with the timestamp on the X axis.
func (p TimestampedPoint) Point() Point {
	return Point{X: p.Timestamp, Y: p.Value}
}
