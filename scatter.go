package microchart

import (
	"fmt"

	"github.com/tphakala/go-microchart/data"
	"github.com/tphakala/go-microchart/numeric"
	"github.com/tphakala/go-microchart/render"
	"github.com/tphakala/go-microchart/style"
)

// SizeScaling maps a point's value onto its marker size.
type SizeScaling int

const (
	// ScaleLinear sizes markers proportionally to the value.
	ScaleLinear SizeScaling = iota

	// ScaleSquareRoot sizes markers by the square root of the value, so
	// marker area tracks the value.
	ScaleSquareRoot

	// ScaleLogarithmic compresses wide value ranges logarithmically.
	ScaleLogarithmic
)

// String returns the scaling name.
func (s SizeScaling) String() string {
	switch s {
	case ScaleLinear:
		return "linear"
	case ScaleSquareRoot:
		return "sqrt"
	case ScaleLogarithmic:
		return "log"
	default:
		return "unknown"
	}
}

// ScatterStyle controls scatter chart appearance.
type ScatterStyle struct {
	// Color overrides the theme's primary color when set.
	Color style.Color

	// MinSize and MaxSize bound the marker radius in pixels.
	MinSize int
	MaxSize int

	// Scaling maps the Y value onto the marker size within
	// [MinSize, MaxSize]. With MinSize == MaxSize all markers are equal.
	Scaling SizeScaling
}

// DefaultScatterStyle returns uniform 3-pixel markers.
func DefaultScatterStyle() ScatterStyle {
	return ScatterStyle{MinSize: 3, MaxSize: 3, Scaling: ScaleLinear}
}

// ScatterChart renders a series as sized point markers.
type ScatterChart struct {
	Style  ScatterStyle
	config ChartConfig
}

// NewScatterChart creates a scatter chart with the given configuration.
func NewScatterChart(config ChartConfig) (*ScatterChart, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &ScatterChart{
		Style:  DefaultScatterStyle(),
		config: config,
	}, nil
}

// Config returns the chart configuration.
func (sc *ScatterChart) Config() ChartConfig {
	return sc.config
}

// Render draws the series onto a new canvas.
func (sc *ScatterChart) Render(series *data.Series) (*render.Canvas, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrNoData)
	}

	points := series.Points()
	bounds, err := chartBounds(points)
	if err != nil {
		return nil, err
	}

	canvas, err := render.NewCanvas(sc.config.Width, sc.config.Height)
	if err != nil {
		return nil, err
	}

	area := newPlotArea(&sc.config, bounds)
	drawFrame(canvas, &sc.config, area,
		NewAxis(bounds.MinX, bounds.MaxX), NewAxis(bounds.MinY, bounds.MaxY))

	markerColor := sc.Style.Color
	if markerColor == (style.Color{}) {
		markerColor = sc.config.Theme.Primary
	}

	dataBounds, _ := data.CalculateBounds(points)
	for _, p := range points {
		px := area.mapPoint(p)
		r := sc.markerRadius(p, dataBounds)
		canvas.FillCircle(pixelRound(px.X), pixelRound(px.Y), r, markerColor)
	}

	Logger().Debug("rendered scatter chart", "points", len(points), "scaling", sc.Style.Scaling.String())
	return canvas, nil
}

// markerRadius maps the point's Y value into [MinSize, MaxSize] under the
// configured scaling, going through the numeric facade for the root and
// logarithm so sizing works on every backend tier.
func (sc *ScatterChart) markerRadius(p data.Point, b data.Bounds) int {
	minSize, maxSize := sc.Style.MinSize, sc.Style.MaxSize
	if minSize < 0 {
		minSize = 0
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	if maxSize == minSize || b.Height() <= 0 {
		return minSize
	}

	norm := (p.Y - b.MinY) / b.Height()
	var scaled float32
	switch sc.Style.Scaling {
	case ScaleSquareRoot:
		scaled = numeric.FromNumber(numeric.Sqrt(numeric.ToNumber(norm)))
	case ScaleLogarithmic:
		// ln(1 + 9·norm)/ln(10) spreads [0,1] over one decade.
		scaled = numeric.FromNumber(numeric.Ln(numeric.ToNumber(1+9*norm))) /
			numeric.FromNumber(numeric.Ln(numeric.IntToNumber(10)))
	default:
		scaled = norm
	}

	if scaled < 0 {
		scaled = 0
	}
	if scaled > 1 {
		scaled = 1
	}
	return minSize + int(scaled*float32(maxSize-minSize)+0.5)
}
