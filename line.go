package microchart

import (
	"fmt"

	"github.com/tphakala/go-microchart/data"
	"github.com/tphakala/go-microchart/interp"
	"github.com/tphakala/go-microchart/render"
	"github.com/tphakala/go-microchart/style"
)

// LineStyle controls how a line chart draws its series.
type LineStyle struct {
	// Color overrides the theme's primary color when set (non-zero).
	Color style.Color

	// Smooth interpolates the series into a curve before drawing. The
	// algorithm and subdivision count come from Interpolation and the
	// chart's quality preset.
	Smooth bool

	// Interpolation configures the curve when Smooth is set. The
	// Subdivisions field is overridden by the quality preset.
	Interpolation interp.Config

	// ShowMarkers draws a filled circle at every input point.
	ShowMarkers bool

	// MarkerSize is the marker radius in pixels.
	MarkerSize int

	// FillArea fills between the line and the bottom of the plot.
	FillArea bool
}

// DefaultLineStyle returns markers-off, smoothing-off defaults.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Interpolation: interp.DefaultConfig(),
		MarkerSize:    2,
	}
}

// LineChart renders a series as a polyline or smoothed curve.
type LineChart struct {
	Style  LineStyle
	config ChartConfig
}

// NewLineChart creates a line chart with the given configuration.
func NewLineChart(config ChartConfig) (*LineChart, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &LineChart{
		Style:  DefaultLineStyle(),
		config: config,
	}, nil
}

// Config returns the chart configuration.
func (lc *LineChart) Config() ChartConfig {
	return lc.config
}

// Render draws the series onto a new canvas.
func (lc *LineChart) Render(series *data.Series) (*render.Canvas, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrNoData)
	}

	points := series.Points()
	bounds, err := chartBounds(points)
	if err != nil {
		return nil, err
	}

	canvas, err := render.NewCanvas(lc.config.Width, lc.config.Height)
	if err != nil {
		return nil, err
	}

	area := newPlotArea(&lc.config, bounds)
	drawFrame(canvas, &lc.config, area,
		NewAxis(bounds.MinX, bounds.MaxX), NewAxis(bounds.MinY, bounds.MaxY))

	lineColor := lc.Style.Color
	if lineColor == (style.Color{}) {
		lineColor = lc.config.Theme.Primary
	}

	// Map to pixel space first so smoothing and interpolation operate on
	// screen geometry.
	pixels := make([]data.Point, len(points))
	for i, p := range points {
		pixels[i] = area.mapPoint(p)
	}

	curve := pixels
	if lc.Style.Smooth && len(pixels) >= 2 {
		curve, err = lc.smoothCurve(pixels)
		if err != nil {
			return nil, err
		}
	}

	if lc.Style.FillArea {
		fillColor := lc.config.Theme.Background.Lerp(lineColor, 0.35)
		for _, p := range curve {
			canvas.VLine(pixelRound(p.X), pixelRound(p.Y), area.y1, fillColor)
		}
	}

	if len(curve) == 1 {
		canvas.FillCircle(pixelRound(curve[0].X), pixelRound(curve[0].Y), lc.Style.MarkerSize, lineColor)
	} else {
		canvas.Polyline(curve, lineColor)
	}

	if lc.Style.ShowMarkers {
		for _, p := range pixels {
			canvas.FillCircle(pixelRound(p.X), pixelRound(p.Y), lc.Style.MarkerSize, lineColor)
		}
	}

	Logger().Debug("rendered line chart",
		"points", len(points), "curve_points", len(curve), "smooth", lc.Style.Smooth)
	return canvas, nil
}

// smoothCurve applies the quality preset's smoothing passes and curve
// interpolation to pixel-space points.
func (lc *LineChart) smoothCurve(pixels []data.Point) ([]data.Point, error) {
	spec := GetQualitySpec(lc.config.Quality)

	smoothed := pixels
	if spec.SmoothingPasses > 0 {
		var err error
		smoothed, err = interp.SmoothSeries(pixels, spec.SmoothingFactor, spec.SmoothingPasses)
		if err != nil {
			return nil, err
		}
	}

	cfg := lc.Style.Interpolation
	cfg.Subdivisions = spec.Subdivisions
	return interp.Interpolate(smoothed, cfg)
}
