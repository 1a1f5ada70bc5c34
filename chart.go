package microchart

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-microchart/data"
	"github.com/tphakala/go-microchart/interp"
	"github.com/tphakala/go-microchart/render"
	"github.com/tphakala/go-microchart/style"
)

// Layout constants shared by the chart types.
const (
	defaultChartWidth  = 320
	defaultChartHeight = 240
	defaultMargin      = 24

	// boundsPaddingPercent keeps data off the plot edges.
	boundsPaddingPercent = 5

	// tickLabelGap separates tick labels from the plot frame.
	tickLabelGap = 4
)

// Common errors returned by the chart layer.
var (
	// ErrInvalidConfig indicates invalid chart configuration parameters.
	ErrInvalidConfig = errors.New("invalid chart configuration")

	// ErrNoData indicates a render call without drawable data.
	ErrNoData = errors.New("no data to render")
)

// ChartConfig holds the settings shared by every chart type.
type ChartConfig struct {
	// Title is drawn centered above the plot area. Empty means no title.
	Title string

	// Width and Height are the canvas size in pixels.
	Width  int
	Height int

	// Margin is the border around the plot area, in pixels. It hosts the
	// axes and tick labels.
	Margin int

	// Theme supplies the chart colors.
	Theme style.Theme

	// ShowGrid draws grid lines at the axis ticks.
	ShowGrid bool

	// ShowAxes draws the plot frame and tick labels.
	ShowAxes bool

	// Quality selects the rendering effort preset.
	Quality RenderQuality
}

// DefaultChartConfig returns a 320x240 light-theme chart with grid and
// axes enabled at standard quality.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:    defaultChartWidth,
		Height:   defaultChartHeight,
		Margin:   defaultMargin,
		Theme:    style.LightTheme(),
		ShowGrid: true,
		ShowAxes: true,
		Quality:  QualityStandard,
	}
}

// Validate checks the configuration.
func (c *ChartConfig) Validate() error {
	if c.Width < render.MinCanvasSize || c.Width > render.MaxCanvasSize ||
		c.Height < render.MinCanvasSize || c.Height > render.MaxCanvasSize {
		return fmt.Errorf("%w: size %dx%d outside %d..%d", ErrInvalidConfig,
			c.Width, c.Height, render.MinCanvasSize, render.MaxCanvasSize)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalidConfig)
	}
	if 2*c.Margin >= c.Width || 2*c.Margin >= c.Height {
		return fmt.Errorf("%w: margin %d leaves no plot area", ErrInvalidConfig, c.Margin)
	}
	if err := c.Quality.Validate(); err != nil {
		return err
	}
	return nil
}

// RenderQuality enumerates predefined rendering effort levels.
type RenderQuality int

const (
	// QualityDraft minimizes work: coarse curves, no smoothing. Suitable
	// for rapidly refreshing streaming views.
	QualityDraft RenderQuality = iota

	// QualityStandard balances smoothness and cost. The default.
	QualityStandard

	// QualityHigh maximizes curve fidelity for static or slowly
	// refreshing charts.
	QualityHigh
)

// Validate checks the quality value.
func (q RenderQuality) Validate() error {
	switch q {
	case QualityDraft, QualityStandard, QualityHigh:
		return nil
	default:
		return fmt.Errorf("%w: unknown quality %d", ErrInvalidConfig, q)
	}
}

// String returns the preset name.
func (q RenderQuality) String() string {
	switch q {
	case QualityDraft:
		return "draft"
	case QualityStandard:
		return "standard"
	case QualityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// QualitySpec holds the concrete parameters behind a quality preset.
type QualitySpec struct {
	// Subdivisions is the curve samples generated per data segment.
	Subdivisions uint32

	// SmoothingPasses is the number of pre-interpolation smoothing
	// passes applied when a chart style requests smoothing.
	SmoothingPasses uint32

	// SmoothingFactor is the per-pass neighbor blend weight.
	SmoothingFactor float32
}

// GetQualitySpec returns the parameters for a preset.
func GetQualitySpec(q RenderQuality) QualitySpec {
	switch q {
	case QualityDraft:
		return QualitySpec{Subdivisions: interp.MinSubdivisions, SmoothingPasses: 0, SmoothingFactor: 0}
	case QualityHigh:
		return QualitySpec{Subdivisions: 16, SmoothingPasses: 2, SmoothingFactor: 0.3}
	default:
		return QualitySpec{Subdivisions: 8, SmoothingPasses: 1, SmoothingFactor: 0.3}
	}
}

// plotArea maps data coordinates onto the pixel rectangle inside the
// chart margins. Pixel Y grows downward, so the mapping flips the Y axis.
type plotArea struct {
	x0, y0 int // top-left pixel, inclusive
	x1, y1 int // bottom-right pixel, inclusive
	bounds data.Bounds
}

func newPlotArea(cfg *ChartConfig, bounds data.Bounds) plotArea {
	top := cfg.Margin
	if cfg.Title != "" {
		top += render.TextHeight + tickLabelGap
	}
	return plotArea{
		x0:     cfg.Margin,
		y0:     top,
		x1:     cfg.Width - cfg.Margin - 1,
		y1:     cfg.Height - cfg.Margin - 1,
		bounds: bounds,
	}
}

func (p plotArea) pixelWidth() int  { return p.x1 - p.x0 }
func (p plotArea) pixelHeight() int { return p.y1 - p.y0 }

// mapPoint converts a data point to pixel-space coordinates.
func (p plotArea) mapPoint(d data.Point) data.Point {
	w := p.bounds.Width()
	h := p.bounds.Height()

	var fx, fy float32
	if w > 0 {
		fx = (d.X - p.bounds.MinX) / w
	} else {
		fx = 0.5
	}
	if h > 0 {
		fy = (d.Y - p.bounds.MinY) / h
	} else {
		fy = 0.5
	}

	return data.Point{
		X: float32(p.x0) + fx*float32(p.pixelWidth()),
		Y: float32(p.y1) - fy*float32(p.pixelHeight()),
	}
}

// mapX converts a data X coordinate to a pixel column.
func (p plotArea) mapX(x float32) int {
	return pixelRound(p.mapPoint(data.Point{X: x, Y: p.bounds.MinY}).X)
}

// mapY converts a data Y coordinate to a pixel row.
func (p plotArea) mapY(y float32) int {
	return pixelRound(p.mapPoint(data.Point{X: p.bounds.MinX, Y: y}).Y)
}

func pixelRound(v float32) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

// drawFrame renders the canvas background, title, grid and axes shared by
// the cartesian chart types.
func drawFrame(c *render.Canvas, cfg *ChartConfig, area plotArea, xAxis, yAxis Axis) {
	c.Clear(cfg.Theme.Background)

	if cfg.Title != "" {
		c.TextCentered(cfg.Width/2, cfg.Margin/2+render.TextHeight/2, cfg.Title, cfg.Theme.Text)
	}

	if cfg.ShowGrid {
		for _, tick := range xAxis.Ticks() {
			x := area.mapX(tick.Value)
			c.VLine(x, area.y0, area.y1, cfg.Theme.Grid)
		}
		for _, tick := range yAxis.Ticks() {
			y := area.mapY(tick.Value)
			c.HLine(area.x0, area.x1, y, cfg.Theme.Grid)
		}
	}

	if cfg.ShowAxes {
		c.StrokeRect(area.x0, area.y0, area.pixelWidth()+1, area.pixelHeight()+1, cfg.Theme.Text)

		for _, tick := range xAxis.Ticks() {
			x := area.mapX(tick.Value)
			c.TextCentered(x, area.y1+render.TextHeight+tickLabelGap, tick.Label, cfg.Theme.Text)
		}
		for _, tick := range yAxis.Ticks() {
			y := area.mapY(tick.Value)
			c.Text(area.x0-render.TextWidth(tick.Label)-tickLabelGap, y+render.TextHeight/3,
				tick.Label, cfg.Theme.Text)
		}
	}
}

// chartBounds computes padded drawing bounds for a point set.
func chartBounds(points []data.Point) (data.Bounds, error) {
	b, err := data.CalculateBounds(points)
	if err != nil {
		return data.Bounds{}, err
	}
	return b.WithPadding(boundsPaddingPercent), nil
}
