package microchart

import (
	"fmt"

	"github.com/tphakala/go-microchart/data"
	"github.com/tphakala/go-microchart/render"
	"github.com/tphakala/go-microchart/style"
)

// BarStyle controls bar chart appearance.
type BarStyle struct {
	// Color overrides the theme's primary color when set.
	Color style.Color

	// Spacing is the fraction of each slot left empty between bars,
	// clamped to [0, 0.9].
	Spacing float32

	// Outline strokes each bar with the theme text color.
	Outline bool
}

// DefaultBarStyle returns 20% spacing with no outline.
func DefaultBarStyle() BarStyle {
	return BarStyle{Spacing: 0.2}
}

// BarChart renders values as vertical bars.
type BarChart struct {
	Style  BarStyle
	config ChartConfig
}

// NewBarChart creates a bar chart with the given configuration.
func NewBarChart(config ChartConfig) (*BarChart, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &BarChart{
		Style:  DefaultBarStyle(),
		config: config,
	}, nil
}

// Config returns the chart configuration.
func (bc *BarChart) Config() ChartConfig {
	return bc.config
}

// Render draws one bar per value onto a new canvas. Bars grow from the
// zero line, so negative values hang downward.
func (bc *BarChart) Render(values []float32) (*render.Canvas, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrNoData)
	}

	// Value bounds always include zero so every bar has a baseline.
	minV, maxV := float32(0), float32(0)
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if minV == maxV {
		maxV = minV + 1
	}

	bounds := data.Bounds{
		MinX: 0, MaxX: float32(len(values)),
		MinY: minV, MaxY: maxV,
	}.WithPadding(boundsPaddingPercent)

	canvas, err := render.NewCanvas(bc.config.Width, bc.config.Height)
	if err != nil {
		return nil, err
	}

	area := newPlotArea(&bc.config, bounds)
	drawFrame(canvas, &bc.config, area,
		NewAxis(bounds.MinX, bounds.MaxX), NewAxis(bounds.MinY, bounds.MaxY))

	barColor := bc.Style.Color
	if barColor == (style.Color{}) {
		barColor = bc.config.Theme.Primary
	}

	spacing := bc.Style.Spacing
	if spacing < 0 {
		spacing = 0
	}
	if spacing > 0.9 {
		spacing = 0.9
	}

	zeroY := area.mapY(0)
	for i, v := range values {
		slotLeft := float32(i) + spacing/2
		slotRight := float32(i) + 1 - spacing/2

		x0 := area.mapX(slotLeft)
		x1 := area.mapX(slotRight)
		yv := area.mapY(v)

		top, bottom := yv, zeroY
		if top > bottom {
			top, bottom = bottom, top
		}
		canvas.FillRect(x0, top, x1-x0+1, bottom-top+1, barColor)
		if bc.Style.Outline {
			canvas.StrokeRect(x0, top, x1-x0+1, bottom-top+1, bc.config.Theme.Text)
		}
	}

	Logger().Debug("rendered bar chart", "bars", len(values))
	return canvas, nil
}
