package microchart

import (
	"fmt"

	"github.com/tphakala/go-microchart/numeric"
	"github.com/tphakala/go-microchart/render"
	"github.com/tphakala/go-microchart/style"
)

const twoPi = 6.2831855

// PieStyle controls pie chart appearance.
type PieStyle struct {
	// Palette supplies one color per slice, cycling when there are more
	// slices than colors. Nil selects the default palette.
	Palette *style.Palette

	// StartAngle is where the first slice begins, in degrees; 0 points
	// right, 90 points up.
	StartAngle float32
}

// DefaultPieStyle starts the first slice at the top of the circle.
func DefaultPieStyle() PieStyle {
	return PieStyle{Palette: style.DefaultPalette(), StartAngle: 90}
}

// PieChart renders proportional slices of a value set.
type PieChart struct {
	Style  PieStyle
	config ChartConfig
}

// pieSlice is one computed slice with angles in radians, normalized to
// [0, 2π).
type pieSlice struct {
	start float32
	end   float32
	color style.Color
}

// NewPieChart creates a pie chart with the given configuration.
func NewPieChart(config ChartConfig) (*PieChart, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &PieChart{
		Style:  DefaultPieStyle(),
		config: config,
	}, nil
}

// Config returns the chart configuration.
func (pc *PieChart) Config() ChartConfig {
	return pc.config
}

// Render draws one slice per positive value onto a new canvas. Negative
// and zero values are skipped; if nothing remains, ErrNoData is returned.
//
// Slices are filled per pixel: every pixel inside the circle is assigned
// to the slice whose angular span contains it, with distance and angle
// computed through the numeric facade so the chart renders on every
// backend tier.
func (pc *PieChart) Render(values []float32) (*render.Canvas, error) {
	slices, skipped := pc.computeSlices(values)
	if len(slices) == 0 {
		return nil, fmt.Errorf("%w: no positive values", ErrNoData)
	}
	if skipped > 0 {
		Logger().Warn("pie chart skipped non-positive values", "skipped", skipped)
	}

	canvas, err := render.NewCanvas(pc.config.Width, pc.config.Height)
	if err != nil {
		return nil, err
	}
	canvas.Clear(pc.config.Theme.Background)

	if pc.config.Title != "" {
		canvas.TextCentered(pc.config.Width/2, pc.config.Margin/2+render.TextHeight/2,
			pc.config.Title, pc.config.Theme.Text)
	}

	cx := pc.config.Width / 2
	cy := pc.config.Height / 2
	radius := minInt(pc.config.Width, pc.config.Height)/2 - pc.config.Margin
	if radius < 1 {
		radius = 1
	}

	pc.fillSlices(canvas, slices, cx, cy, radius)

	Logger().Debug("rendered pie chart", "slices", len(slices), "radius", radius)
	return canvas, nil
}

// computeSlices converts values to angular spans, cycling the palette.
func (pc *PieChart) computeSlices(values []float32) (slices []pieSlice, skipped int) {
	var total float32
	for _, v := range values {
		if v > 0 {
			total += v
		} else {
			skipped++
		}
	}
	if total <= 0 {
		return nil, skipped
	}

	palette := pc.Style.Palette
	if palette == nil {
		palette = style.DefaultPalette()
	}
	palette.Reset()

	start := numeric.FromNumber(numeric.ToRadians(numeric.ToNumber(pc.Style.StartAngle)))
	current := start
	for _, v := range values {
		if v <= 0 {
			continue
		}
		span := v / total * twoPi
		slices = append(slices, pieSlice{
			start: normalizeAngle(current),
			end:   normalizeAngle(current + span),
			color: palette.Next(),
		})
		current += span
	}

	// Close the final slice exactly onto the start angle so float
	// accumulation cannot leave an unpainted sliver.
	slices[len(slices)-1].end = normalizeAngle(start)
	return slices, skipped
}

// fillSlices paints every pixel of the circle with its slice color.
func (pc *PieChart) fillSlices(canvas *render.Canvas, slices []pieSlice, cx, cy, radius int) {
	// Pixel membership tolerance, in pixels.
	const tolerance = 0.5

	for py := cy - radius; py <= cy+radius; py++ {
		for px := cx - radius; px <= cx+radius; px++ {
			dx := float32(px - cx)
			dy := float32(py - cy)

			dist := numeric.FromNumber(numeric.Sqrt(numeric.ToNumber(dx*dx + dy*dy)))
			if dist > float32(radius)+tolerance {
				continue
			}

			// Screen Y grows downward; negate dy for mathematical angles.
			angle := numeric.FromNumber(numeric.Atan2(numeric.ToNumber(-dy), numeric.ToNumber(dx)))
			a := normalizeAngle(angle)

			for _, s := range slices {
				if angleInSpan(a, s.start, s.end) {
					canvas.Set(px, py, s.color)
					break
				}
			}
		}
	}
}

// normalizeAngle wraps an angle into [0, 2π).
func normalizeAngle(a float32) float32 {
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}
	return a
}

// angleInSpan reports whether a lies in the span from start to end,
// moving counterclockwise; spans may wrap through zero. A full-circle
// span (start == end) contains every angle.
func angleInSpan(a, start, end float32) bool {
	if start == end {
		return true
	}
	if start < end {
		return a >= start && a < end
	}
	return a >= start || a < end
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
