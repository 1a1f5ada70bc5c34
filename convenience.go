package microchart

import (
	"github.com/tphakala/go-microchart/data"
	"github.com/tphakala/go-microchart/style"
)

// QuickLine renders a smoothed line chart of the series straight to a
// PNG file with default configuration.
func QuickLine(path string, series *data.Series) error {
	config := DefaultChartConfig()
	if series != nil {
		config.Title = series.Label()
	}

	chart, err := NewLineChart(config)
	if err != nil {
		return err
	}
	chart.Style.Smooth = true
	chart.Style.ShowMarkers = true

	canvas, err := chart.Render(series)
	if err != nil {
		return err
	}
	return canvas.SavePNG(path)
}

// QuickBar renders a bar chart of the values straight to a PNG file with
// default configuration.
func QuickBar(path string, values ...float32) error {
	chart, err := NewBarChart(DefaultChartConfig())
	if err != nil {
		return err
	}

	canvas, err := chart.Render(values)
	if err != nil {
		return err
	}
	return canvas.SavePNG(path)
}

// QuickPie renders a pie chart of the values straight to a PNG file with
// default configuration.
func QuickPie(path string, values ...float32) error {
	chart, err := NewPieChart(DefaultChartConfig())
	if err != nil {
		return err
	}

	canvas, err := chart.Render(values)
	if err != nil {
		return err
	}
	return canvas.SavePNG(path)
}

// QuickScatter renders a scatter chart of the series straight to a PNG
// file, with marker sizes tracking the Y values.
func QuickScatter(path string, series *data.Series) error {
	config := DefaultChartConfig()
	if series != nil {
		config.Title = series.Label()
	}

	chart, err := NewScatterChart(config)
	if err != nil {
		return err
	}
	chart.Style.MinSize = 2
	chart.Style.MaxSize = 6
	chart.Style.Scaling = ScaleSquareRoot

	canvas, err := chart.Render(series)
	if err != nil {
		return err
	}
	return canvas.SavePNG(path)
}

// QuickLineDark is QuickLine with the dark theme, the common choice for
// OLED panels where a white background costs power.
func QuickLineDark(path string, series *data.Series) error {
	config := DefaultChartConfig()
	config.Theme = style.DarkTheme()
	if series != nil {
		config.Title = series.Label()
	}

	chart, err := NewLineChart(config)
	if err != nil {
		return err
	}
	chart.Style.Smooth = true

	canvas, err := chart.Render(series)
	if err != nil {
		return err
	}
	return canvas.SavePNG(path)
}
