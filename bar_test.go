package microchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-microchart/style"
)

func TestBarChartRender(t *testing.T) {
	t.Run("rejects empty input", func(t *testing.T) {
		chart, err := NewBarChart(DefaultChartConfig())
		require.NoError(t, err)

		_, err = chart.Render(nil)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("draws bars in primary color", func(t *testing.T) {
		cfg := DefaultChartConfig()
		chart, err := NewBarChart(cfg)
		require.NoError(t, err)

		canvas, err := chart.Render([]float32{3, 7, 2, 9})
		require.NoError(t, err)
		assert.Positive(t, countColor(canvas, cfg.Theme.Primary))
	})

	t.Run("taller value paints more pixels", func(t *testing.T) {
		cfg := DefaultChartConfig()
		cfg.ShowGrid = false
		cfg.ShowAxes = false

		short, err := NewBarChart(cfg)
		require.NoError(t, err)
		shortCanvas, err := short.Render([]float32{1, 1})
		require.NoError(t, err)

		tall, err := NewBarChart(cfg)
		require.NoError(t, err)
		tallCanvas, err := tall.Render([]float32{1, 10})
		require.NoError(t, err)

		assert.Greater(t,
			countColor(tallCanvas, cfg.Theme.Primary),
			countColor(shortCanvas, cfg.Theme.Primary))
	})

	t.Run("negative values render", func(t *testing.T) {
		cfg := DefaultChartConfig()
		chart, err := NewBarChart(cfg)
		require.NoError(t, err)

		canvas, err := chart.Render([]float32{-5, 3, -2, 8})
		require.NoError(t, err)
		assert.Positive(t, countColor(canvas, cfg.Theme.Primary))
	})

	t.Run("all-zero values render without panic", func(t *testing.T) {
		chart, err := NewBarChart(DefaultChartConfig())
		require.NoError(t, err)

		_, err = chart.Render([]float32{0, 0, 0})
		require.NoError(t, err)
	})

	t.Run("outline strokes with text color", func(t *testing.T) {
		cfg := DefaultChartConfig()
		cfg.ShowGrid = false
		cfg.ShowAxes = false

		chart, err := NewBarChart(cfg)
		require.NoError(t, err)
		chart.Style.Outline = true
		chart.Style.Color = style.RGB(10, 200, 10)

		canvas, err := chart.Render([]float32{4, 6})
		require.NoError(t, err)
		assert.Positive(t, countColor(canvas, cfg.Theme.Text))
	})
}
