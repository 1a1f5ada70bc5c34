package microchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieChartRender(t *testing.T) {
	t.Run("rejects empty and non-positive input", func(t *testing.T) {
		chart, err := NewPieChart(DefaultChartConfig())
		require.NoError(t, err)

		_, err = chart.Render(nil)
		assert.ErrorIs(t, err, ErrNoData)

		_, err = chart.Render([]float32{0, -3})
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("slices use distinct palette colors", func(t *testing.T) {
		cfg := DefaultChartConfig()
		chart, err := NewPieChart(cfg)
		require.NoError(t, err)

		canvas, err := chart.Render([]float32{1, 1, 1})
		require.NoError(t, err)

		palette := chart.Style.Palette
		palette.Reset()
		for i := 0; i < 3; i++ {
			assert.Positive(t, countColor(canvas, palette.Next()), "slice %d missing", i)
		}
	})

	t.Run("slice area tracks value proportion", func(t *testing.T) {
		chart, err := NewPieChart(DefaultChartConfig())
		require.NoError(t, err)

		canvas, err := chart.Render([]float32{3, 1})
		require.NoError(t, err)

		palette := chart.Style.Palette
		palette.Reset()
		big := countColor(canvas, palette.Next())
		small := countColor(canvas, palette.Next())
		require.Positive(t, small)

		// 3:1 value split should land near a 3:1 pixel split.
		ratio := float64(big) / float64(small)
		assert.InDelta(t, 3.0, ratio, 0.5)
	})

	t.Run("non-positive values are skipped", func(t *testing.T) {
		chart, err := NewPieChart(DefaultChartConfig())
		require.NoError(t, err)

		canvas, err := chart.Render([]float32{5, -1, 0, 5})
		require.NoError(t, err)

		palette := chart.Style.Palette
		palette.Reset()
		first := countColor(canvas, palette.Next())
		second := countColor(canvas, palette.Next())
		assert.Positive(t, first)
		assert.Positive(t, second)
	})

	t.Run("single value fills the whole circle", func(t *testing.T) {
		cfg := DefaultChartConfig()
		chart, err := NewPieChart(cfg)
		require.NoError(t, err)

		canvas, err := chart.Render([]float32{42})
		require.NoError(t, err)

		palette := chart.Style.Palette
		palette.Reset()
		area := countColor(canvas, palette.Next())

		radius := minInt(cfg.Width, cfg.Height)/2 - cfg.Margin
		expected := 3.14159 * float64(radius) * float64(radius)
		assert.InDelta(t, expected, float64(area), expected*0.05)
	})
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, normalizeAngle(0), 1e-6)
	assert.InDelta(t, 1, normalizeAngle(1), 1e-6)
	assert.InDelta(t, twoPi-1, normalizeAngle(-1), 1e-5)
	assert.InDelta(t, 0.5, normalizeAngle(twoPi+0.5), 1e-5)
}

func TestAngleInSpan(t *testing.T) {
	t.Run("plain span", func(t *testing.T) {
		assert.True(t, angleInSpan(1, 0.5, 2))
		assert.False(t, angleInSpan(3, 0.5, 2))
	})

	t.Run("wrapping span", func(t *testing.T) {
		assert.True(t, angleInSpan(0.1, 6, 1))
		assert.True(t, angleInSpan(6.2, 6, 1))
		assert.False(t, angleInSpan(3, 6, 1))
	})

	t.Run("full circle", func(t *testing.T) {
		assert.True(t, angleInSpan(2.5, 1, 1))
	})
}
