package microchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-microchart/data"
	"github.com/tphakala/go-microchart/render"
	"github.com/tphakala/go-microchart/style"
)

// countColor counts pixels matching the color exactly.
func countColor(c *render.Canvas, col style.Color) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) == col {
				n++
			}
		}
	}
	return n
}

func testSeries(t *testing.T) *data.Series {
	t.Helper()
	s, err := data.SeriesFromValues("test", 1, 4, 2, 8, 5, 7)
	require.NoError(t, err)
	return s
}

func TestLineChartRender(t *testing.T) {
	t.Run("rejects empty input", func(t *testing.T) {
		chart, err := NewLineChart(DefaultChartConfig())
		require.NoError(t, err)

		_, err = chart.Render(nil)
		assert.ErrorIs(t, err, ErrNoData)

		_, err = chart.Render(data.NewSeries("empty"))
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := DefaultChartConfig()
		cfg.Width = 4
		_, err := NewLineChart(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("draws line in primary color", func(t *testing.T) {
		cfg := DefaultChartConfig()
		chart, err := NewLineChart(cfg)
		require.NoError(t, err)

		canvas, err := chart.Render(testSeries(t))
		require.NoError(t, err)
		assert.Equal(t, cfg.Width, canvas.Width())
		assert.Equal(t, cfg.Height, canvas.Height())
		assert.Positive(t, countColor(canvas, cfg.Theme.Primary))
	})

	t.Run("style color overrides theme", func(t *testing.T) {
		chart, err := NewLineChart(DefaultChartConfig())
		require.NoError(t, err)
		chart.Style.Color = style.RGB(200, 10, 10)

		canvas, err := chart.Render(testSeries(t))
		require.NoError(t, err)
		assert.Positive(t, countColor(canvas, chart.Style.Color))
	})

	t.Run("smoothing paints more line pixels", func(t *testing.T) {
		cfg := DefaultChartConfig()
		cfg.ShowGrid = false
		cfg.ShowAxes = false

		plain, err := NewLineChart(cfg)
		require.NoError(t, err)
		straight, err := plain.Render(testSeries(t))
		require.NoError(t, err)

		smooth, err := NewLineChart(cfg)
		require.NoError(t, err)
		smooth.Style.Smooth = true
		curved, err := smooth.Render(testSeries(t))
		require.NoError(t, err)

		// The interpolated curve deviates from straight segments, so the
		// two renders must differ.
		diff := 0
		for y := 0; y < curved.Height(); y++ {
			for x := 0; x < curved.Width(); x++ {
				if curved.At(x, y) != straight.At(x, y) {
					diff++
				}
			}
		}
		assert.Positive(t, diff)
	})

	t.Run("single point draws a marker", func(t *testing.T) {
		s, err := data.SeriesFromValues("one", 5)
		require.NoError(t, err)

		cfg := DefaultChartConfig()
		chart, err := NewLineChart(cfg)
		require.NoError(t, err)

		canvas, err := chart.Render(s)
		require.NoError(t, err)
		assert.Positive(t, countColor(canvas, cfg.Theme.Primary))
	})

	t.Run("fill area paints below the curve", func(t *testing.T) {
		cfg := DefaultChartConfig()
		cfg.ShowGrid = false

		chart, err := NewLineChart(cfg)
		require.NoError(t, err)
		chart.Style.FillArea = true

		filled, err := chart.Render(testSeries(t))
		require.NoError(t, err)

		fillColor := cfg.Theme.Background.Lerp(cfg.Theme.Primary, 0.35)
		assert.Positive(t, countColor(filled, fillColor))
	})
}

func BenchmarkLineChartRender(b *testing.B) {
	s, err := data.SeriesFromValues("bench", 1, 4, 2, 8, 5, 7, 3, 9, 6, 2)
	if err != nil {
		b.Fatal(err)
	}
	chart, err := NewLineChart(DefaultChartConfig())
	if err != nil {
		b.Fatal(err)
	}
	chart.Style.Smooth = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chart.Render(s); err != nil {
			b.Fatal(err)
		}
	}
}
