// Package microchart renders charts with statically bounded memory, aimed
// at embedded and resource-constrained targets.
//
// The library is built on a compile-time numeric abstraction: all
// backend-dependent math (roots, trigonometry, logarithms) goes through
// the facade in the numeric package, which binds to one of six backends
// selected by build tags, from hardware floating point down to a
// dependency-free fallback. Chart geometry itself stays in native float32
// and is smoothed by the bounded curve engine in the interp package.
//
// # Quick Start
//
// One-call helpers render a chart straight to a PNG file:
//
//	series, err := data.SeriesFromValues("cpu", 12, 35, 28, 51, 44, 60)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := microchart.QuickLine("cpu.png", series); err != nil {
//	    log.Fatal(err)
//	}
//
// For full control, build a config and a chart:
//
//	config := microchart.DefaultChartConfig()
//	config.Title = "CPU load"
//	config.Theme = style.DarkTheme()
//	config.Quality = microchart.QualityHigh
//
//	chart, err := microchart.NewLineChart(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	chart.Style.Smooth = true
//	chart.Style.ShowMarkers = true
//
//	canvas, err := chart.Render(series)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = canvas.SavePNG("cpu.png")
//
// # Chart Types
//
//   - [LineChart]: polylines with optional curve smoothing, markers and
//     area fill
//   - [BarChart]: vertical bars with configurable spacing
//   - [PieChart]: filled slices computed per pixel from backend
//     trigonometry
//   - [ScatterChart]: sized markers with linear, square-root or
//     logarithmic size scaling
//
// # Quality Presets
//
// [RenderQuality] presets trade smoothness for work, in deterministic
// O(points × subdivisions) time:
//
//   - [QualityDraft]: 2 subdivisions, no smoothing passes
//   - [QualityStandard]: 8 subdivisions, one smoothing pass
//   - [QualityHigh]: 16 subdivisions, two smoothing passes
//
// # Data Flow
//
// The data package supplies bounded containers ([data.Series],
// [data.RingBuffer]) and downsampling ([data.Aggregate]); charts consume
// at most 256 points per series and the curve engine emits at most 512.
// Inputs past those bounds fail explicitly rather than truncating.
//
// # Logging
//
// The library is silent by default. Call [SetLogger] with an *slog.Logger
// to receive render diagnostics.
package microchart
