package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f32"

	microchart "github.com/tphakala/go-microchart"
	"github.com/tphakala/go-microchart/data"
	"github.com/tphakala/go-microchart/style"
)

// Normalization divisors per PCM bit depth.
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// wavInfo holds format information from a decoded WAV file.
type wavInfo struct {
	rate     int
	channels int
	bitDepth int
	frames   int
}

// loadWAVSamples decodes a WAV file into normalized mono float32 samples
// in [-1, 1]. Multichannel input is mixed down by averaging.
func loadWAVSamples(path string, verbose bool) ([]float32, wavInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wavInfo{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, wavInfo{}, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, wavInfo{}, fmt.Errorf("failed to read audio data: %w", err)
	}

	info := wavInfo{
		rate:     buf.Format.SampleRate,
		channels: buf.Format.NumChannels,
		bitDepth: int(decoder.BitDepth),
	}
	if info.channels < 1 {
		return nil, wavInfo{}, fmt.Errorf("invalid WAV file: no channels")
	}
	info.frames = len(buf.Data) / info.channels

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			info.rate, info.channels, info.bitDepth, info.frames)
	}

	samples := mixdown(buf.Data, info.channels, info.bitDepth)
	return samples, info, nil
}

// mixdown averages interleaved integer PCM frames into normalized mono
// float32 samples.
func mixdown(pcm []int, channels, bitDepth int) []float32 {
	frames := len(pcm) / channels
	out := make([]float32, frames)

	if channels == 1 {
		for i, s := range pcm {
			out[i] = float32(s)
		}
	} else {
		invChannels := float32(1) / float32(channels)
		for i := range frames {
			var acc float32
			base := i * channels
			for ch := range channels {
				acc += float32(pcm[base+ch])
			}
			out[i] = acc * invChannels
		}
	}

	f32.Scale(out, out, float32(1/maxSampleValue(bitDepth)))
	return out
}

// maxSampleValue returns the maximum PCM value for the given bit depth.
func maxSampleValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// downsampleWaveform reduces samples to a bounded point count with
// min/max aggregation, keeping peaks visible, and returns them as a
// plottable series with X in sample index units.
func downsampleWaveform(samples []float32, targetPoints int) (*data.Series, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no audio samples to chart")
	}
	if targetPoints < 2 {
		targetPoints = 2
	}

	points := make([]data.Point, len(samples))
	for i, v := range samples {
		points[i] = data.Point{X: float32(i), Y: v}
	}

	cfg := data.AggregationConfig{
		Strategy: data.AggregateMinMax,
		// Min/max aggregation emits up to two points per group.
		TargetPoints:      targetPoints / 2,
		PreserveEndpoints: true,
		MinGroupSize:      1,
	}
	reduced, err := data.Aggregate(points, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to downsample waveform: %w", err)
	}

	series := data.NewSeriesWithCapacity("waveform", len(reduced))
	if err := series.Extend(reduced); err != nil {
		return nil, err
	}
	series.SortByX()
	return series, nil
}

// chartOptions carries the rendering flags from the command line.
type chartOptions struct {
	title   string
	width   int
	height  int
	theme   string
	quality string
	smooth  bool
}

// renderWaveform draws the series as a line chart and writes it to a PNG
// file.
func renderWaveform(series *data.Series, outputPath string, opts chartOptions) error {
	cfg := microchart.DefaultChartConfig()
	cfg.Title = opts.title
	cfg.Width = opts.width
	cfg.Height = opts.height
	cfg.Theme = parseTheme(opts.theme)
	cfg.Quality = parseQuality(opts.quality)

	chart, err := microchart.NewLineChart(cfg)
	if err != nil {
		return err
	}
	chart.Style.Smooth = opts.smooth

	canvas, err := chart.Render(series)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err := canvas.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// parseTheme maps a theme name to its color theme, defaulting to light.
func parseTheme(name string) style.Theme {
	switch strings.ToLower(name) {
	case "dark":
		return style.DarkTheme()
	case "vibrant":
		return style.VibrantTheme()
	case "pastel":
		return style.PastelTheme()
	default:
		return style.LightTheme()
	}
}

// parseQuality maps a quality name to its preset, defaulting to standard.
func parseQuality(name string) microchart.RenderQuality {
	switch strings.ToLower(name) {
	case "draft":
		return microchart.QualityDraft
	case "high":
		return microchart.QualityHigh
	default:
		return microchart.QualityStandard
	}
}
