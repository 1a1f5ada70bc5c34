// Command chart-wav renders the waveform of a WAV audio file as a line
// chart PNG.
//
// Usage:
//
//	chart-wav input.wav waveform.png
//	chart-wav -theme dark -points 200 input.wav waveform.png
//	chart-wav -width 640 -height 480 -smooth=false input.wav out.png
//
// The waveform is downsampled to a bounded point count with min/max
// aggregation, so peaks survive even for long recordings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultPoints = 200
	minRequired   = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	width := flag.Int("width", 640, "Chart width in pixels")
	height := flag.Int("height", 240, "Chart height in pixels")
	points := flag.Int("points", defaultPoints, "Number of waveform points after downsampling")
	themeName := flag.String("theme", "light", "Color theme: light, dark, vibrant, pastel")
	smooth := flag.Bool("smooth", true, "Smooth the waveform curve")
	title := flag.String("title", "", "Chart title (defaults to the input file name)")
	quality := flag.String("quality", "standard", "Render quality: draft, standard, high")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequired {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.png\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s recording.wav waveform.png            # Default light theme\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -theme dark speech.wav speech.png     # Dark theme for OLED\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -points 500 long.wav detailed.png     # More waveform detail\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	outputPath := args[1]

	chartTitle := *title
	if chartTitle == "" {
		chartTitle = filepath.Base(inputPath)
	}

	if *verbose {
		log.SetFlags(0)
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Size: %dx%d, points: %d, theme: %s", *width, *height, *points, *themeName)
	}

	start := time.Now()

	samples, info, err := loadWAVSamples(inputPath, *verbose)
	if err != nil {
		return err
	}

	series, err := downsampleWaveform(samples, *points)
	if err != nil {
		return err
	}

	opts := chartOptions{
		title:   chartTitle,
		width:   *width,
		height:  *height,
		theme:   *themeName,
		quality: *quality,
		smooth:  *smooth,
	}
	if err := renderWaveform(series, outputPath, opts); err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Printf("Charted %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %.2fs of audio\n",
		info.rate, info.channels, info.bitDepth,
		float64(info.frames)/float64(info.rate))
	fmt.Printf("  %d samples -> %d waveform points\n", len(samples), series.Len())
	fmt.Printf("  Rendered in %.0fms\n", elapsed.Seconds()*1000)

	return nil
}
